// Package registry holds the plain read/write operations over the entity
// graph: ship lookups, license and inspection listings and registration.
package registry

import (
	"fishreg/internal/pkg/store"
)

type Service struct {
	store store.Store
}

func NewRegistryService(store store.Store) *Service {
	return &Service{store: store}
}

func fullName(first, last string) *string {
	name := first + " " + last
	return &name
}

package controller

import (
	"fishreg/internal/service/auth"
	"fishreg/internal/service/registry"
	"fishreg/internal/service/report"
)

type Controller struct {
	reports  *report.Service
	registry *registry.Service
	auth     *auth.Service
}

func NewController(reports *report.Service, registry *registry.Service, auth *auth.Service) *Controller {
	return &Controller{reports: reports, registry: registry, auth: auth}
}

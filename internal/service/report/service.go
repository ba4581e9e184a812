// Package report implements the registry's aggregate reports: read-only
// pipelines that bulk-read the entity graph, group in memory, and return
// ordered result records.
package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fishreg/internal/pkg/store"
)

type Service struct {
	store store.Store
	now   func() time.Time
}

func NewReportService(store store.Store) *Service {
	return &Service{store: store, now: time.Now}
}

func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// fullName joins first and last name, trimmed. Falls back only when the
// related fisher/inspector row is absent entirely.
func fullName(first, last *string, fallback string) string {
	if first == nil && last == nil {
		return fallback
	}
	return strings.TrimSpace(strOr(first, "") + " " + strOr(last, ""))
}

// nz treats an absent numeric as zero for summation.
func nz(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Decimal{}
	}
	return d.Decimal
}

// fishingHours derives trip duration. Start and end are times of day; an end
// before the start is a trip crossing midnight and wraps forward by 24h.
func fishingHours(start, end *time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}

	hours := end.Sub(*start).Hours()
	if hours < 0 {
		hours += 24
	}
	return hours
}

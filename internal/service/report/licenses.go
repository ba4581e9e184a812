package report

import (
	"context"
	"fmt"
	"sort"

	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
)

// ExpiringLicenses lists active licenses expiring within daysAhead days from
// today, soonest first.
func (s *Service) ExpiringLicenses(ctx context.Context, daysAhead int) ([]*dto.ExpiringLicense, error) {
	today := s.today()
	cutoff := today.AddDate(0, 0, daysAhead)

	rows, err := s.store.SelectExpiringLicenses(ctx, today, cutoff)
	if err != nil {
		logger.Errorf(ctx, "expiring licenses report, days_ahead-%d: %s", daysAhead, err.Error())
		return nil, fmt.Errorf("store.SelectExpiringLicenses: %w", err)
	}

	result := make([]*dto.ExpiringLicense, 0, len(rows))
	for _, r := range rows {
		result = append(result, &dto.ExpiringLicense{
			LicenseID:     r.LicenseID,
			LicenseNumber: strOr(r.LicenseNumber, "N/A"),
			ShipNumber:    strOr(r.ShipNumber, "N/A"),
			OwnerName:     fullName(r.FirstName, r.LastName, "N/A"),
			ExpiryDate:    r.ExpiryDate,
			DaysRemaining: int(r.ExpiryDate.Sub(today).Hours() / 24),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DaysRemaining < result[j].DaysRemaining
	})

	logger.Infof(ctx, "expiring licenses report: days_ahead-%d, %d records", daysAhead, len(result))
	return result, nil
}

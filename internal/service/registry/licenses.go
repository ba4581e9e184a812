package registry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fishreg/internal/domain"
	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
)

const expiringSoonDays = 30

type ListLicensesOpts struct {
	Status       *string
	FisherID     *int64
	ShipID       *int64
	ExpiringSoon bool
}

func (s *Service) ListLicenses(ctx context.Context, opts ListLicensesOpts) ([]*dto.License, error) {
	storeOpts := store.ListLicensesOpts{
		Status:   opts.Status,
		FisherID: opts.FisherID,
		ShipID:   opts.ShipID,
	}
	if opts.ExpiringSoon {
		cutoff := time.Now().AddDate(0, 0, expiringSoonDays)
		storeOpts.ExpiringBefore = &cutoff
	}

	rows, err := s.store.ListLicenses(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("store.ListLicenses: %w", err)
	}

	result := make([]*dto.License, 0, len(rows))
	for _, r := range rows {
		item := &dto.License{
			ID:            r.ID,
			FisherID:      r.FisherID,
			ShipID:        r.ShipID,
			ShipName:      r.ShipName,
			IssueDate:     r.IssueDate,
			ExpiryDate:    r.ExpiryDate,
			Status:        r.Status,
			LicenseType:   r.LicenseType,
			LicenseNumber: "",
		}
		if r.LicenseNumber != nil {
			item.LicenseNumber = *r.LicenseNumber
		}
		if r.FisherFirst != nil || r.FisherLast != nil {
			name := strings.TrimSpace(deref(r.FisherFirst) + " " + deref(r.FisherLast))
			item.FisherName = &name
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *Service) CreateLicense(ctx context.Context, license *domain.License) (int64, error) {
	if license.Status == "" {
		license.Status = domain.LicenseStatusActive
	}
	if license.IssueDate.IsZero() {
		license.IssueDate = time.Now()
	}

	id, err := s.store.InsertLicense(ctx, license)
	if err != nil {
		logger.Errorf(ctx, "insertLicense: %s", err.Error())
		return 0, fmt.Errorf("store.InsertLicense: %w", err)
	}

	logger.Infof(ctx, "registered license %d", id)
	return id, nil
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

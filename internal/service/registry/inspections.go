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

type ListInspectionsOpts struct {
	FromDate *time.Time
	ToDate   *time.Time
	Status   *string
}

func (s *Service) ListInspections(ctx context.Context, opts ListInspectionsOpts) ([]*dto.Inspection, error) {
	rows, err := s.store.ListInspectionRecords(ctx, store.ListInspectionRecordsOpts{
		FromDate: opts.FromDate,
		ToDate:   opts.ToDate,
		Status:   opts.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("store.ListInspectionRecords: %w", err)
	}

	result := make([]*dto.Inspection, 0, len(rows))
	for _, r := range rows {
		item := &dto.Inspection{
			ID:             r.ID,
			InspectorID:    r.InspectorID,
			ShipID:         r.ShipID,
			LicenseID:      r.LicenseID,
			InspectionDate: r.InspectionDate,
			InspectionType: r.InspectionType,
			Location:       r.Location,
			Findings:       r.Findings,
			Violations:     r.Violations,
			ActionsTaken:   r.ActionsTaken,
			Status:         r.Status,
			Notes:          r.Notes,
			ShipName:       r.ShipName,
			LicenseNumber:  r.LicenseNumber,
		}
		if r.InspectorFirst != nil || r.InspectorLast != nil {
			name := strings.TrimSpace(deref(r.InspectorFirst) + " " + deref(r.InspectorLast))
			item.InspectorName = &name
		}
		result = append(result, item)
	}

	return result, nil
}

func (s *Service) CreateInspection(ctx context.Context, inspection *domain.Inspection) (int64, error) {
	if inspection.Status == "" {
		inspection.Status = domain.InspectionStatusPlanned
	}
	if inspection.InspectionType == "" {
		inspection.InspectionType = "Routine"
	}

	id, err := s.store.InsertInspection(ctx, inspection)
	if err != nil {
		logger.Errorf(ctx, "insertInspection: %s", err.Error())
		return 0, fmt.Errorf("store.InsertInspection: %w", err)
	}

	logger.Infof(ctx, "recorded inspection %d", id)
	return id, nil
}

func (s *Service) ListFishers(ctx context.Context) ([]*dto.Fisher, error) {
	fishers, err := s.store.ListFishers(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListFishers: %w", err)
	}

	result := make([]*dto.Fisher, 0, len(fishers))
	for _, f := range fishers {
		result = append(result, &dto.Fisher{
			ID:             f.ID,
			FirstName:      f.FirstName,
			LastName:       f.LastName,
			PersonalNumber: f.PersonalNumber,
			Email:          f.Email,
			Phone:          f.Phone,
			IsActive:       f.IsActive,
		})
	}

	return result, nil
}

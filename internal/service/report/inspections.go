package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
)

// InspectionsByPeriod lists inspections within [startDate, endDate], newest
// first. A parseable inspectorID narrows to that inspector; anything else
// leaves the filter off.
func (s *Service) InspectionsByPeriod(ctx context.Context, startDate, endDate time.Time, inspectorID string) ([]*dto.InspectionReport, error) {
	opts := store.SelectInspectionsOpts{From: startDate, To: endDate}
	if inspectorID != "" {
		if id, err := strconv.ParseInt(inspectorID, 10, 64); err == nil {
			opts.InspectorID = &id
		}
	}

	rows, err := s.store.SelectInspections(ctx, opts)
	if err != nil {
		logger.Errorf(ctx, "inspections report, start-%s, end-%s: %s",
			startDate.Format(time.DateOnly), endDate.Format(time.DateOnly), err.Error())
		return nil, fmt.Errorf("store.SelectInspections: %w", err)
	}

	result := make([]*dto.InspectionReport, 0, len(rows))
	for _, r := range rows {
		result = append(result, &dto.InspectionReport{
			InspectionID:    r.InspectionID,
			InspectionDate:  r.InspectionDate,
			InspectorName:   fullName(r.InspectorFirst, r.InspectorLast, "N/A"),
			ShipName:        strOr(r.ShipName, "N/A"),
			LicenseNumber:   strOr(r.LicenseNumber, "N/A"),
			InspectionType:  r.InspectionType,
			Status:          r.Status,
			ViolationsFound: r.Violations != nil && *r.Violations != "",
			ActionsTaken:    r.ActionsTaken,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].InspectionDate.After(result[j].InspectionDate)
	})

	logger.Infof(ctx, "inspections report: start-%s, end-%s, %d records",
		startDate.Format(time.DateOnly), endDate.Format(time.DateOnly), len(result))
	return result, nil
}

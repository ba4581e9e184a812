package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

type ListInspectionRecordsOpts struct {
	FromDate *time.Time
	ToDate   *time.Time
	Status   *string
}

func (s *store) ListInspectionRecords(ctx context.Context, opts ListInspectionRecordsOpts) ([]*domain.InspectionListRow, error) {
	query := builder().Select(
		`i.id, i.inspector_id, i.ship_id, i.license_id, i.inspection_date,
i.inspection_type, i.location, i.findings, i.violations, i.actions_taken,
i.status, i.notes, i.created_at,
ins.first_name as inspector_first, ins.last_name as inspector_last,
sh.name as ship_name, l.license_number`).
		From(tableInspections + " i").
		LeftJoin(tableInspectors + " ins on ins.id=i.inspector_id").
		LeftJoin(tableShips + " sh on sh.id=i.ship_id").
		LeftJoin(tableLicenses + " l on l.id=i.license_id").
		OrderBy("i.inspection_date desc")

	if opts.FromDate != nil {
		query = query.Where(sq.GtOrEq{"i.inspection_date": *opts.FromDate})
	}
	if opts.ToDate != nil {
		query = query.Where(sq.LtOrEq{"i.inspection_date": *opts.ToDate})
	}
	if opts.Status != nil {
		query = query.Where(sq.Eq{"i.status": *opts.Status})
	}

	selected, err := xpgx.Selectx[domain.InspectionListRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertInspection(ctx context.Context, inspection *domain.Inspection) (int64, error) {
	query := builder().Insert(tableInspections).
		Columns("inspector_id", "ship_id", "license_id", "inspection_date",
			"inspection_type", "location", "findings", "violations",
			"actions_taken", "status", "notes").
		Values(inspection.InspectorID, inspection.ShipID, inspection.LicenseID,
			inspection.InspectionDate, inspection.InspectionType,
			inspection.Location, inspection.Findings, inspection.Violations,
			inspection.ActionsTaken, inspection.Status, inspection.Notes).
		Suffix("RETURNING id")

	id, err := xpgx.Getcx[int64](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

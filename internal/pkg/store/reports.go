package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

type SelectShipTripsOpts struct {
	From           time.Time
	To             time.Time
	ExcludeRevoked bool
}

type SelectInspectionsOpts struct {
	From        time.Time
	To          time.Time
	InspectorID *int64
}

func (s *store) SelectExpiringLicenses(ctx context.Context, from, to time.Time) ([]*domain.ExpiringLicenseRow, error) {
	query := builder().Select(
		`l.id as license_id, l.license_number, l.expiry_date,
s.international_number as ship_number, f.first_name, f.last_name`).
		From(tableLicenses + " l").
		LeftJoin(tableShips + " s on s.id=l.ship_id").
		LeftJoin(tableFishers + " f on f.id=l.fisher_id").
		Where(sq.Eq{"l.status": domain.LicenseStatusActive}).
		Where(sq.NotEq{"l.expiry_date": nil}).
		Where(sq.GtOrEq{"l.expiry_date": from}).
		Where(sq.LtOrEq{"l.expiry_date": to})

	selected, err := xpgx.Selectx[domain.ExpiringLicenseRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectAmateurCatchesSince(ctx context.Context, since time.Time) ([]*domain.AmateurCatchRow, error) {
	query := builder().Select(
		`t.fisher_id, f.first_name, f.last_name, c.weight_kgs`).
		From(tableAmateurCatches + " c").
		Join(tableAmateurTickets + " t on t.id=c.amateur_ticket_id").
		LeftJoin(tableFishers + " f on f.id=t.fisher_id").
		Where(sq.GtOrEq{"c.catch_date": since})

	selected, err := xpgx.Selectx[domain.AmateurCatchRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SelectShipTrips returns logbook entries within the window whose license has
// an associated ship; license-less-ship entries never reach the reports.
func (s *store) SelectShipTrips(ctx context.Context, opts SelectShipTripsOpts) ([]*domain.TripRow, error) {
	query := builder().Select(
		`e.id as entry_id, l.ship_id, sh.international_number as ship_number,
l.status as license_status, e.fuel_liters, e.start_time, e.end_time`).
		From(tableLogbookEntries + " e").
		Join(tableLicenses + " l on l.id=e.license_id").
		LeftJoin(tableShips + " sh on sh.id=l.ship_id").
		Where(sq.GtOrEq{"e.fishing_date": opts.From}).
		Where(sq.LtOrEq{"e.fishing_date": opts.To}).
		Where(sq.NotEq{"l.ship_id": nil})

	if opts.ExcludeRevoked {
		query = query.Where(sq.NotEq{"l.status": domain.LicenseStatusRevoked})
	}

	selected, err := xpgx.Selectx[domain.TripRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectCatchWeights(ctx context.Context, entryIDs []int64) ([]*domain.CatchWeightRow, error) {
	if len(entryIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("logbook_entry_id, weight_kgs").
		From(tableCatchDetails).
		Where(sq.Eq{"logbook_entry_id": entryIDs})

	selected, err := xpgx.Selectx[domain.CatchWeightRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectInspections(ctx context.Context, opts SelectInspectionsOpts) ([]*domain.InspectionRow, error) {
	query := builder().Select(
		`i.id as inspection_id, i.inspection_date,
ins.first_name as inspector_first, ins.last_name as inspector_last,
sh.name as ship_name, l.license_number,
i.inspection_type, i.status, i.violations, i.actions_taken`).
		From(tableInspections + " i").
		LeftJoin(tableInspectors + " ins on ins.id=i.inspector_id").
		LeftJoin(tableShips + " sh on sh.id=i.ship_id").
		LeftJoin(tableLicenses + " l on l.id=i.license_id").
		Where(sq.GtOrEq{"i.inspection_date": opts.From}).
		Where(sq.LtOrEq{"i.inspection_date": opts.To})

	if opts.InspectorID != nil {
		query = query.Where(sq.Eq{"i.inspector_id": *opts.InspectorID})
	}

	selected, err := xpgx.Selectx[domain.InspectionRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectLicensesIssuedBetween(ctx context.Context, from, to time.Time) ([]*domain.IssuedLicenseRow, error) {
	query := builder().Select("fisher_id, status").
		From(tableLicenses).
		Where(sq.GtOrEq{"issue_date": from}).
		Where(sq.LtOrEq{"issue_date": to})

	selected, err := xpgx.Selectx[domain.IssuedLicenseRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountActiveShipsByOwner(ctx context.Context) ([]*domain.OwnerShipCount, error) {
	query := builder().Select("owner_fisher_id as fisher_id, count(*) as ships").
		From(tableShips).
		Where(sq.Eq{"is_active": true}).
		Where(sq.NotEq{"owner_fisher_id": nil}).
		GroupBy("owner_fisher_id")

	selected, err := xpgx.Selectx[domain.OwnerShipCount](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectAmateurWeightsByTicketYear(ctx context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error) {
	query := builder().Select("t.fisher_id, c.weight_kgs").
		From(tableAmateurCatches + " c").
		Join(tableAmateurTickets + " t on t.id=c.amateur_ticket_id").
		Where(sq.GtOrEq{"t.issue_date": from}).
		Where(sq.LtOrEq{"t.issue_date": to})

	selected, err := xpgx.Selectx[domain.FisherWeightRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SelectProfessionalWeights walks license -> logbook entry -> catch detail,
// keeping licenses issued within the window and trips fished within it.
func (s *store) SelectProfessionalWeights(ctx context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error) {
	query := builder().Select("l.fisher_id, cd.weight_kgs").
		From(tableCatchDetails + " cd").
		Join(tableLogbookEntries + " e on e.id=cd.logbook_entry_id").
		Join(tableLicenses + " l on l.id=e.license_id").
		Where(sq.GtOrEq{"l.issue_date": from}).
		Where(sq.LtOrEq{"l.issue_date": to}).
		Where(sq.GtOrEq{"e.fishing_date": from}).
		Where(sq.LtOrEq{"e.fishing_date": to})

	selected, err := xpgx.Selectx[domain.FisherWeightRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListFishers(ctx context.Context) ([]*domain.Fisher, error) {
	query := builder().Select(fisherColumns...).
		From(tableFishers).
		OrderBy("last_name, first_name")

	selected, err := xpgx.Selectx[domain.Fisher](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) SelectFishersByIDs(ctx context.Context, ids []int64) ([]*domain.Fisher, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := builder().Select(fisherColumns...).
		From(tableFishers).
		Where(sq.Eq{"id": ids})

	selected, err := xpgx.Selectx[domain.Fisher](ctx, s.pool, query)
	if err != nil {
		return nil, fmt.Errorf("select fishers: %w", wrapErr(err))
	}

	return selected, nil
}

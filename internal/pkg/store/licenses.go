package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

type ListLicensesOpts struct {
	Status   *string
	FisherID *int64
	ShipID   *int64
	// ExpiringBefore keeps only active-window licenses expiring between now
	// and the given cutoff.
	ExpiringBefore *time.Time
}

func (s *store) ListLicenses(ctx context.Context, opts ListLicensesOpts) ([]*domain.LicenseListRow, error) {
	query := builder().Select(
		`l.id, l.license_number, l.fisher_id, l.ship_id, l.issue_date,
l.expiry_date, l.status, l.license_type, l.issuing_authority, l.notes,
l.created_at, f.first_name as fisher_first, f.last_name as fisher_last,
sh.name as ship_name`).
		From(tableLicenses + " l").
		LeftJoin(tableFishers + " f on f.id=l.fisher_id").
		LeftJoin(tableShips + " sh on sh.id=l.ship_id").
		OrderBy("l.issue_date desc")

	if opts.Status != nil {
		query = query.Where(sq.Eq{"l.status": *opts.Status})
	}
	if opts.FisherID != nil {
		query = query.Where(sq.Eq{"l.fisher_id": *opts.FisherID})
	}
	if opts.ShipID != nil {
		query = query.Where(sq.Eq{"l.ship_id": *opts.ShipID})
	}
	if opts.ExpiringBefore != nil {
		query = query.
			Where(sq.NotEq{"l.expiry_date": nil}).
			Where(sq.LtOrEq{"l.expiry_date": *opts.ExpiringBefore}).
			Where(sq.GtOrEq{"l.expiry_date": time.Now().Truncate(24 * time.Hour)})
	}

	selected, err := xpgx.Selectx[domain.LicenseListRow](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) InsertLicense(ctx context.Context, license *domain.License) (int64, error) {
	query := builder().Insert(tableLicenses).
		Columns("license_number", "fisher_id", "ship_id", "issue_date",
			"expiry_date", "status", "license_type", "issuing_authority", "notes").
		Values(license.LicenseNumber, license.FisherID, license.ShipID,
			license.IssueDate, license.ExpiryDate, license.Status,
			license.LicenseType, license.IssuingAuthority, license.Notes).
		Suffix("RETURNING id")

	id, err := xpgx.Getcx[int64](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return id, nil
}

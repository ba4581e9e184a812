package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

var shipColumns = []string{
	"id", "name", "international_number", "call_sign", "marking",
	"registration_number", "home_port", "length", "width", "gross_tonnage",
	"engine_power", "engine_type", "fuel_type", "avg_fuel_per_hour",
	"is_large_ship", "owner_fisher_id", "captain_fisher_id",
	"operator_fisher_id", "is_active", "status", "created_at", "updated_at",
}

type ListShipsOpts struct {
	Search     *string
	ActiveOnly bool
	Limit      int
	Offset     int
}

func shipFilter(query sq.SelectBuilder, opts ListShipsOpts) sq.SelectBuilder {
	if opts.Search != nil {
		pattern := "%" + *opts.Search + "%"
		query = query.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"international_number": pattern},
			sq.ILike{"call_sign": pattern},
			sq.ILike{"registration_number": pattern},
		})
	}
	if opts.ActiveOnly {
		query = query.Where(sq.Eq{"is_active": true})
	}
	return query
}

func (s *store) ListShips(ctx context.Context, opts ListShipsOpts) ([]*domain.Ship, error) {
	query := shipFilter(builder().Select(shipColumns...).From(tableShips), opts).
		OrderBy("name")

	if opts.Limit > 0 {
		query = query.Limit(uint64(opts.Limit)).Offset(uint64(opts.Offset))
	}

	selected, err := xpgx.Selectx[domain.Ship](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) CountShips(ctx context.Context, opts ListShipsOpts) (int64, error) {
	query := shipFilter(builder().Select("count(*)").From(tableShips), opts)

	count, err := xpgx.Getcx[int64](ctx, s.pool, query)
	if err != nil {
		return 0, wrapErr(err)
	}

	return count, nil
}

func (s *store) GetShipByID(ctx context.Context, id int64) (*domain.Ship, error) {
	query := builder().Select(shipColumns...).
		From(tableShips).
		Where(sq.Eq{"id": id})

	selected, err := xpgx.Getx[domain.Ship](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// SelectActiveLicenseNumbers returns, per ship, one active license number if
// any exists.
func (s *store) SelectActiveLicenseNumbers(ctx context.Context, shipIDs []int64) ([]*domain.ShipLicenseNumber, error) {
	if len(shipIDs) == 0 {
		return nil, nil
	}

	query := builder().Select("ship_id, min(license_number) as license_number").
		From(tableLicenses).
		Where(sq.Eq{"ship_id": shipIDs}).
		Where(sq.Eq{"status": domain.LicenseStatusActive}).
		GroupBy("ship_id")

	selected, err := xpgx.Selectx[domain.ShipLicenseNumber](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

package store

import (
	"context"
	"time"

	"fishreg/internal/domain"
	"fishreg/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the read/write surface over the registry's relational state. The
// report methods are bulk filtered reads with the referenced relations joined
// in; they never mutate.
type Store interface {
	// Report reads.
	SelectExpiringLicenses(ctx context.Context, from, to time.Time) ([]*domain.ExpiringLicenseRow, error)
	SelectAmateurCatchesSince(ctx context.Context, since time.Time) ([]*domain.AmateurCatchRow, error)
	SelectShipTrips(ctx context.Context, opts SelectShipTripsOpts) ([]*domain.TripRow, error)
	SelectCatchWeights(ctx context.Context, entryIDs []int64) ([]*domain.CatchWeightRow, error)
	SelectInspections(ctx context.Context, opts SelectInspectionsOpts) ([]*domain.InspectionRow, error)
	ListFishers(ctx context.Context) ([]*domain.Fisher, error)
	SelectLicensesIssuedBetween(ctx context.Context, from, to time.Time) ([]*domain.IssuedLicenseRow, error)
	CountActiveShipsByOwner(ctx context.Context) ([]*domain.OwnerShipCount, error)
	SelectAmateurWeightsByTicketYear(ctx context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error)
	SelectProfessionalWeights(ctx context.Context, from, to time.Time) ([]*domain.FisherWeightRow, error)

	// Registry reads.
	ListShips(ctx context.Context, opts ListShipsOpts) ([]*domain.Ship, error)
	CountShips(ctx context.Context, opts ListShipsOpts) (int64, error)
	GetShipByID(ctx context.Context, id int64) (*domain.Ship, error)
	SelectFishersByIDs(ctx context.Context, ids []int64) ([]*domain.Fisher, error)
	SelectActiveLicenseNumbers(ctx context.Context, shipIDs []int64) ([]*domain.ShipLicenseNumber, error)
	ListLicenses(ctx context.Context, opts ListLicensesOpts) ([]*domain.LicenseListRow, error)
	ListInspectionRecords(ctx context.Context, opts ListInspectionRecordsOpts) ([]*domain.InspectionListRow, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// Registry writes.
	InsertLicense(ctx context.Context, license *domain.License) (int64, error)
	InsertInspection(ctx context.Context, inspection *domain.Inspection) (int64, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}

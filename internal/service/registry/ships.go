package registry

import (
	"context"
	"fmt"
	"math"

	"fishreg/internal/domain"
	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/store"
)

type ListShipsOpts struct {
	Search     *string
	ActiveOnly bool
	Page       int
	PageSize   int
}

// ListShips returns one page of ships with owner/captain names and the active
// license number resolved. Related rows are batch-fetched by id.
func (s *Service) ListShips(ctx context.Context, opts ListShipsOpts) (*dto.ShipPage, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = 20
	}

	storeOpts := store.ListShipsOpts{
		Search:     opts.Search,
		ActiveOnly: opts.ActiveOnly,
		Limit:      opts.PageSize,
		Offset:     (opts.Page - 1) * opts.PageSize,
	}

	totalCount, err := s.store.CountShips(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("store.CountShips: %w", err)
	}

	ships, err := s.store.ListShips(ctx, storeOpts)
	if err != nil {
		return nil, fmt.Errorf("store.ListShips: %w", err)
	}

	page := &dto.ShipPage{
		TotalCount: totalCount,
		Page:       opts.Page,
		PageSize:   opts.PageSize,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(opts.PageSize))),
		Ships:      make([]*dto.Ship, 0, len(ships)),
	}

	fisherNames, licenseNumbers, err := s.resolveShipRefs(ctx, ships)
	if err != nil {
		return nil, err
	}

	for _, ship := range ships {
		page.Ships = append(page.Ships, shipToDto(ship, fisherNames, licenseNumbers))
	}

	return page, nil
}

func (s *Service) GetShip(ctx context.Context, id int64) (*dto.Ship, error) {
	ship, err := s.store.GetShipByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("store.GetShipByID: %w", err)
	}

	fisherNames, licenseNumbers, err := s.resolveShipRefs(ctx, []*domain.Ship{ship})
	if err != nil {
		return nil, err
	}

	return shipToDto(ship, fisherNames, licenseNumbers), nil
}

func (s *Service) resolveShipRefs(ctx context.Context, ships []*domain.Ship) (map[int64]*string, map[int64]*string, error) {
	fisherIDs := make([]int64, 0, 2*len(ships))
	shipIDs := make([]int64, 0, len(ships))
	for _, ship := range ships {
		shipIDs = append(shipIDs, ship.ID)
		if ship.OwnerFisherID != nil {
			fisherIDs = append(fisherIDs, *ship.OwnerFisherID)
		}
		if ship.CaptainFisherID != nil {
			fisherIDs = append(fisherIDs, *ship.CaptainFisherID)
		}
	}

	fishers, err := s.store.SelectFishersByIDs(ctx, fisherIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("store.SelectFishersByIDs: %w", err)
	}
	fisherNames := make(map[int64]*string, len(fishers))
	for _, f := range fishers {
		fisherNames[f.ID] = fullName(f.FirstName, f.LastName)
	}

	numbers, err := s.store.SelectActiveLicenseNumbers(ctx, shipIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("store.SelectActiveLicenseNumbers: %w", err)
	}
	licenseNumbers := make(map[int64]*string, len(numbers))
	for _, n := range numbers {
		licenseNumbers[n.ShipID] = n.LicenseNumber
	}

	return fisherNames, licenseNumbers, nil
}

func shipToDto(ship *domain.Ship, fisherNames, licenseNumbers map[int64]*string) *dto.Ship {
	out := &dto.Ship{
		ID:                  ship.ID,
		Name:                ship.Name,
		InternationalNumber: ship.InternationalNumber,
		CallSign:            ship.CallSign,
		RegistrationNumber:  ship.RegistrationNumber,
		HomePort:            ship.HomePort,
		Length:              ship.Length,
		GrossTonnage:        ship.GrossTonnage,
		EngineType:          ship.EngineType,
		FuelType:            ship.FuelType,
		AvgFuelPerHour:      ship.AvgFuelPerHour,
		IsLargeShip:         ship.IsLargeShip,
		IsActive:            ship.IsActive,
		ActiveLicenseNumber: licenseNumbers[ship.ID],
		CreatedAt:           ship.CreatedAt,
	}
	if ship.OwnerFisherID != nil {
		out.OwnerName = fisherNames[*ship.OwnerFisherID]
	}
	if ship.CaptainFisherID != nil {
		out.CaptainName = fisherNames[*ship.CaptainFisherID]
	}
	return out
}

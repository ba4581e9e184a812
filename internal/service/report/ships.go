package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fishreg/internal/domain"
	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
)

func yearWindow(year int) (time.Time, time.Time) {
	return time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)
}

// catchWeightsByEntry batch-fetches the catch lines of the given trips and
// indexes them by logbook entry.
func (s *Service) catchWeightsByEntry(ctx context.Context, trips []*domain.TripRow) (map[int64][]decimal.NullDecimal, error) {
	entryIDs := make([]int64, 0, len(trips))
	for _, t := range trips {
		entryIDs = append(entryIDs, t.EntryID)
	}

	weights, err := s.store.SelectCatchWeights(ctx, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("store.SelectCatchWeights: %w", err)
	}

	byEntry := make(map[int64][]decimal.NullDecimal, len(trips))
	for _, w := range weights {
		byEntry[w.LogbookEntryID] = append(byEntry[w.LogbookEntryID], w.WeightKgs)
	}
	return byEntry, nil
}

// ShipCatchAnalysis aggregates a year of logbook trips per ship: trip count,
// total catch, and max/min/avg catch. Ships without any trip in the year are
// absent from the result, heaviest total first.
func (s *Service) ShipCatchAnalysis(ctx context.Context, year int) ([]*dto.ShipCatchAnalysis, error) {
	from, to := yearWindow(year)

	trips, err := s.store.SelectShipTrips(ctx, store.SelectShipTripsOpts{From: from, To: to})
	if err != nil {
		logger.Errorf(ctx, "ship catch analysis, year-%d: %s", year, err.Error())
		return nil, fmt.Errorf("store.SelectShipTrips: %w", err)
	}

	weightsByEntry, err := s.catchWeightsByEntry(ctx, trips)
	if err != nil {
		logger.Errorf(ctx, "ship catch analysis, year-%d: %s", year, err.Error())
		return nil, err
	}

	type shipGroup struct {
		shipNumber *string
		trips      int
		// recorded catch-line weights only; absent weights are not
		// candidates for min/max
		weights []decimal.Decimal
	}

	groups := make(map[int64]*shipGroup)
	order := make([]int64, 0)
	for _, t := range trips {
		g, ok := groups[t.ShipID]
		if !ok {
			g = &shipGroup{shipNumber: t.ShipNumber}
			groups[t.ShipID] = g
			order = append(order, t.ShipID)
		}
		g.trips++
		for _, w := range weightsByEntry[t.EntryID] {
			if w.Valid {
				g.weights = append(g.weights, w.Decimal)
			}
		}
	}

	result := make([]*dto.ShipCatchAnalysis, 0, len(order))
	for _, shipID := range order {
		g := groups[shipID]

		// max/min/avg run over the individual catch lines of the ship's
		// year, not over per-trip totals.
		total := decimal.Decimal{}
		maxW, minW := decimal.Decimal{}, decimal.Decimal{}
		for i, w := range g.weights {
			total = total.Add(w)
			if i == 0 || w.GreaterThan(maxW) {
				maxW = w
			}
			if i == 0 || w.LessThan(minW) {
				minW = w
			}
		}

		avg := 0.0
		if len(g.weights) > 0 {
			avg = total.Div(decimal.NewFromInt(int64(len(g.weights)))).InexactFloat64()
		}

		result = append(result, &dto.ShipCatchAnalysis{
			ShipNumber:         strOr(g.shipNumber, "N/A"),
			TotalTrips:         g.trips,
			TotalCatchKgs:      total.InexactFloat64(),
			MaxCatchPerTripKgs: maxW.InexactFloat64(),
			MinCatchPerTripKgs: minW.InexactFloat64(),
			AvgCatchPerTripKgs: avg,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCatchKgs > result[j].TotalCatchKgs
	})

	logger.Infof(ctx, "ship catch analysis: year-%d, %d ships", year, len(result))
	return result, nil
}

// ShipFuelEfficiency computes the per-ship carbon footprint proxy for a year:
// fuel burned per kilogram of catch, most efficient first. Trips under a
// revoked license are excluded, as are ships with no recorded catch.
func (s *Service) ShipFuelEfficiency(ctx context.Context, year int) ([]*dto.ShipFuelEfficiency, error) {
	from, to := yearWindow(year)

	trips, err := s.store.SelectShipTrips(ctx, store.SelectShipTripsOpts{
		From:           from,
		To:             to,
		ExcludeRevoked: true,
	})
	if err != nil {
		logger.Errorf(ctx, "ship fuel efficiency, year-%d: %s", year, err.Error())
		return nil, fmt.Errorf("store.SelectShipTrips: %w", err)
	}

	weightsByEntry, err := s.catchWeightsByEntry(ctx, trips)
	if err != nil {
		logger.Errorf(ctx, "ship fuel efficiency, year-%d: %s", year, err.Error())
		return nil, err
	}

	type shipGroup struct {
		shipNumber *string
		catch      decimal.Decimal
		fuel       decimal.Decimal
		hours      float64
	}

	groups := make(map[int64]*shipGroup)
	order := make([]int64, 0)
	for _, t := range trips {
		g, ok := groups[t.ShipID]
		if !ok {
			g = &shipGroup{shipNumber: t.ShipNumber}
			groups[t.ShipID] = g
			order = append(order, t.ShipID)
		}

		for _, w := range weightsByEntry[t.EntryID] {
			g.catch = g.catch.Add(nz(w))
		}
		g.fuel = g.fuel.Add(nz(t.FuelLiters))
		g.hours += fishingHours(t.StartTime, t.EndTime)
	}

	result := make([]*dto.ShipFuelEfficiency, 0, len(order))
	for _, shipID := range order {
		g := groups[shipID]
		if !g.catch.IsPositive() {
			// no recorded catch, the ratio is meaningless
			continue
		}

		fuelPerKg := g.fuel.Div(g.catch).InexactFloat64()
		avgFuelPerHour := 0.0
		if g.hours > 0 {
			avgFuelPerHour = g.fuel.InexactFloat64() / g.hours
		}

		result = append(result, &dto.ShipFuelEfficiency{
			ShipNumber:        strOr(g.shipNumber, "N/A"),
			TotalCatchKgs:     g.catch.InexactFloat64(),
			TotalFuelUsed:     g.fuel.InexactFloat64(),
			TotalFishingHours: g.hours,
			FuelPerKgCatch:    fuelPerKg,
			AvgFuelPerHour:    avgFuelPerHour,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].FuelPerKgCatch < result[j].FuelPerKgCatch
	})

	logger.Infof(ctx, "ship fuel efficiency: year-%d, %d ships", year, len(result))
	return result, nil
}

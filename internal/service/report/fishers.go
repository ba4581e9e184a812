package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"fishreg/internal/domain"
	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
)

// FisherStatistics builds the per-fisher yearly picture: licenses issued in
// the year, currently-active owned ships, and amateur plus professional catch
// weight. Fishers with no license and no catch for the year are dropped.
// The five bulk reads are independent and run concurrently.
func (s *Service) FisherStatistics(ctx context.Context, year int) ([]*dto.FisherStatistics, error) {
	from, to := yearWindow(year)

	var (
		fishers      []*domain.Fisher
		licenses     []*domain.IssuedLicenseRow
		shipCounts   []*domain.OwnerShipCount
		amateur      []*domain.FisherWeightRow
		professional []*domain.FisherWeightRow
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		if fishers, err = s.store.ListFishers(egCtx); err != nil {
			return fmt.Errorf("store.ListFishers: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if licenses, err = s.store.SelectLicensesIssuedBetween(egCtx, from, to); err != nil {
			return fmt.Errorf("store.SelectLicensesIssuedBetween: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if shipCounts, err = s.store.CountActiveShipsByOwner(egCtx); err != nil {
			return fmt.Errorf("store.CountActiveShipsByOwner: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if amateur, err = s.store.SelectAmateurWeightsByTicketYear(egCtx, from, to); err != nil {
			return fmt.Errorf("store.SelectAmateurWeightsByTicketYear: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if professional, err = s.store.SelectProfessionalWeights(egCtx, from, to); err != nil {
			return fmt.Errorf("store.SelectProfessionalWeights: %w", err)
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		logger.Errorf(ctx, "fisher statistics, year-%d: %s", year, err.Error())
		return nil, err
	}

	totalLicenses := make(map[int64]int, len(licenses))
	activeLicenses := make(map[int64]int, len(licenses))
	for _, l := range licenses {
		totalLicenses[l.FisherID]++
		if l.Status == domain.LicenseStatusActive {
			activeLicenses[l.FisherID]++
		}
	}

	ownedShips := make(map[int64]int, len(shipCounts))
	for _, c := range shipCounts {
		ownedShips[c.FisherID] = int(c.Ships)
	}

	sumByFisher := func(rows []*domain.FisherWeightRow) map[int64]decimal.Decimal {
		sums := make(map[int64]decimal.Decimal, len(rows))
		for _, r := range rows {
			sums[r.FisherID] = sums[r.FisherID].Add(nz(r.WeightKgs))
		}
		return sums
	}
	amateurKgs := sumByFisher(amateur)
	professionalKgs := sumByFisher(professional)

	result := make([]*dto.FisherStatistics, 0, len(fishers))
	for _, f := range fishers {
		amateurTotal := amateurKgs[f.ID].InexactFloat64()
		professionalTotal := professionalKgs[f.ID].InexactFloat64()

		if totalLicenses[f.ID] == 0 && amateurTotal == 0 && professionalTotal == 0 {
			continue
		}

		result = append(result, &dto.FisherStatistics{
			FisherID:               f.ID,
			FisherName:             fullName(&f.FirstName, &f.LastName, "N/A"),
			TotalLicenses:          totalLicenses[f.ID],
			ActiveLicenses:         activeLicenses[f.ID],
			OwnedShips:             ownedShips[f.ID],
			AmateurCatchesKgs:      amateurTotal,
			ProfessionalCatchesKgs: professionalTotal,
			TotalCatchesKgs:        amateurTotal + professionalTotal,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCatchesKgs > result[j].TotalCatchesKgs
	})

	logger.Infof(ctx, "fisher statistics: year-%d, %d fishers", year, len(result))
	return result, nil
}

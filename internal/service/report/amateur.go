package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"fishreg/internal/domain/dto"
	"fishreg/internal/pkg/logger"
)

// AmateurCatchRanking ranks fishers by recreational catch weight over the
// last lastMonths months, heaviest first.
func (s *Service) AmateurCatchRanking(ctx context.Context, lastMonths int) ([]*dto.AmateurRanking, error) {
	cutoff := s.today().AddDate(0, -lastMonths, 0)

	rows, err := s.store.SelectAmateurCatchesSince(ctx, cutoff)
	if err != nil {
		logger.Errorf(ctx, "amateur ranking report, last_months-%d: %s", lastMonths, err.Error())
		return nil, fmt.Errorf("store.SelectAmateurCatchesSince: %w", err)
	}

	totals := make(map[int64]decimal.Decimal, len(rows))
	names := make(map[int64]string, len(rows))
	order := make([]int64, 0, len(rows))
	for _, r := range rows {
		if _, ok := totals[r.FisherID]; !ok {
			order = append(order, r.FisherID)
			names[r.FisherID] = fullName(r.FirstName, r.LastName, "Unknown")
		}
		totals[r.FisherID] = totals[r.FisherID].Add(nz(r.WeightKgs))
	}

	result := make([]*dto.AmateurRanking, 0, len(order))
	for _, fisherID := range order {
		result = append(result, &dto.AmateurRanking{
			FisherID:        fisherID,
			FisherName:      names[fisherID],
			TotalCatchInKgs: totals[fisherID].InexactFloat64(),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TotalCatchInKgs > result[j].TotalCatchInKgs
	})

	logger.Infof(ctx, "amateur ranking report: last_months-%d, %d fishers", lastMonths, len(result))
	return result, nil
}

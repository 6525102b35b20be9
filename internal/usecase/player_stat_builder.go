package usecase

import (
	"context"
	"slices"

	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
)

func (s *ExtractionService) buildPlayerStats(ctx context.Context, run *extractionRun, startPeriod, maxPeriod int) (playerstat.Index, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.buildPlayerStats")
	defer span.End()

	fragments := make([][]playerstat.Stat, 0, maxPeriod-startPeriod+1)
	for period := startPeriod; period <= maxPeriod; period++ {
		stats, err := s.source.FetchLivePeriod(ctx, period)
		if err != nil {
			if skipErr := run.skipUnit(ctx, "live period fetch failed, period has no player stats", err, "period", period); skipErr != nil {
				return nil, skipErr
			}
			continue
		}
		rows := make([]playerstat.Stat, len(stats))
		for i, stat := range stats {
			stat.Period = period
			rows[i] = stat
		}
		fragments = append(fragments, rows)
	}
	return playerstat.NewIndex(slices.Concat(fragments...)), nil
}

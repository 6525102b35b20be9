package usecase

import (
	"context"
	"slices"

	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/transfer"
)

func (s *ExtractionService) buildHistory(ctx context.Context, run *extractionRun, lg league.League) (history.Table, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.buildHistory")
	defer span.End()

	fragments := make([][]history.TeamPeriod, 0, len(lg.Teams))
	missing := make([]league.Team, 0)
	for _, team := range lg.Teams {
		periods, err := s.source.FetchEntryHistory(ctx, team.EntryID)
		if err != nil {
			if skipErr := run.skipUnit(ctx, "entry history fetch failed, team has no history rows", err, "entry_id", team.EntryID); skipErr != nil {
				return history.Table{}, skipErr
			}
			missing = append(missing, team)
			continue
		}

		rows := make([]history.TeamPeriod, 0, len(periods))
		for _, item := range periods {
			if item.Period < lg.StartPeriod {
				continue
			}
			rows = append(rows, history.TeamPeriod{
				EntryID:           team.EntryID,
				TeamID:            team.ID,
				ManagerName:       team.ManagerName,
				TeamName:          team.TeamName,
				Period:            item.Period,
				Points:            item.Points,
				TransferCount:     item.TransferCount,
				TransferPointCost: item.TransferCost,
				BankBalance:       transfer.NormalizeCost(item.Bank),
				SquadValue:        transfer.NormalizeCost(item.Value),
				PointsOnBench:     item.PointsOnBench,
				OverallRank:       item.OverallRank,
				ActiveChip:        item.ActiveChip,
			})
		}
		if len(rows) == 0 {
			missing = append(missing, team)
			continue
		}
		fragments = append(fragments, rows)
	}

	return history.NewTable(slices.Concat(fragments...), missing), nil
}

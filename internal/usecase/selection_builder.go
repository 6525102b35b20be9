package usecase

import (
	"context"
	"slices"

	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
)

// buildSelections fetches picks for every team-period present in history.
// Teams without a history row for a period are not visited for it.
func (s *ExtractionService) buildSelections(ctx context.Context, run *extractionRun, hist history.Table, startPeriod, maxPeriod int) ([]selection.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.buildSelections")
	defer span.End()

	fragments := make([][]selection.Pick, 0, len(hist.Rows))
	for period := startPeriod; period <= maxPeriod; period++ {
		for _, row := range hist.Period(period) {
			picks, err := s.source.FetchEntryPicks(ctx, row.EntryID, period)
			if err != nil {
				if skipErr := run.skipUnit(ctx, "entry picks fetch failed, skipping team-period", err, "entry_id", row.EntryID, "period", period); skipErr != nil {
					return nil, skipErr
				}
				continue
			}
			fragments = append(fragments, s.toPicks(ctx, run, row.EntryID, period, picks))
		}
	}
	return slices.Concat(fragments...), nil
}

func (s *ExtractionService) toPicks(ctx context.Context, run *extractionRun, entryID int64, period int, in ExternalEntryPicks) []selection.Pick {
	picks := make([]selection.Pick, 0, len(in.Picks))
	captains, vices := 0, 0
	for _, item := range in.Picks {
		if item.IsCaptain {
			captains++
		}
		if item.IsViceCaptain {
			vices++
		}
		picks = append(picks, selection.Pick{
			EntryID:       entryID,
			Period:        period,
			PlayerID:      item.PlayerID,
			SquadSlot:     item.Position,
			IsCaptain:     item.IsCaptain,
			IsViceCaptain: item.IsViceCaptain,
			Multiplier:    item.Multiplier,
			ActiveChip:    in.ActiveChip,
		})
	}
	if len(picks) > selection.SquadSize || captains > 1 || vices > 1 {
		run.logger.WarnContext(ctx, "unexpected squad shape from source",
			"entry_id", entryID,
			"period", period,
			"picks", len(picks),
			"captains", captains,
			"vice_captains", vices,
		)
	}

	subs := make([]selection.Substitution, 0, len(in.AutomaticSubs))
	for _, sub := range in.AutomaticSubs {
		subs = append(subs, selection.Substitution{PlayerIn: sub.PlayerIn, PlayerOut: sub.PlayerOut})
	}
	return selection.Annotate(picks, subs)
}

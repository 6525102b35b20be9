package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
	"github.com/riskibarqy/fpl-ledger/internal/domain/transfer"
)

const (
	transferDateLayout = "2006-01-02"
	transferTimeLayout = "15:04:05"
)

type rawTransfer struct {
	team league.Team
	item ExternalTransfer
}

// buildTransfers fetches each team's transfer log, keeps the events inside
// the run window and joins teams, players and league rank. Transfer ids are
// assigned after the joins.
func (s *ExtractionService) buildTransfers(
	ctx context.Context,
	run *extractionRun,
	lg league.League,
	refs reference.Table,
	hist history.Table,
	startPeriod, maxPeriod int,
) ([]transfer.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.buildTransfers")
	defer span.End()

	raw := make([]rawTransfer, 0, len(lg.Teams)*4)
	for _, team := range lg.Teams {
		items, err := s.source.FetchEntryTransfers(ctx, team.EntryID)
		if err != nil {
			if skipErr := run.skipUnit(ctx, "entry transfers fetch failed, team has no transfer rows", err, "entry_id", team.EntryID); skipErr != nil {
				return nil, skipErr
			}
			continue
		}
		for _, item := range items {
			if item.Period < startPeriod || item.Period > maxPeriod {
				continue
			}
			raw = append(raw, rawTransfer{team: team, item: item})
		}
	}

	loc := s.cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	events := make([]transfer.Event, 0, len(raw))
	for i, r := range raw {
		local := r.item.Time.In(loc)
		ev := transfer.Event{
			TransferID:    i,
			Team:          r.team,
			Period:        r.item.Period,
			Time:          r.item.Time,
			LocalTime:     local,
			Date:          local.Format(transferDateLayout),
			TimeOfDay:     local.Format(transferTimeLayout),
			PlayerInID:    r.item.PlayerIn,
			PlayerInCost:  transfer.NormalizeCost(r.item.PlayerInCost),
			PlayerOutID:   r.item.PlayerOut,
			PlayerOutCost: transfer.NormalizeCost(r.item.PlayerOutCost),
		}
		ev.PlayerIn, _ = refs.Lookup(r.item.PlayerIn)
		ev.PlayerOut, _ = refs.Lookup(r.item.PlayerOut)
		if row, ok := hist.Lookup(r.team.EntryID, r.item.Period); ok {
			rank := row.LeagueRank
			ev.LeagueRank = &rank
		}
		events = append(events, ev)
	}
	return events, nil
}

// buildLedger explodes events into one row per side and attaches the
// player's points for the transfer period when known.
func buildLedger(events []transfer.Event, stats playerstat.Index) []transfer.LedgerEntry {
	ledger := transfer.Explode(events)
	for i := range ledger {
		if stat, ok := stats.Lookup(ledger[i].Period, ledger[i].PlayerID); ok {
			points := stat.TotalPoints
			ledger[i].PointsEarned = &points
		}
	}
	return ledger
}

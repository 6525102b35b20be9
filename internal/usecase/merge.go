package usecase

import (
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
)

// mergeSelections enriches every pick with its player reference, its period
// stats and its team. Rows follow standings order, then pick order. A pick
// with no stat row earns zero and has HasStat false.
func mergeSelections(lg league.League, refs reference.Table, stats playerstat.Index, picks []selection.Pick) []selection.Fact {
	byEntry := make(map[int64][]selection.Pick, len(lg.Teams))
	for _, pick := range picks {
		byEntry[pick.EntryID] = append(byEntry[pick.EntryID], pick)
	}

	out := make([]selection.Fact, 0, len(picks))
	for _, team := range lg.Teams {
		for _, pick := range byEntry[team.EntryID] {
			fact := selection.Fact{Team: team, Pick: pick}
			fact.Player, fact.HasReference = refs.Lookup(pick.PlayerID)
			fact.Stat, fact.HasStat = stats.Lookup(pick.Period, pick.PlayerID)
			if fact.HasStat {
				fact.PointsEarned = pick.Multiplier * fact.Stat.TotalPoints
			}
			out = append(out, fact)
		}
	}
	return out
}

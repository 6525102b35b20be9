package history

import (
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/shopspring/decimal"
)

// TeamPeriod is one team's reported result for one period (gameweek).
type TeamPeriod struct {
	EntryID     int64
	TeamID      int64
	ManagerName string
	TeamName    string
	Period      int

	// Points is the gross period score before transfer hits.
	Points            int
	TransferCount     int
	TransferPointCost int
	BankBalance       decimal.Decimal
	SquadValue        decimal.Decimal
	PointsOnBench     int
	OverallRank       int
	ActiveChip        string

	NetPoints        int
	CumulativePoints int
	LeagueRank       int
}

type key struct {
	entryID int64
	period  int
}

// Table holds the derived history rows plus the teams that reported none.
type Table struct {
	Rows                []TeamPeriod
	TeamsWithoutHistory []league.Team

	index map[key]int
}

// NewTable derives net points, cumulative points and league rank for rows
// and returns them ordered by team then period.
func NewTable(rows []TeamPeriod, missing []league.Team) Table {
	derived := Derive(rows)
	index := make(map[key]int, len(derived))
	for i, row := range derived {
		index[key{entryID: row.EntryID, period: row.Period}] = i
	}
	return Table{
		Rows:                derived,
		TeamsWithoutHistory: missing,
		index:               index,
	}
}

func (t Table) Lookup(entryID int64, period int) (TeamPeriod, bool) {
	if t.index == nil {
		for _, row := range t.Rows {
			if row.EntryID == entryID && row.Period == period {
				return row, true
			}
		}
		return TeamPeriod{}, false
	}
	i, ok := t.index[key{entryID: entryID, period: period}]
	if !ok {
		return TeamPeriod{}, false
	}
	return t.Rows[i], true
}

// Period returns the rows for one period in table order.
func (t Table) Period(period int) []TeamPeriod {
	out := make([]TeamPeriod, 0, 16)
	for _, row := range t.Rows {
		if row.Period == period {
			out = append(out, row)
		}
	}
	return out
}

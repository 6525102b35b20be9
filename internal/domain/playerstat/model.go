package playerstat

import "github.com/shopspring/decimal"

// Stat is one player's live scoring line for one period.
type Stat struct {
	PlayerID int64
	Period   int

	Minutes         int
	GoalsScored     int
	Assists         int
	CleanSheets     int
	GoalsConceded   int
	OwnGoals        int
	PenaltiesSaved  int
	PenaltiesMissed int
	YellowCards     int
	RedCards        int
	Saves           int
	Bonus           int
	BPS             int
	Starts          int

	Influence                decimal.Decimal
	Creativity               decimal.Decimal
	Threat                   decimal.Decimal
	ICTIndex                 decimal.Decimal
	ExpectedGoals            decimal.Decimal
	ExpectedAssists          decimal.Decimal
	ExpectedGoalInvolvements decimal.Decimal
	ExpectedGoalsConceded    decimal.Decimal

	TotalPoints int
}

type Key struct {
	Period   int
	PlayerID int64
}

// Index looks stats up by (period, player).
type Index map[Key]Stat

func NewIndex(stats []Stat) Index {
	out := make(Index, len(stats))
	for _, stat := range stats {
		out[Key{Period: stat.Period, PlayerID: stat.PlayerID}] = stat
	}
	return out
}

func (i Index) Lookup(period int, playerID int64) (Stat, bool) {
	stat, ok := i[Key{Period: period, PlayerID: playerID}]
	return stat, ok
}

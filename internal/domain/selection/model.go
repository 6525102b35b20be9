package selection

import (
	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
)

const (
	SquadSize     = 15
	StartingSlots = 11
)

// Pick is one squad slot of a team for one period.
type Pick struct {
	EntryID       int64
	Period        int
	PlayerID      int64
	SquadSlot     int
	IsCaptain     bool
	IsViceCaptain bool
	Multiplier    int
	ActiveChip    string

	// AutoSubInFor is the starter this player came on for.
	AutoSubInFor  *int64
	// AutoSubOutFor is the bench player who replaced this player.
	AutoSubOutFor *int64
}

func (p Pick) IsStarting() bool {
	return p.SquadSlot <= StartingSlots
}

// Substitution is an automatic substitution applied by the game.
type Substitution struct {
	PlayerIn  int64
	PlayerOut int64
}

// Fact is a pick joined with the team, the player reference and the
// player's stat line for the period.
type Fact struct {
	Team league.Team
	Pick

	Player       reference.Player
	HasReference bool
	Stat         playerstat.Stat
	HasStat      bool

	PointsEarned int
}

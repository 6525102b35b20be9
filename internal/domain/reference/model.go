package reference

// Club is a Premier League side as listed by the bootstrap feed.
type Club struct {
	ID        int64
	Code      int64
	Name      string
	ShortName string
	PulseID   int64
}

// Position is an entry of the position taxonomy (GKP, DEF, MID, FWD).
type Position struct {
	ID              int
	SingularName    string
	PluralName      string
	PluralNameShort string
}

// Player is the resolved reference row for one player id.
type Player struct {
	ID         int64
	FirstName  string
	SecondName string
	WebName    string

	ClubID        int64
	ClubCode      int64
	ClubName      string
	ClubShortName string
	ClubPulseID   int64

	PositionID              int
	PositionSingularName    string
	PositionPluralName      string
	PositionPluralNameShort string
}

// Table is the player reference for one run.
type Table struct {
	Players []Player
	byID    map[int64]int
}

func NewTable(players []Player) Table {
	byID := make(map[int64]int, len(players))
	for i, p := range players {
		byID[p.ID] = i
	}
	return Table{Players: players, byID: byID}
}

func (t Table) Lookup(playerID int64) (Player, bool) {
	i, ok := t.byID[playerID]
	if !ok {
		return Player{}, false
	}
	return t.Players[i], true
}

func (t Table) Len() int {
	return len(t.Players)
}

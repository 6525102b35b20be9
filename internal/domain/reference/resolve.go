package reference

// Core is the player projection of the bootstrap feed before joins.
type Core struct {
	ID         int64
	PositionID int
	FirstName  string
	SecondName string
	WebName    string
	ClubID     int64
	ClubCode   int64
}

// Resolve joins players to clubs on club code and to positions on position
// id. Players whose club or position is unknown keep empty fields.
func Resolve(players []Core, clubs []Club, positions []Position) Table {
	clubByCode := make(map[int64]Club, len(clubs))
	for _, club := range clubs {
		clubByCode[club.Code] = club
	}
	positionByID := make(map[int]Position, len(positions))
	for _, position := range positions {
		positionByID[position.ID] = position
	}

	out := make([]Player, 0, len(players))
	for _, core := range players {
		row := Player{
			ID:         core.ID,
			FirstName:  core.FirstName,
			SecondName: core.SecondName,
			WebName:    core.WebName,
			ClubID:     core.ClubID,
			ClubCode:   core.ClubCode,
			PositionID: core.PositionID,
		}
		if club, ok := clubByCode[core.ClubCode]; ok {
			row.ClubName = club.Name
			row.ClubShortName = club.ShortName
			row.ClubPulseID = club.PulseID
		}
		if position, ok := positionByID[core.PositionID]; ok {
			row.PositionSingularName = position.SingularName
			row.PositionPluralName = position.PluralName
			row.PositionPluralNameShort = position.PluralNameShort
		}
		out = append(out, row)
	}

	return NewTable(out)
}

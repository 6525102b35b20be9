package league

import "fmt"

// Team is one entry of a classic league, taken from the league standings.
type Team struct {
	// ID is the standings row id shown by the league table.
	ID          int64
	EntryID     int64
	ManagerName string
	TeamName    string
	Rank        int
	Total       int
}

// League is the authoritative set of teams for one extraction run.
type League struct {
	ID          int64
	Name        string
	StartPeriod int
	Teams       []Team
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id must be greater than zero")
	}
	if l.StartPeriod < 1 {
		return fmt.Errorf("league start period must be >= 1")
	}
	seen := make(map[int64]struct{}, len(l.Teams))
	for _, team := range l.Teams {
		if team.EntryID <= 0 {
			return fmt.Errorf("team %q has no entry id", team.TeamName)
		}
		if _, ok := seen[team.EntryID]; ok {
			return fmt.Errorf("duplicate team entry id %d", team.EntryID)
		}
		seen[team.EntryID] = struct{}{}
	}

	return nil
}

// TeamsByEntry indexes teams by entry id.
func (l League) TeamsByEntry() map[int64]Team {
	out := make(map[int64]Team, len(l.Teams))
	for _, team := range l.Teams {
		out[team.EntryID] = team
	}
	return out
}

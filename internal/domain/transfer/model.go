package transfer

import (
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/league"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionIn  Direction = "In"
	DirectionOut Direction = "Out"
)

// Event is one transfer made by a team, enriched with team and player
// identity. TransferID is the row position within one run only.
type Event struct {
	TransferID int
	Team       league.Team
	Period     int
	LeagueRank *int

	Time      time.Time
	LocalTime time.Time
	Date      string
	TimeOfDay string

	PlayerInID    int64
	PlayerInCost  decimal.Decimal
	PlayerIn      reference.Player
	PlayerOutID   int64
	PlayerOutCost decimal.Decimal
	PlayerOut     reference.Player
}

// LedgerEntry is one side of a transfer.
type LedgerEntry struct {
	TransferID int
	Direction  Direction
	Team       league.Team
	Period     int
	LeagueRank *int

	Time      time.Time
	LocalTime time.Time
	Date      string
	TimeOfDay string

	PlayerID int64
	Cost     decimal.Decimal
	Player   reference.Player

	// PointsEarned is the player's period total, nil without a stat line.
	PointsEarned *int
}

// NormalizeCost converts a raw cost in tenths (55) into units (5.5).
func NormalizeCost(raw int) decimal.Decimal {
	return decimal.New(int64(raw), -1)
}

// Explode returns all In rows followed by all Out rows, both in event order.
func Explode(events []Event) []LedgerEntry {
	out := make([]LedgerEntry, 0, 2*len(events))
	for _, ev := range events {
		out = append(out, ev.side(DirectionIn))
	}
	for _, ev := range events {
		out = append(out, ev.side(DirectionOut))
	}
	return out
}

func (e Event) side(direction Direction) LedgerEntry {
	row := LedgerEntry{
		TransferID: e.TransferID,
		Direction:  direction,
		Team:       e.Team,
		Period:     e.Period,
		LeagueRank: e.LeagueRank,
		Time:       e.Time,
		LocalTime:  e.LocalTime,
		Date:       e.Date,
		TimeOfDay:  e.TimeOfDay,
	}
	if direction == DirectionIn {
		row.PlayerID = e.PlayerInID
		row.Cost = e.PlayerInCost
		row.Player = e.PlayerIn
	} else {
		row.PlayerID = e.PlayerOutID
		row.Cost = e.PlayerOutCost
		row.Player = e.PlayerOut
	}
	return row
}

package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/playerstat"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
)

// LeagueDataSource is the read-only fantasy API. Every method issues one
// request and never retries.
type LeagueDataSource interface {
	FetchLeagueStandings(ctx context.Context, leagueID int64, page int) (ExternalStandingsPage, error)
	FetchEntryHistory(ctx context.Context, entryID int64) ([]ExternalEntryPeriod, error)
	FetchEntryPicks(ctx context.Context, entryID int64, period int) (ExternalEntryPicks, error)
	FetchLivePeriod(ctx context.Context, period int) ([]playerstat.Stat, error)
	FetchBootstrap(ctx context.Context) (ExternalBootstrap, error)
	FetchEntryTransfers(ctx context.Context, entryID int64) ([]ExternalTransfer, error)
}

type ExternalStandingsPage struct {
	LeagueID    int64
	LeagueName  string
	StartPeriod int
	Page        int
	HasNext     bool
	Entries     []ExternalStandingEntry
}

type ExternalStandingEntry struct {
	ID          int64
	EntryID     int64
	ManagerName string
	TeamName    string
	Rank        int
	Total       int
}

// ExternalEntryPeriod is one row of an entry's season history. Bank and
// Value are raw tenths.
type ExternalEntryPeriod struct {
	Period        int
	Points        int
	TotalPoints   int
	OverallRank   int
	Bank          int
	Value         int
	TransferCount int
	TransferCost  int
	PointsOnBench int
	ActiveChip    string
}

type ExternalEntryPicks struct {
	ActiveChip    string
	Picks         []ExternalPick
	AutomaticSubs []ExternalAutoSub
}

type ExternalPick struct {
	PlayerID      int64
	Position      int
	Multiplier    int
	IsCaptain     bool
	IsViceCaptain bool
}

type ExternalAutoSub struct {
	EntryID   int64
	PlayerIn  int64
	PlayerOut int64
	Period    int
}

type ExternalBootstrap struct {
	Players   []reference.Core
	Clubs     []reference.Club
	Positions []reference.Position
	Events    []ExternalEvent
}

type ExternalEvent struct {
	ID         int
	Name       string
	Deadline   time.Time
	Finished   bool
	IsCurrent  bool
	IsPrevious bool
	IsNext     bool
}

// ExternalTransfer costs are raw tenths.
type ExternalTransfer struct {
	EntryID       int64
	Period        int
	PlayerIn      int64
	PlayerInCost  int
	PlayerOut     int64
	PlayerOutCost int
	Time          time.Time
}

package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
	"github.com/riskibarqy/fpl-ledger/internal/domain/transfer"
)

// Run is a persisted extraction result.
type Run struct {
	RunID       uuid.UUID
	LeagueID    int64
	LeagueName  string
	StartPeriod int
	MaxPeriod   int
	CreatedAt   time.Time

	History     []history.TeamPeriod
	Facts       []selection.Fact
	Ledger      []transfer.LedgerEntry
	Consistency reconcile.Report
}

// Summary describes a stored run without its tables.
type Summary struct {
	RunID             uuid.UUID
	LeagueID          int64
	LeagueName        string
	StartPeriod       int
	MaxPeriod         int
	HistoryRows       int
	FactRows          int
	LedgerRows        int
	ConsistencyErrors int
	CreatedAt         time.Time
}

func (r Run) Summary() Summary {
	return Summary{
		RunID:             r.RunID,
		LeagueID:          r.LeagueID,
		LeagueName:        r.LeagueName,
		StartPeriod:       r.StartPeriod,
		MaxPeriod:         r.MaxPeriod,
		HistoryRows:       len(r.History),
		FactRows:          len(r.Facts),
		LedgerRows:        len(r.Ledger),
		ConsistencyErrors: r.Consistency.TotalErrors,
		CreatedAt:         r.CreatedAt,
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
)

// SnapshotRepository keeps runs for the life of the process.
type SnapshotRepository struct {
	mu       sync.RWMutex
	runs     []snapshot.Run
	byLeague map[int64][]int
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		byLeague: make(map[int64][]int),
	}
}

func (r *SnapshotRepository) Save(_ context.Context, run snapshot.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs = append(r.runs, run)
	r.byLeague[run.LeagueID] = append(r.byLeague[run.LeagueID], len(r.runs)-1)
	return nil
}

func (r *SnapshotRepository) LatestByLeague(_ context.Context, leagueID int64) (snapshot.Summary, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.byLeague[leagueID]
	if len(idx) == 0 {
		return snapshot.Summary{}, false, nil
	}

	latest := r.runs[idx[0]]
	for _, i := range idx[1:] {
		if !r.runs[i].CreatedAt.Before(latest.CreatedAt) {
			latest = r.runs[i]
		}
	}
	return latest.Summary(), true, nil
}

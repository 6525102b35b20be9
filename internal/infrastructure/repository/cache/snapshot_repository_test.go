package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	"github.com/riskibarqy/fpl-ledger/internal/infrastructure/repository/memory"
)

type countingRepository struct {
	*memory.SnapshotRepository
	latestCalls int
}

func (r *countingRepository) LatestByLeague(ctx context.Context, leagueID int64) (snapshot.Summary, bool, error) {
	r.latestCalls++
	return r.SnapshotRepository.LatestByLeague(ctx, leagueID)
}

func TestSnapshotRepository_CachesUntilSave(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingRepository{SnapshotRepository: memory.NewSnapshotRepository()}
	repo := NewSnapshotRepository(next, time.Minute)

	for range 2 {
		for _, leagueID := range []int64{314, 31} {
			if _, ok, err := repo.LatestByLeague(ctx, leagueID); err != nil || ok {
				t.Fatalf("expected cached miss, got ok=%t err=%v", ok, err)
			}
		}
	}
	if next.latestCalls != 2 {
		t.Fatalf("unexpected backend calls got=%d want=2", next.latestCalls)
	}

	run := snapshot.Run{RunID: uuid.New(), LeagueID: 314, CreatedAt: time.Now()}
	if err := repo.Save(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, _, err := repo.LatestByLeague(ctx, 31); err != nil {
		t.Fatalf("latest 31: %v", err)
	}
	if next.latestCalls != 2 {
		t.Fatalf("league 31 should stay cached, backend calls got=%d want=2", next.latestCalls)
	}

	got, ok, err := repo.LatestByLeague(ctx, 314)
	if err != nil || !ok {
		t.Fatalf("expected snapshot after save, got ok=%t err=%v", ok, err)
	}
	if got.RunID != run.RunID {
		t.Fatalf("unexpected run got=%s want=%s", got.RunID, run.RunID)
	}
	if next.latestCalls != 3 {
		t.Fatalf("unexpected backend calls got=%d want=3", next.latestCalls)
	}
}

package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
)

func TestSnapshotRepository_LatestByLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewSnapshotRepository()

	if _, ok, err := repo.LatestByLeague(ctx, 314); err != nil || ok {
		t.Fatalf("expected no snapshot, got ok=%t err=%v", ok, err)
	}

	base := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	older := snapshot.Run{RunID: uuid.New(), LeagueID: 314, MaxPeriod: 3, CreatedAt: base}
	newer := snapshot.Run{
		RunID:     uuid.New(),
		LeagueID:  314,
		MaxPeriod: 4,
		CreatedAt: base.Add(time.Hour),
		History:   []history.TeamPeriod{{EntryID: 1, Period: 4}},
	}
	other := snapshot.Run{RunID: uuid.New(), LeagueID: 999, CreatedAt: base.Add(2 * time.Hour)}

	for _, run := range []snapshot.Run{newer, older, other} {
		if err := repo.Save(ctx, run); err != nil {
			t.Fatalf("save snapshot: %v", err)
		}
	}

	got, ok, err := repo.LatestByLeague(ctx, 314)
	if err != nil || !ok {
		t.Fatalf("expected snapshot, got ok=%t err=%v", ok, err)
	}
	if got.RunID != newer.RunID || got.MaxPeriod != 4 || got.HistoryRows != 1 {
		t.Fatalf("unexpected latest summary: got=%+v want run=%s", got, newer.RunID)
	}
}

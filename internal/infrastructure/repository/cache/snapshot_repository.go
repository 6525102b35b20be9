package cache

import (
	"context"
	"time"

	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	basecache "github.com/riskibarqy/fpl-ledger/internal/platform/cache"
)

type cachedSummary struct {
	value  snapshot.Summary
	exists bool
}

// SnapshotRepository caches latest-run lookups of the wrapped repository.
// Saving a run invalidates its league.
type SnapshotRepository struct {
	next  snapshot.Repository
	cache *basecache.Store[cachedSummary]
}

func NewSnapshotRepository(next snapshot.Repository, ttl time.Duration) *SnapshotRepository {
	return &SnapshotRepository{next: next, cache: basecache.NewStore[cachedSummary](ttl)}
}

func (r *SnapshotRepository) Save(ctx context.Context, run snapshot.Run) error {
	if err := r.next.Save(ctx, run); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, latestKey(run.LeagueID))
	return nil
}

func (r *SnapshotRepository) LatestByLeague(ctx context.Context, leagueID int64) (snapshot.Summary, bool, error) {
	cached, err := r.cache.GetOrLoad(ctx, latestKey(leagueID), func(ctx context.Context) (cachedSummary, error) {
		summary, exists, err := r.next.LatestByLeague(ctx, leagueID)
		if err != nil {
			return cachedSummary{}, err
		}
		return cachedSummary{value: summary, exists: exists}, nil
	})
	if err != nil {
		return snapshot.Summary{}, false, err
	}
	return cached.value, cached.exists, nil
}

// The trailing separator keeps league 31 from matching league 314 on delete.
func latestKey(leagueID int64) string {
	return basecache.Key("snapshot", "latest", leagueID, "")
}

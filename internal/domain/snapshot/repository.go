package snapshot

import "context"

// Repository describes snapshot persistence needs from use cases.
type Repository interface {
	Save(ctx context.Context, run Run) error
	LatestByLeague(ctx context.Context, leagueID int64) (Summary, bool, error)
}

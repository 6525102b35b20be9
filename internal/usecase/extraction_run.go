package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
)

// extractionRun carries per-run state shared by the builders.
type extractionRun struct {
	id       uuid.UUID
	leagueID int64
	logger   *logging.Logger

	fetchFailures int
}

func newExtractionRun(id uuid.UUID, leagueID int64, logger *logging.Logger) *extractionRun {
	return &extractionRun{
		id:       id,
		leagueID: leagueID,
		logger:   logger.With("run_id", id.String(), "league_id", leagueID),
	}
}

// skipUnit records a failed fetch for one unit of work. It returns the
// context error when the run was cancelled, so callers stop instead of
// skipping every remaining unit.
func (r *extractionRun) skipUnit(ctx context.Context, msg string, err error, args ...any) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	r.fetchFailures++
	r.logger.WarnContext(ctx, msg, append(args, "error", err)...)
	return nil
}

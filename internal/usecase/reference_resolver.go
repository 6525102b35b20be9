package usecase

import (
	"context"

	"github.com/riskibarqy/fpl-ledger/internal/domain/reference"
)

// loadReference reads the bootstrap feed once per run. A failed read leaves
// the run with an empty player table; the events are returned for period
// resolution.
func (s *ExtractionService) loadReference(ctx context.Context, run *extractionRun) (reference.Table, []ExternalEvent, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.loadReference")
	defer span.End()

	bootstrap, err := s.source.FetchBootstrap(ctx)
	if err != nil {
		if skipErr := run.skipUnit(ctx, "bootstrap fetch failed, player reference is empty", err); skipErr != nil {
			return reference.Table{}, nil, skipErr
		}
		return reference.NewTable(nil), nil, nil
	}
	return reference.Resolve(bootstrap.Players, bootstrap.Clubs, bootstrap.Positions), bootstrap.Events, nil
}

// currentPeriod picks the current event, falling back to the latest
// finished one.
func currentPeriod(events []ExternalEvent) (int, bool) {
	latestFinished := 0
	for _, ev := range events {
		if ev.IsCurrent {
			return ev.ID, true
		}
		if ev.Finished && ev.ID > latestFinished {
			latestFinished = ev.ID
		}
	}
	return latestFinished, latestFinished > 0
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	usecasemock "github.com/riskibarqy/fpl-ledger/internal/mocks/usecase"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
	"github.com/stretchr/testify/mock"
)

func TestExtractionService_Run_FatalStandingsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := usecasemock.NewLeagueDataSource(t)
	svc := usecase.NewExtractionService(source, nil, usecase.ExtractionConfig{}, logging.NewNop())

	source.
		On("FetchLeagueStandings", mock.Anything, int64(314), 1).
		Return(usecase.ExternalStandingsPage{}, errors.New("status 404")).
		Once()

	got, err := svc.Run(ctx, 3, 314)
	if !errors.Is(err, usecase.ErrLeagueUnavailable) {
		t.Fatalf("expected ErrLeagueUnavailable, got %v", err)
	}
	if !got.Empty() {
		t.Fatalf("expected empty result")
	}
}

func TestExtractionService_Run_EmptyLeagueUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	source := usecasemock.NewLeagueDataSource(t)
	svc := usecase.NewExtractionService(source, nil, usecase.ExtractionConfig{}, logging.NewNop())

	source.
		On("FetchLeagueStandings", mock.Anything, int64(314), 1).
		Return(usecase.ExternalStandingsPage{LeagueID: 314, LeagueName: "Quiet League", StartPeriod: 2}, nil).
		Once()
	source.
		On("FetchBootstrap", mock.Anything).
		Return(usecase.ExternalBootstrap{}, nil).
		Once()
	source.
		On("FetchLivePeriod", mock.Anything, 2).
		Return(nil, nil).
		Once()
	source.
		On("FetchLivePeriod", mock.Anything, 3).
		Return(nil, nil).
		Once()

	got, err := svc.Run(ctx, 3, 314)
	if err != nil {
		t.Fatalf("run extraction: %v", err)
	}
	if got.LeagueName != "Quiet League" || got.StartPeriod != 2 {
		t.Fatalf("unexpected league header: name=%q start=%d", got.LeagueName, got.StartPeriod)
	}
	if len(got.History.Rows) != 0 || len(got.Selections) != 0 || len(got.Ledger) != 0 {
		t.Fatalf("expected empty tables, got history=%d selections=%d ledger=%d", len(got.History.Rows), len(got.Selections), len(got.Ledger))
	}
	if len(got.Consistency.Periods) != 2 {
		t.Fatalf("unexpected consistency periods: got=%d want=2", len(got.Consistency.Periods))
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/riskibarqy/fpl-ledger/internal/domain/history"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/selection"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	"github.com/riskibarqy/fpl-ledger/internal/domain/transfer"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/platform/resilience"
	"go.opentelemetry.io/otel/attribute"
)

const defaultMaxPeriodCap = 38

type ExtractionConfig struct {
	// Location is the zone transfer timestamps are converted to.
	Location     *time.Location
	Basis        reconcile.Basis
	MaxPeriodCap int
}

// Result is the output of one extraction run. The zero value is the empty
// result returned when the league could not be read.
type Result struct {
	RunID       uuid.UUID
	LeagueID    int64
	LeagueName  string
	StartPeriod int
	MaxPeriod   int

	History     history.Table
	Selections  []selection.Fact
	Transfers   []transfer.Event
	Ledger      []transfer.LedgerEntry
	Consistency reconcile.Report

	FetchFailures int
	StartedAt     time.Time
	Elapsed       time.Duration
}

func (r Result) Empty() bool {
	return r.LeagueID == 0
}

// Snapshot converts the result into its persisted form.
func (r Result) Snapshot() snapshot.Run {
	return snapshot.Run{
		RunID:       r.RunID,
		LeagueID:    r.LeagueID,
		LeagueName:  r.LeagueName,
		StartPeriod: r.StartPeriod,
		MaxPeriod:   r.MaxPeriod,
		CreatedAt:   r.StartedAt,
		History:     r.History.Rows,
		Facts:       r.Selections,
		Ledger:      r.Ledger,
		Consistency: r.Consistency,
	}
}

type ExtractionService struct {
	source    LeagueDataSource
	snapshots snapshot.Repository
	cfg       ExtractionConfig
	logger    *logging.Logger

	newRunID func() uuid.UUID
	now      func() time.Time
}

func NewExtractionService(
	source LeagueDataSource,
	snapshots snapshot.Repository,
	cfg ExtractionConfig,
	logger *logging.Logger,
) *ExtractionService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Basis == "" {
		cfg.Basis = reconcile.BasisGross
	}
	if cfg.MaxPeriodCap <= 0 {
		cfg.MaxPeriodCap = defaultMaxPeriodCap
	}

	return &ExtractionService{
		source:    source,
		snapshots: snapshots,
		cfg:       cfg,
		logger:    logger,
		newRunID:  uuid.New,
		now:       time.Now,
	}
}

// MaxPeriodCap is the highest period Run accepts.
func (s *ExtractionService) MaxPeriodCap() int {
	return s.cfg.MaxPeriodCap
}

// Run extracts every table for leagueID up to maxPeriod. A maxPeriod of 0
// resolves to the current period. Only a failed standings read aborts the
// run; it then returns the empty Result and an error wrapping
// ErrLeagueUnavailable.
func (s *ExtractionService) Run(ctx context.Context, maxPeriod int, leagueID int64) (Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.Run",
		attribute.Int64("league_id", leagueID),
		attribute.Int("max_period", maxPeriod),
	)
	defer span.End()

	if s.source == nil {
		return Result{}, fmt.Errorf("%w: league data source is not configured", ErrDependencyUnavailable)
	}
	if leagueID <= 0 {
		return Result{}, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}
	if maxPeriod < 0 || maxPeriod > s.cfg.MaxPeriodCap {
		return Result{}, fmt.Errorf("%w: max period must be between 0 and %d", ErrInvalidInput, s.cfg.MaxPeriodCap)
	}

	ctx = resilience.WithBreakerScope(ctx)
	startedAt := s.now()
	run := newExtractionRun(s.newRunID(), leagueID, s.logger)
	run.logger.InfoContext(ctx, "extraction started", "max_period", maxPeriod)

	lg, err := s.buildLeague(ctx, run, leagueID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		run.logger.ErrorContext(ctx, "league standings unavailable, aborting run", "error", err)
		if errors.Is(err, ErrLeagueUnavailable) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: league=%d: %w", ErrLeagueUnavailable, leagueID, err)
	}

	refs, events, err := s.loadReference(ctx, run)
	if err != nil {
		return Result{}, err
	}
	if maxPeriod == 0 {
		current, ok := currentPeriod(events)
		if !ok {
			return Result{}, fmt.Errorf("%w: league=%d: current period could not be resolved", ErrDependencyUnavailable, leagueID)
		}
		maxPeriod = min(current, s.cfg.MaxPeriodCap)
		run.logger.InfoContext(ctx, "resolved max period from events", "max_period", maxPeriod)
	}
	if maxPeriod < lg.StartPeriod {
		run.logger.WarnContext(ctx, "max period is before league start, period tables will be empty",
			"start_period", lg.StartPeriod,
			"max_period", maxPeriod,
		)
	}

	hist, err := s.buildHistory(ctx, run, lg)
	if err != nil {
		return Result{}, err
	}
	picks, err := s.buildSelections(ctx, run, hist, lg.StartPeriod, maxPeriod)
	if err != nil {
		return Result{}, err
	}
	stats, err := s.buildPlayerStats(ctx, run, lg.StartPeriod, maxPeriod)
	if err != nil {
		return Result{}, err
	}

	facts := mergeSelections(lg, refs, stats, picks)
	report := checkConsistency(ctx, run, lg, hist, facts, lg.StartPeriod, maxPeriod, s.cfg.Basis)

	transfers, err := s.buildTransfers(ctx, run, lg, refs, hist, lg.StartPeriod, maxPeriod)
	if err != nil {
		return Result{}, err
	}
	ledger := buildLedger(transfers, stats)

	result := Result{
		RunID:         run.id,
		LeagueID:      lg.ID,
		LeagueName:    lg.Name,
		StartPeriod:   lg.StartPeriod,
		MaxPeriod:     maxPeriod,
		History:       hist,
		Selections:    facts,
		Transfers:     transfers,
		Ledger:        ledger,
		Consistency:   report,
		FetchFailures: run.fetchFailures,
		StartedAt:     startedAt,
		Elapsed:       s.now().Sub(startedAt),
	}

	run.logger.InfoContext(ctx, "extraction finished",
		"league_name", result.LeagueName,
		"start_period", result.StartPeriod,
		"max_period", result.MaxPeriod,
		"teams", len(lg.Teams),
		"history_rows", len(hist.Rows),
		"teams_without_history", len(hist.TeamsWithoutHistory),
		"selection_rows", len(facts),
		"transfer_rows", len(transfers),
		"ledger_rows", len(ledger),
		"fetch_failures", result.FetchFailures,
		"consistency_errors", report.TotalErrors,
		"elapsed", result.Elapsed.String(),
	)
	return result, nil
}

// RunAndStore runs an extraction and saves it as a snapshot.
func (s *ExtractionService) RunAndStore(ctx context.Context, maxPeriod int, leagueID int64) (Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.RunAndStore")
	defer span.End()

	if s.snapshots == nil {
		return Result{}, fmt.Errorf("%w: snapshot repository is not configured", ErrDependencyUnavailable)
	}

	result, err := s.Run(ctx, maxPeriod, leagueID)
	if err != nil {
		return Result{}, err
	}
	if err := s.snapshots.Save(ctx, result.Snapshot()); err != nil {
		return Result{}, fmt.Errorf("save snapshot league=%d run=%s: %w", leagueID, result.RunID, err)
	}

	s.logger.InfoContext(ctx, "extraction snapshot saved",
		"league_id", leagueID,
		"run_id", result.RunID.String(),
	)
	return result, nil
}

// LatestSnapshot returns the newest stored run summary for leagueID.
func (s *ExtractionService) LatestSnapshot(ctx context.Context, leagueID int64) (snapshot.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExtractionService.LatestSnapshot")
	defer span.End()

	if s.snapshots == nil {
		return snapshot.Summary{}, fmt.Errorf("%w: snapshot repository is not configured", ErrDependencyUnavailable)
	}
	if leagueID <= 0 {
		return snapshot.Summary{}, fmt.Errorf("%w: league id must be greater than zero", ErrInvalidInput)
	}

	summary, ok, err := s.snapshots.LatestByLeague(ctx, leagueID)
	if err != nil {
		return snapshot.Summary{}, fmt.Errorf("get latest snapshot league=%d: %w", leagueID, err)
	}
	if !ok {
		return snapshot.Summary{}, fmt.Errorf("%w: no snapshot for league=%d", ErrNotFound, leagueID)
	}
	return summary, nil
}

package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-ledger/external/fpl"
	"github.com/riskibarqy/fpl-ledger/internal/config"
	"github.com/riskibarqy/fpl-ledger/internal/domain/reconcile"
	"github.com/riskibarqy/fpl-ledger/internal/domain/snapshot"
	snapshotcache "github.com/riskibarqy/fpl-ledger/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fpl-ledger/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-ledger/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fpl-ledger/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-ledger/internal/platform/cache"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/platform/resilience"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
)

// Closer releases resources opened while wiring the application.
type Closer func() error

func noopCloser() error { return nil }

func NewFPLClient(cfg config.Config, logger *logging.Logger) *fpl.Client {
	return fpl.NewClient(fpl.ClientConfig{
		BaseURL:           cfg.FPLBaseURL,
		UserAgent:         cfg.FPLUserAgent,
		Timeout:           cfg.FPLTimeout,
		RequestsPerSecond: cfg.FPLRequestsPerSecond,
		Logger:            logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			ProbeRequests:    cfg.FPLCircuitProbeRequests,
		},
	})
}

// NewSnapshotRepository returns the postgres repository when snapshots are
// enabled and an in-memory one otherwise.
func NewSnapshotRepository(ctx context.Context, cfg config.Config, logger *logging.Logger) (snapshot.Repository, Closer, error) {
	if !cfg.SnapshotEnabled {
		logger.Info("snapshot storage in memory", "reason", "SNAPSHOT_ENABLED=false")
		return memory.NewSnapshotRepository(), noopCloser, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("snapshot storage in postgres", "db_name", parseSnapshotDSN(cfg.DBURL, false).dbName)

	var repo snapshot.Repository = postgres.NewSnapshotRepository(db)
	if cfg.CacheEnabled {
		repo = snapshotcache.NewSnapshotRepository(repo, cfg.CacheTTL)
	}
	return repo, db.Close, nil
}

func NewExtractionService(cfg config.Config, snapshots snapshot.Repository, logger *logging.Logger) (*usecase.ExtractionService, error) {
	basis, err := reconcile.ParseBasis(cfg.ConsistencyBasis)
	if err != nil {
		return nil, err
	}

	return usecase.NewExtractionService(
		NewFPLClient(cfg, logger),
		snapshots,
		usecase.ExtractionConfig{
			Location:     cfg.ExtractLocation,
			Basis:        basis,
			MaxPeriodCap: cfg.ExtractMaxPeriod,
		},
		logger,
	), nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, Closer, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	snapshots, closeRepo, err := NewSnapshotRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	extraction, err := NewExtractionService(cfg, snapshots, logger)
	if err != nil {
		_ = closeRepo()
		return nil, nil, err
	}

	results := cache.NewDisabledStore[usecase.Result]()
	if cfg.CacheEnabled {
		results = cache.NewStore[usecase.Result](cfg.CacheTTL)
	}

	handler := httpapi.NewHandler(extraction, results, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closeRepo, nil
}

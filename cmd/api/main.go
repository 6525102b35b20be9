package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-ledger/internal/app"
	"github.com/riskibarqy/fpl-ledger/internal/config"
	"github.com/riskibarqy/fpl-ledger/internal/observability"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = serve(ctx, cfg, logger)
	stop()
	if err != nil {
		logger.Error("api exited", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// serve runs the API until ctx is cancelled or the listener fails, then
// drains requests before releasing storage and telemetry.
func serve(ctx context.Context, cfg config.Config, logger *logging.Logger) error {
	telemetry, err := observability.Start(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv, closeApp, err := app.NewHTTPServer(ctx, cfg, logger)
	if err != nil {
		_ = telemetry.Shutdown(context.Background())
		return crerr.Wrap(err, "build app")
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !crerr.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-listenErr:
		runErr = crerr.Wrap(err, "http server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := closeApp(); err != nil {
		logger.Error("close app resources", "error", err)
	}
	if err := telemetry.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown telemetry", "error", err)
	}
	logger.Info("http server stopped")

	return runErr
}

package observability

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-ledger/internal/config"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
)

type stopper struct {
	name string
	stop func(context.Context) error
}

// Telemetry owns the tracing and profiling backends started for a process.
type Telemetry struct {
	logger   *logging.Logger
	stoppers []stopper
}

// Start brings up every backend enabled in cfg. A backend that fails to start
// stops the ones already running.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t := &Telemetry{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (func(context.Context) error, error)
	}{
		{"uptrace", startTracing},
		{"pyroscope", startProfiler},
		{"pprof", startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			_ = t.Shutdown(ctx)
			return nil, crerr.Wrapf(err, "start %s", s.name)
		}
		if stop != nil {
			t.stoppers = append(t.stoppers, stopper{name: s.name, stop: stop})
		}
	}
	return t, nil
}

// Shutdown stops backends in reverse start order and reports every failure.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	var errs error
	for i := len(t.stoppers) - 1; i >= 0; i-- {
		s := t.stoppers[i]
		if err := s.stop(ctx); err != nil {
			errs = crerr.CombineErrors(errs, crerr.Wrapf(err, "stop %s", s.name))
			continue
		}
		t.logger.Debug("telemetry backend stopped", "backend", s.name)
	}
	t.stoppers = nil
	return errs
}

package observability

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/riskibarqy/fpl-ledger/internal/config"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
)

func TestStart_AllDisabled(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		ServiceName:    "fpl-ledger-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
		UptraceEnabled: true,
		UptraceDSN:     "  ",
	}

	telemetry, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(telemetry.stoppers) != 0 {
		t.Fatalf("stoppers got=%d want=0", len(telemetry.stoppers))
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestStart_PprofListens(t *testing.T) {
	t.Parallel()

	cfg := config.Config{PprofEnabled: true, PprofAddr: "127.0.0.1:0"}
	telemetry, err := Start(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("start telemetry: %v", err)
	}
	if len(telemetry.stoppers) != 1 || telemetry.stoppers[0].name != "pprof" {
		t.Fatalf("unexpected stoppers: %+v", telemetry.stoppers)
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestShutdown_ReverseOrderAndJoinedErrors(t *testing.T) {
	t.Parallel()

	var order []string
	stopWith := func(name string, err error) stopper {
		return stopper{name: name, stop: func(context.Context) error {
			order = append(order, name)
			return err
		}}
	}
	telemetry := &Telemetry{
		logger: logging.NewNop(),
		stoppers: []stopper{
			stopWith("uptrace", errors.New("flush timeout")),
			stopWith("pyroscope", nil),
			stopWith("pprof", errors.New("listener closed")),
		},
	}

	err := telemetry.Shutdown(context.Background())
	if got := strings.Join(order, ","); got != "pprof,pyroscope,uptrace" {
		t.Fatalf("order got=%s want=pprof,pyroscope,uptrace", got)
	}
	if err == nil || !strings.Contains(err.Error(), "stop pprof") {
		t.Fatalf("expected joined error naming pprof, got %v", err)
	}
	if err := telemetry.Shutdown(context.Background()); err != nil {
		t.Fatalf("second shutdown should be a no-op, got %v", err)
	}
}

func TestPprofMux(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	pprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status got=%d want=%d", rec.Code, http.StatusOK)
	}
}

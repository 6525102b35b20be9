package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-ledger/internal/platform/logging"
	"github.com/riskibarqy/fpl-ledger/internal/platform/resilience"
	"github.com/riskibarqy/fpl-ledger/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-ledger/1.0"
	maxBodyBytes     = 8 << 20
)

var errFPLTransient = crerr.New("fpl transient failure")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fpl status=%d resource=%s body=%s", e.StatusCode, e.Resource, e.Body)
}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	// RequestsPerSecond caps outgoing requests; zero disables the limiter.
	RequestsPerSecond float64
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client reads the public fantasy API. Each Fetch method issues exactly one
// GET and never retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	breakerCfg resilience.CircuitBreakerConfig
	flight     resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	breakerCfg := cfg.CircuitBreaker
	if breakerCfg.OnStateChange == nil {
		breakerCfg.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("fpl circuit breaker state changed", "from", from, "to", to)
		}
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    limiter,
		logger:     logger,
		breaker:    resilience.NewCircuitBreaker(breakerCfg),
		breakerCfg: breakerCfg,
	}
}

// IsTransient reports whether err is a network failure, a 429 or a 5xx.
func IsTransient(err error) bool {
	return crerr.Is(err, errFPLTransient)
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var statusErr *StatusError
	if crerr.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}

func (c *Client) doJSON(ctx context.Context, resource string, target any) error {
	// a run that set a breaker scope gets its own breaker
	breaker := resilience.ScopedBreaker(ctx, c, c.breakerCfg, c.breaker)
	raw, _, err := c.flight.Do(ctx, resource, func() ([]byte, error) {
		var body []byte
		execErr := breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, resource)
			return reqErr
		}, IsTransient)
		if crerr.Is(execErr, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "resource", resource, "state", breaker.State())
			return nil, fmt.Errorf("%w: fantasy api is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return body, execErr
	})
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode %s payload: %w", resource, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, resource string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+resource, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, crerr.Mark(fmt.Errorf("send request %s: %w", resource, err), errFPLTransient)
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, crerr.Mark(fmt.Errorf("read response body %s: %w", resource, err), errFPLTransient)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       abbreviateBody(buf.B),
		}
		c.logger.WarnContext(ctx, "fpl request failed",
			"resource", resource,
			"status", resp.StatusCode,
			"body", statusErr.Body,
		)
		if isTransientStatus(resp.StatusCode) {
			return nil, crerr.Mark(statusErr, errFPLTransient)
		}
		return nil, statusErr
	}

	return append([]byte(nil), buf.B...), nil
}

func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

const maxBodyExcerpt = 240

// abbreviateBody cuts at a rune boundary at or before maxBodyExcerpt bytes.
func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= maxBodyExcerpt {
		return text
	}
	n := maxBodyExcerpt
	for n > 0 && !utf8.RuneStart(text[n]) {
		n--
	}
	return text[:n] + "..."
}

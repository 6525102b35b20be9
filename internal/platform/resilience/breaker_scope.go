package resilience

import (
	"context"
	"sync"
)

type breakerScopeKey struct{}

type breakerScope struct {
	mu       sync.Mutex
	breakers map[any]*CircuitBreaker
}

// WithBreakerScope gives ctx its own set of circuit breakers. Breakers
// resolved through ScopedBreaker under different scopes never share state.
func WithBreakerScope(ctx context.Context) context.Context {
	return context.WithValue(ctx, breakerScopeKey{}, &breakerScope{breakers: make(map[any]*CircuitBreaker)})
}

// ScopedBreaker returns owner's breaker in ctx's scope, building it from cfg
// on first use. Without a scope it returns fallback.
func ScopedBreaker(ctx context.Context, owner any, cfg CircuitBreakerConfig, fallback *CircuitBreaker) *CircuitBreaker {
	scope, ok := ctx.Value(breakerScopeKey{}).(*breakerScope)
	if !ok {
		return fallback
	}

	scope.mu.Lock()
	defer scope.mu.Unlock()
	if b, ok := scope.breakers[owner]; ok {
		return b
	}
	b := NewCircuitBreaker(cfg)
	scope.breakers[owner] = b
	return b
}

package resilience

import (
	"context"
	"sync"
)

// SingleFlight collapses concurrent calls for one key into a single fn call.
// Waiters share its result, and a waiter whose context ends stops waiting
// without cancelling the call in flight.
type SingleFlight[T any] struct {
	mu       sync.Mutex
	inflight map[string]*flight[T]
}

type flight[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Do reports shared=true when the result came from another caller's fn.
func (g *SingleFlight[T]) Do(ctx context.Context, key string, fn func() (T, error)) (value T, shared bool, err error) {
	g.mu.Lock()
	if f, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		select {
		case <-f.done:
			return f.value, true, f.err
		case <-ctx.Done():
			return value, true, ctx.Err()
		}
	}
	if g.inflight == nil {
		g.inflight = make(map[string]*flight[T])
	}
	f := &flight[T]{done: make(chan struct{})}
	g.inflight[key] = f
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.inflight, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.value, f.err = fn()
	return f.value, false, f.err
}

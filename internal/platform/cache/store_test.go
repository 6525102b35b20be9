package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), Key("extraction", 314, 7), loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_CallerCancelDoesNotFailWaiters(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	key := Key("extraction", 314, 7)
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	loader := func(ctx context.Context) (string, error) {
		calls.Add(1)
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "value", nil
	}

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	type outcome struct {
		value string
		err   error
	}
	first := make(chan outcome, 1)
	go func() {
		v, err := store.GetOrLoad(firstCtx, key, loader)
		first <- outcome{value: v, err: err}
	}()

	<-started
	second := make(chan outcome, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), key, loader)
		second <- outcome{value: v, err: err}
	}()

	cancelFirst()
	time.Sleep(20 * time.Millisecond)
	close(release)

	got := <-second
	if got.err != nil {
		t.Fatalf("waiter error: %v", got.err)
	}
	if got.value != "value" {
		t.Fatalf("unexpected waiter value: got=%q want=%q", got.value, "value")
	}
	if leader := <-first; leader.err != nil || leader.value != "value" {
		t.Fatalf("unexpected first caller result: got=(%q, %v) want=(value, nil)", leader.value, leader.err)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times, want 1", n)
	}
	if cached, ok := store.Get(context.Background(), key); !ok || cached != "value" {
		t.Fatalf("expected value to be cached, got=(%q, %v)", cached, ok)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (int, error) {
		calls.Add(1)
		return 12, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	now := time.Date(2025, 9, 13, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh value to be cached")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected value to expire")
	}
}

func TestStore_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	errBoom := errors.New("boom")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 0, errBoom }); !errors.Is(err, errBoom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	got, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) { return 5, nil })
	if err != nil || got != 5 {
		t.Fatalf("expected reload after failure, got=%d err=%v", got, err)
	}
}

func TestStore_DisabledNeverKeepsValues(t *testing.T) {
	t.Parallel()

	store := NewDisabledStore[int]()
	var calls atomic.Int32
	for i := 0; i < 2; i++ {
		_, _ = store.GetOrLoad(context.Background(), "k", func(context.Context) (int, error) {
			calls.Add(1)
			return 1, nil
		})
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	store.Set(context.Background(), Key("extraction", 314, 1), 1)
	store.Set(context.Background(), Key("extraction", 314, 2), 2)
	store.Set(context.Background(), Key("extraction", 99, 1), 3)

	store.DeletePrefix(context.Background(), Key("extraction", 314)+":")

	if _, ok := store.Get(context.Background(), Key("extraction", 314, 1)); ok {
		t.Fatalf("expected league 314 entries to be removed")
	}
	if _, ok := store.Get(context.Background(), Key("extraction", 99, 1)); !ok {
		t.Fatalf("expected league 99 entry to remain")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

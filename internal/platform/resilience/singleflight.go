package resilience

import (
	"context"
	"sync"

	crerr "github.com/cockroachdb/errors"
)

var errFlightAborted = crerr.New("singleflight: loader did not return")

// SingleFlight collapses concurrent loads of one key into a single call.
// Waiters stop waiting when their own context ends; the load keeps running
// for the caller that started it.
type SingleFlight[V any] struct {
	mu    sync.Mutex
	calls map[string]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
	dups int
}

// Do runs fn for key unless a call for key is already in flight, in which
// case it waits for that call's result. shared reports whether the result
// went to more than one caller.
func (g *SingleFlight[V]) Do(ctx context.Context, key string, fn func() (V, error)) (v V, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*flight[V])
	}

	if f, ok := g.calls[key]; ok {
		f.dups++
		g.mu.Unlock()
		select {
		case <-f.done:
			return f.val, f.err, true
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err(), true
		}
	}

	f := &flight[V]{done: make(chan struct{}), err: errFlightAborted}
	g.calls[key] = f
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn()

	g.mu.Lock()
	shared = f.dups > 0
	g.mu.Unlock()
	return f.val, f.err, shared
}

package app

import (
	"context"
	"fmt"
	"io"
	"sync"
)

const actionBuffer = 64

// Option configures a Store.
type Option func(*Store)

// WithMiddleware appends middleware in dispatch order.
func WithMiddleware(mw ...Middleware) Option {
	return func(st *Store) {
		st.middleware = append(st.middleware, mw...)
	}
}

// WithTrace logs every processed action name to w.
func WithTrace(w io.Writer) Option {
	return func(st *Store) {
		st.trace = w
	}
}

// Store owns the state tree. A single goroutine consumes the action queue,
// so reduction is strictly serial: reduce, publish, then hand the action to
// middleware. Middleware that dispatches from inside its handler only
// enqueues; the action runs after the current one finishes. That keeps
// re-entrant dispatch safe by construction.
type Store struct {
	mu    sync.RWMutex
	state AppState

	actions    chan Action
	middleware []Middleware
	trace      io.Writer

	cancel context.CancelFunc
	done   chan struct{}

	subMu sync.Mutex
	subs  []chan AppState
}

// New builds a Store around the initial state and starts its dispatch loop.
// Close must be called to stop it.
func New(initial AppState, opts ...Option) *Store {
	st := &Store{
		state:   initial,
		actions: make(chan Action, actionBuffer),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(st)
	}
	ctx, cancel := context.WithCancel(context.Background())
	st.cancel = cancel
	go st.loop(ctx)
	return st
}

// State returns a snapshot of the current tree. The tree is value-copied;
// reducers never mutate shared containers, so the snapshot is stable.
func (st *Store) State() AppState {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.state
}

// Dispatch enqueues an action. It is safe from any goroutine, including
// middleware handlers; the action is processed after those already queued.
func (st *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	select {
	case st.actions <- a:
	case <-st.done:
	}
}

// Subscribe returns a channel receiving each post-reduction state. Slow
// subscribers miss intermediate states rather than stalling dispatch.
func (st *Store) Subscribe() <-chan AppState {
	ch := make(chan AppState, 1)
	st.subMu.Lock()
	st.subs = append(st.subs, ch)
	st.subMu.Unlock()
	return ch
}

// Close stops the dispatch loop and closes subscriber channels. Queued
// actions that have not been processed are dropped.
func (st *Store) Close() {
	st.cancel()
	<-st.done
}

func (st *Store) loop(ctx context.Context) {
	defer func() {
		close(st.done)
		st.subMu.Lock()
		for _, ch := range st.subs {
			close(ch)
		}
		st.subs = nil
		st.subMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-st.actions:
			st.process(ctx, a)
		}
	}
}

func (st *Store) process(ctx context.Context, a Action) {
	if st.trace != nil {
		fmt.Fprintf(st.trace, "action %s\n", a.Name())
	}

	st.mu.Lock()
	next := Reduce(st.state, a)
	st.state = next
	st.mu.Unlock()

	st.publish(next)

	for _, mw := range st.middleware {
		mw(ctx, next, a, st.Dispatch)
	}
}

func (st *Store) publish(s AppState) {
	st.subMu.Lock()
	defer st.subMu.Unlock()
	for _, ch := range st.subs {
		select {
		case ch <- s:
		default:
			// Drain the stale state and replace it with the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}

// Package queries implements the one-slot in-flight operation pattern: each
// logical query (day presentation, month grid, standings, next game) owns a
// single cancelable operation. Issuing a new one cancels its predecessor,
// and only the most recently issued operation may commit a result, so a
// slow stale response can never overwrite a fresh one.
package queries

import (
	"context"
	"sync"

	"lastgame-service/internal/providers"
)

// Outcome is the committed result of a slot run.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Slot owns at most one in-flight operation and the latest committed
// outcome. The zero value is ready to use.
type Slot[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc

	latest Outcome[T]
	loaded bool
}

// Run starts fn on its own goroutine, canceling any operation already in
// flight. The result commits only if no newer run has been issued in the
// meantime; cancellations are discarded silently. onDone, when non-nil, is
// invoked only for committed results.
func (s *Slot[T]) Run(ctx context.Context, fn func(context.Context) (T, error), onDone func(Outcome[T])) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	go func() {
		defer cancel()
		value, err := fn(runCtx)

		s.mu.Lock()
		if gen != s.gen {
			// Superseded while running; the slot already belongs to a
			// newer operation.
			s.mu.Unlock()
			return
		}
		if err != nil && providers.IsCancellation(err) {
			s.mu.Unlock()
			return
		}
		s.latest = Outcome[T]{Value: value, Err: err}
		s.loaded = true
		out := s.latest
		s.mu.Unlock()

		if onDone != nil {
			onDone(out)
		}
	}()
}

// Latest returns the most recently committed outcome, if any.
func (s *Slot[T]) Latest() (Outcome[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.loaded
}

// Cancel aborts the in-flight operation, if any, without clearing the
// latest committed outcome.
func (s *Slot[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

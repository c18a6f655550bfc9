package refresh

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lastgame-service/internal/domain"
)

type stubBuilder struct {
	mu     sync.Mutex
	pres   domain.Presentation
	err    error
	calls  atomic.Int64
	notify chan struct{}
}

func (s *stubBuilder) BuildLatest(ctx context.Context) (domain.Presentation, error) {
	s.calls.Add(1)
	s.mu.Lock()
	pres, err := s.pres, s.err
	s.mu.Unlock()
	if s.notify != nil {
		select {
		case s.notify <- struct{}{}:
		default:
		}
	}
	return pres, err
}

func (s *stubBuilder) setError(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("timed out waiting for condition")
}

func TestRefresherWarmsOnStart(t *testing.T) {
	builder := &stubBuilder{
		pres:   domain.Presentation{Date: "2024-09-28", DisplayDate: "Saturday, September 28"},
		notify: make(chan struct{}, 1),
	}

	r := New(builder, nil, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)

	select {
	case <-builder.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	waitFor(t, func() bool { return r.Status().IsReady() })

	pres, ok := r.Latest()
	if !ok {
		t.Fatalf("expected a committed presentation")
	}
	if pres.Date != "2024-09-28" {
		t.Fatalf("unexpected presentation date %q", pres.Date)
	}

	cancel()
	_ = r.Stop(context.Background())

	if builder.calls.Load() < 1 {
		t.Fatalf("expected at least one build call")
	}
}

func TestRefresherStopsOnContextCancel(t *testing.T) {
	builder := &stubBuilder{notify: make(chan struct{}, 1)}

	r := New(builder, nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	r.Start(ctx)

	select {
	case <-builder.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial refresh")
	}

	cancel()
	_ = r.Stop(context.Background())

	callsAfterStop := builder.calls.Load()
	time.Sleep(20 * time.Millisecond)
	if builder.calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional cycles after stop; before=%d after=%d", callsAfterStop, builder.calls.Load())
	}
}

func TestRefresherStopIsIdempotent(t *testing.T) {
	r := New(&stubBuilder{}, nil, nil, time.Hour)

	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestRefresherStartIsIdempotent(t *testing.T) {
	r := New(&stubBuilder{}, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)
	r.Start(ctx) // should no-op

	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestRefresherDefaultsInterval(t *testing.T) {
	r := New(&stubBuilder{}, nil, nil, 0)
	if r.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, r.interval)
	}
}

func TestRefresherStartReturnsWhenAlreadyStarted(t *testing.T) {
	r := New(&stubBuilder{}, nil, nil, time.Hour)
	r.started = true
	r.Start(context.Background())
	if r.ticker != nil {
		t.Fatalf("expected ticker not to be created when already started")
	}
}

func TestRefresherStatusTracksFailuresAndSuccess(t *testing.T) {
	builder := &stubBuilder{err: errors.New("boom")}

	r := New(builder, nil, nil, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.refreshOnce(ctx)
	waitFor(t, func() bool { return r.Status().ConsecutiveFailures == 1 })

	status := r.Status()
	if status.LastError == "" {
		t.Fatalf("expected last error recorded")
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	builder.setError(nil)
	r.refreshOnce(ctx)
	waitFor(t, func() bool { return r.Status().ConsecutiveFailures == 0 && !r.Status().LastSuccess.IsZero() })

	if !r.Status().IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestRefresherCancellationNotCountedAsFailure(t *testing.T) {
	builder := &stubBuilder{err: context.Canceled, notify: make(chan struct{}, 1)}

	r := New(builder, nil, nil, time.Hour)
	r.refreshOnce(context.Background())

	select {
	case <-builder.notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for cycle")
	}
	time.Sleep(10 * time.Millisecond)

	status := r.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected cancellation not to count as failure, got %d", status.ConsecutiveFailures)
	}
	if _, ok := r.Latest(); ok {
		t.Fatalf("expected no committed presentation after cancellation")
	}
}

func TestRefresherUpstreamTimeoutCountedAsFailure(t *testing.T) {
	builder := &stubBuilder{err: context.DeadlineExceeded}

	r := New(builder, nil, nil, time.Hour)
	r.refreshOnce(context.Background())
	waitFor(t, func() bool { return r.Status().ConsecutiveFailures == 1 })

	status := r.Status()
	if status.LastError == "" {
		t.Fatalf("expected the timeout recorded as last error")
	}
}

func TestRefresherLogsOnErrorAndSuccess(t *testing.T) {
	builder := &stubBuilder{err: errors.New("fail"), notify: make(chan struct{}, 1)}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	r := New(builder, logger, nil, time.Second)
	r.refreshOnce(context.Background()) // should log error
	<-builder.notify

	builder.setError(nil)
	r.refreshOnce(context.Background()) // should log info
	<-builder.notify
	waitFor(t, func() bool { return !r.Status().LastSuccess.IsZero() })
}

func TestRefresherNotReadyAfterRepeatedFailures(t *testing.T) {
	status := Status{
		LastSuccess:         time.Now(),
		ConsecutiveFailures: 3,
	}
	if status.IsReady() {
		t.Fatalf("expected not ready at 3 consecutive failures")
	}
	status.ConsecutiveFailures = 2
	if !status.IsReady() {
		t.Fatalf("expected ready below the failure threshold")
	}
}

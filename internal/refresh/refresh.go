// Package refresh runs the background loop that keeps the latest
// presentation warm, so the first interactive request after boot does not
// pay the upstream round trip.
package refresh

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lastgame-service/internal/domain"
	"lastgame-service/internal/logging"
	"lastgame-service/internal/metrics"
	"lastgame-service/internal/queries"
)

const defaultInterval = 5 * time.Minute

// Builder produces the latest presentation. Satisfied by the presentation
// service.
type Builder interface {
	BuildLatest(ctx context.Context) (domain.Presentation, error)
}

// Refresher rebuilds the latest presentation on an interval. Cycles run
// through a query slot: a cycle still in flight when the next tick fires is
// canceled and superseded rather than left to race.
type Refresher struct {
	builder  Builder
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	slot queries.Slot[domain.Presentation]

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher with sane defaults.
func New(builder Builder, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		builder:  builder,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial cycle to warm data on boot.
		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop and cancels any cycle in flight.
func (r *Refresher) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
		r.slot.Cancel()
	})
	return nil
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	r.recordAttempt(start)

	r.slot.Run(ctx, func(runCtx context.Context) (domain.Presentation, error) {
		return r.builder.BuildLatest(runCtx)
	}, func(out queries.Outcome[domain.Presentation]) {
		elapsed := time.Since(start)
		if r.metrics != nil {
			r.metrics.RecordRefreshCycle(elapsed, out.Err)
		}
		if out.Err != nil {
			r.logError("refresh cycle failed", out.Err, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
			r.recordFailure(out.Err, start)
			return
		}
		r.recordSuccess(start)
		r.logInfo("refreshed presentation",
			logging.FieldDate, out.Value.Date,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
	})
}

// Latest returns the most recently committed presentation, if any cycle has
// completed.
func (r *Refresher) Latest() (domain.Presentation, bool) {
	out, ok := r.slot.Latest()
	if !ok || out.Err != nil {
		return domain.Presentation{}, false
	}
	return out.Value, true
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Refresher) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the loop's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

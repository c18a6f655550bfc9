package providers

import (
	"context"
	"log/slog"
	"time"

	"lastgame-service/internal/domain"
	"lastgame-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with retry/backoff behavior.
// Interactive queries do not use this wrapper; a superseded or failed user
// query is retried only by an explicit re-run. It exists for the background
// refresh loop, where a transient upstream blip should not poison a cycle.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	return retry(ctx, r, func(c context.Context) ([]domain.Game, error) {
		return r.inner.FetchSchedule(c, teamID, startDate, endDate)
	})
}

func (r *retryingProvider) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	return retry(ctx, r, func(c context.Context) ([]domain.MediaItem, error) {
		return r.inner.FetchGameMedia(c, gamePk)
	})
}

func (r *retryingProvider) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	return retry(ctx, r, func(c context.Context) ([]domain.StandingRecord, error) {
		return r.inner.FetchStandings(c, season)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	return retry(ctx, r, func(c context.Context) ([]domain.Team, error) {
		return r.inner.FetchTeams(c)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		out, err := fn(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		// A superseded request must not be retried on the caller's behalf.
		if IsCancellation(err) {
			return zero, err
		}
		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"lastgame-service/internal/domain"
)

// rateLimitedProvider spaces upstream calls out with a shared token-bucket
// limiter so the background refresher and interactive queries together stay
// under the public API's informal quota.
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that allows at most one
// call per interval, with a burst of one. Calls block until a token is
// available or the context is cancelled.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = time.Second
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil && p.logger != nil {
			p.logger.Warn("provider unavailable", slog.String("provider", "rate-limited"))
		}
		return ErrProviderUnavailable
	}
	return p.limiter.Wait(ctx)
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchSchedule(ctx, teamID, startDate, endDate)
}

func (p *rateLimitedProvider) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchGameMedia(ctx, gamePk)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchStandings(ctx, season)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx)
}

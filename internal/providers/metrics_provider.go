package providers

import (
	"context"
	"net/http"
	"time"

	"lastgame-service/internal/domain"
	"lastgame-service/internal/metrics"
)

// instrumentedProvider records per-call latency and error counts for every
// upstream call. Cancellations are not counted as errors.
type instrumentedProvider struct {
	next     DataProvider
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider wraps a provider with metrics recording under the
// given provider name.
func NewInstrumentedProvider(next DataProvider, recorder *metrics.Recorder, name string) DataProvider {
	if recorder == nil {
		return next
	}
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{next: next, recorder: recorder, name: name}
}

func (p *instrumentedProvider) record(start time.Time, err error) {
	if IsCancellation(err) {
		err = nil
	}
	if se, ok := AsStatusError(err); ok && se.StatusCode == http.StatusTooManyRequests {
		p.recorder.RecordRateLimit(p.name, 0)
	}
	p.recorder.RecordProviderAttempt(p.name, time.Since(start), err)
}

func (p *instrumentedProvider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	start := time.Now()
	games, err := p.next.FetchSchedule(ctx, teamID, startDate, endDate)
	p.record(start, err)
	return games, err
}

func (p *instrumentedProvider) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	start := time.Now()
	items, err := p.next.FetchGameMedia(ctx, gamePk)
	p.record(start, err)
	return items, err
}

func (p *instrumentedProvider) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	start := time.Now()
	records, err := p.next.FetchStandings(ctx, season)
	p.record(start, err)
	return records, err
}

func (p *instrumentedProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	start := time.Now()
	teams, err := p.next.FetchTeams(ctx)
	p.record(start, err)
	return teams, err
}

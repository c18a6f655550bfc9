// Package testutil holds shared provider stubs for tests.
package testutil

import (
	"context"
	"sync"

	"lastgame-service/internal/domain"
)

// StubProvider returns canned data, or a per-method error when set. It
// records calls so tests can assert on fetch behavior.
type StubProvider struct {
	Games     []domain.Game
	Media     []domain.MediaItem
	Standings []domain.StandingRecord
	Teams     []domain.Team

	ScheduleErr  error
	MediaErr     error
	StandingsErr error
	TeamsErr     error

	mu            sync.Mutex
	ScheduleCalls int
	MediaCalls    int
	LastStart     string
	LastEnd       string
	LastGamePk    int
}

func (p *StubProvider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	p.mu.Lock()
	p.ScheduleCalls++
	p.LastStart = startDate
	p.LastEnd = endDate
	p.mu.Unlock()
	if p.ScheduleErr != nil {
		return nil, p.ScheduleErr
	}
	return p.Games, nil
}

func (p *StubProvider) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	p.mu.Lock()
	p.MediaCalls++
	p.LastGamePk = gamePk
	p.mu.Unlock()
	if p.MediaErr != nil {
		return nil, p.MediaErr
	}
	return p.Media, nil
}

func (p *StubProvider) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	if p.StandingsErr != nil {
		return nil, p.StandingsErr
	}
	return p.Standings, nil
}

func (p *StubProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	if p.TeamsErr != nil {
		return nil, p.TeamsErr
	}
	return p.Teams, nil
}

// BlockingProvider parks every schedule fetch until Release is closed,
// then behaves like its inner stub. Useful for supersede tests.
type BlockingProvider struct {
	StubProvider
	Release chan struct{}
	Started chan struct{}
}

func (p *BlockingProvider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	if p.Started != nil {
		select {
		case p.Started <- struct{}{}:
		default:
		}
	}
	if p.Release != nil {
		<-p.Release
	}
	return p.StubProvider.FetchSchedule(ctx, teamID, startDate, endDate)
}

package providers

import (
	"context"

	"lastgame-service/internal/domain"
)

// ScheduleProvider fetches the normalized games for a team over an
// inclusive date range. Dates are YYYY-MM-DD strings in the club's civil
// calendar; an empty slice (not an error) means no games in the window.
type ScheduleProvider interface {
	FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error)
}

// MediaProvider fetches the media feed attached to one game.
type MediaProvider interface {
	FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error)
}

// StandingsProvider fetches league standings for a season.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error)
}

// TeamProvider fetches the league's teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]domain.Team, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	MediaProvider
	StandingsProvider
	TeamProvider
}

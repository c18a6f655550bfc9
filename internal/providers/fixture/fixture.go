package fixture

import (
	"context"
	"time"

	"lastgame-service/internal/domain"
)

// Provider returns a static data set useful for local testing and
// bootstrapping without hitting the live stats API.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// FetchSchedule returns a deterministic pair of games: one completed game
// with a condensed highlight available, one upcoming.
func (p *Provider) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	_ = ctx
	_ = teamID

	anchor := p.now().UTC().Truncate(time.Hour)
	if endDate != "" {
		if parsed, err := time.Parse("2006-01-02", endDate); err == nil {
			anchor = parsed.Add(20 * time.Hour)
		}
	}

	homeScore, awayScore := 5, 2
	winner := true
	return []domain.Game{
		{
			GamePk:    900001,
			StartTime: anchor.Add(-18 * time.Hour),
			Status:    domain.GameStatus{Code: "F", AbstractState: "Final", DetailedState: "Final"},
			Home:      domain.TeamRef{ID: 137, Name: "San Francisco Giants", Score: &homeScore, Winner: &winner},
			Away:      domain.TeamRef{ID: 119, Name: "Los Angeles Dodgers", Score: &awayScore},
			Venue:     "Oracle Park",
		},
		{
			GamePk:    900002,
			StartTime: anchor.Add(8 * time.Hour),
			Status:    domain.GameStatus{Code: "S", AbstractState: "Preview", DetailedState: "Scheduled"},
			Home:      domain.TeamRef{ID: 137, Name: "San Francisco Giants"},
			Away:      domain.TeamRef{ID: 135, Name: "San Diego Padres"},
			Venue:     "Oracle Park",
		},
	}, nil
}

// FetchGameMedia returns a deterministic highlight feed with one condensed
// game entry.
func (p *Provider) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	_ = ctx
	_ = gamePk
	return []domain.MediaItem{
		{
			Type:     "video",
			Title:    "Recap: Giants walk it off",
			Headline: "Giants walk it off in the 9th",
			Slug:     "giants-walk-off-recap",
			Playbacks: []domain.Playback{
				{Name: "mp4Avc", URL: "http://fixture.local/recap.mp4"},
			},
		},
		{
			Type:        "video",
			Title:       "Condensed Game: LAD@SF",
			Headline:    "Every scoring play from LAD@SF",
			Description: "A short rundown of the night's scoring.",
			Slug:        "lad-sf-condensed-game",
			Keywords:    []domain.Keyword{{Type: "taxonomy", Value: "condensed-game"}},
			Playbacks: []domain.Playback{
				{Name: "hlsCloud", URL: "http://fixture.local/condensed.m3u8"},
				{Name: "mp4-adaptive", URL: "http://fixture.local/condensed.mp4"},
			},
		},
	}, nil
}

// FetchStandings returns a deterministic division slice.
func (p *Provider) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	_ = ctx
	_ = season
	return []domain.StandingRecord{
		{TeamID: 119, TeamName: "Los Angeles Dodgers", Wins: 98, Losses: 64, Pct: ".605", GamesBack: "-", DivisionRank: "1"},
		{TeamID: 135, TeamName: "San Diego Padres", Wins: 93, Losses: 69, Pct: ".574", GamesBack: "5.0", DivisionRank: "2"},
		{TeamID: 137, TeamName: "San Francisco Giants", Wins: 80, Losses: 82, Pct: ".494", GamesBack: "18.0", DivisionRank: "4"},
	}, nil
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	return []domain.Team{
		{ID: 137, Name: "San Francisco Giants", Abbreviation: "SF", LocationName: "San Francisco"},
		{ID: 119, Name: "Los Angeles Dodgers", Abbreviation: "LAD", LocationName: "Los Angeles"},
		{ID: 135, Name: "San Diego Padres", Abbreviation: "SD", LocationName: "San Diego"},
	}, nil
}

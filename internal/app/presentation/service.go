// Package presentation composes the pipeline: civil date in, renderable
// presentation out. Schedule lookup, game selection, media filtering, and
// URL ranking happen here in strict sequence; everything network-facing is
// behind the provider interfaces.
package presentation

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"lastgame-service/internal/dates"
	"lastgame-service/internal/domain"
	"lastgame-service/internal/logging"
	"lastgame-service/internal/pick"
	"lastgame-service/internal/providers"
	"lastgame-service/internal/store"
)

const (
	defaultLookbackDays  = 9
	defaultLookaheadDays = 14
)

// Config controls service construction.
type Config struct {
	TeamID        int
	LookbackDays  int
	LookaheadDays int
}

// Service runs the resolution pipeline for one franchise.
type Service struct {
	provider  providers.DataProvider
	resolver  *dates.Resolver
	cache     *store.DayCache
	logger    *slog.Logger
	teamID    int
	lookback  int
	lookahead int
	now       func() time.Time
}

// NewService constructs a Service. The cache may be nil to disable
// day-level caching.
func NewService(provider providers.DataProvider, resolver *dates.Resolver, cache *store.DayCache, logger *slog.Logger, cfg Config) *Service {
	lookback := cfg.LookbackDays
	if lookback <= 0 {
		lookback = defaultLookbackDays
	}
	lookahead := cfg.LookaheadDays
	if lookahead <= 0 {
		lookahead = defaultLookaheadDays
	}
	return &Service{
		provider:  provider,
		resolver:  resolver,
		cache:     cache,
		logger:    logger,
		teamID:    cfg.TeamID,
		lookback:  lookback,
		lookahead: lookahead,
		now:       time.Now,
	}
}

// TeamID exposes the configured franchise id.
func (s *Service) TeamID() int {
	return s.teamID
}

// Resolver exposes the date resolver for display formatting.
func (s *Service) Resolver() *dates.Resolver {
	return s.resolver
}

// BuildLatest resolves the most recent completed game as of now, searching
// back over the lookback window, and builds its presentation.
func (s *Service) BuildLatest(ctx context.Context) (domain.Presentation, error) {
	asOf := s.now()
	today := s.resolver.Resolve(asOf)
	games, err := s.provider.FetchSchedule(ctx, s.teamID, today.Shift(-s.lookback).ISO(), today.ISO())
	if err != nil {
		return domain.Presentation{}, err
	}
	return s.compose(ctx, today, games, asOf)
}

// BuildFor builds the presentation for one selected civil date. Cached
// results for past days are served without refetching; a day's completed
// game does not change after the fact.
func (s *Service) BuildFor(ctx context.Context, d dates.Date) (domain.Presentation, error) {
	today := s.resolver.Resolve(s.now())
	if s.cache != nil && d.Before(today) {
		if cached, ok := s.cache.Get(d.ISO()); ok {
			return cached, nil
		}
	}

	games, err := s.provider.FetchSchedule(ctx, s.teamID, d.ISO(), d.ISO())
	if err != nil {
		return domain.Presentation{}, err
	}
	p, err := s.compose(ctx, d, games, s.resolver.EndOfDay(d))
	if err != nil {
		return domain.Presentation{}, err
	}
	// A past day's empty state is as final as its game: nothing can still
	// complete after the day has ended, so cache it alongside game days.
	if s.cache != nil && !p.HasGame() && d.Before(today) {
		s.cache.Put(p)
	}
	return p, nil
}

// compose runs selection, media filtering, and URL ranking over an
// already-fetched schedule.
func (s *Service) compose(ctx context.Context, d dates.Date, games []domain.Game, asOf time.Time) (domain.Presentation, error) {
	p := domain.Presentation{
		Date:        d.ISO(),
		DisplayDate: s.resolver.Format(d, dates.StyleDisplay),
	}

	game := pick.SelectCompleted(games, asOf)
	if game == nil {
		// A day without a completed game is a normal empty state, not an
		// error.
		return p, nil
	}
	p.Date = s.resolver.Resolve(game.StartTime).ISO()
	p.DisplayDate = s.resolver.Format(s.resolver.Resolve(game.StartTime), dates.StyleDisplay)
	p.Game = game
	p.Headline = scoreline(game)

	items, err := s.provider.FetchGameMedia(ctx, game.GamePk)
	if err != nil {
		return domain.Presentation{}, err
	}

	item := pick.FindCondensed(items)
	if item == nil {
		p.NoMedia = true
		p.EmbedURL = pick.FallbackEmbedURL
		s.logCached(ctx, p)
		return p, nil
	}

	if item.Headline != "" {
		p.Headline = item.Headline
	} else if item.Title != "" {
		p.Headline = item.Title
	}
	p.Description = item.Description

	if direct := pick.PickDirectURL(item.Playbacks); direct != "" {
		p.DirectURL = direct
	} else if embed := pick.PickEmbedURL(item.Playbacks); embed != "" {
		p.EmbedURL = embed
	} else {
		p.EmbedURL = pick.FallbackEmbedURL
	}

	s.logCached(ctx, p)
	return p, nil
}

func (s *Service) logCached(ctx context.Context, p domain.Presentation) {
	if s.cache != nil {
		s.cache.Put(p)
	}
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil && p.Game != nil {
		logger.Info("presentation built",
			slog.String(logging.FieldDate, p.Date),
			slog.Int(logging.FieldGamePk, p.Game.GamePk),
			slog.Bool("no_media", p.NoMedia),
		)
	}
}

// scoreline renders "Away 5, Home 2" when both scores are known.
func scoreline(g *domain.Game) string {
	if g.Away.Score == nil || g.Home.Score == nil {
		return ""
	}
	return fmt.Sprintf("%s %d, %s %d", g.Away.Name, *g.Away.Score, g.Home.Name, *g.Home.Score)
}

// NextGame finds the nearest upcoming game and annotates it with the
// opponent's standings row. A standings failure only omits the annotation.
func (s *Service) NextGame(ctx context.Context) (domain.NextGame, error) {
	asOf := s.now()
	today := s.resolver.Resolve(asOf)
	games, err := s.provider.FetchSchedule(ctx, s.teamID, today.ISO(), today.Shift(s.lookahead).ISO())
	if err != nil {
		return domain.NextGame{}, err
	}

	game := pick.SelectNextUpcoming(games, asOf)
	if game == nil {
		return domain.NextGame{}, nil
	}

	out := domain.NextGame{Game: game}
	opponentID := game.Home.ID
	if opponentID == s.teamID {
		opponentID = game.Away.ID
	}

	season := game.StartTime.In(s.resolver.Location()).Year()
	records, err := s.provider.FetchStandings(ctx, season)
	if err != nil {
		if providers.IsCancellation(err) {
			return domain.NextGame{}, err
		}
		logging.Warn(logging.FromContext(ctx, s.logger), "standings unavailable, omitting annotation", "err", err)
		return out, nil
	}
	for i := range records {
		if records[i].TeamID == opponentID {
			rec := records[i]
			out.Opponent = &rec
			break
		}
	}
	return out, nil
}

// MonthGames returns the month's games grouped by their civil day for the
// calendar grid.
func (s *Service) MonthGames(ctx context.Context, d dates.Date) (domain.MonthResponse, error) {
	first, last := dates.MonthBounds(d)
	games, err := s.provider.FetchSchedule(ctx, s.teamID, first.ISO(), last.ISO())
	if err != nil {
		return domain.MonthResponse{}, err
	}

	out := domain.MonthResponse{
		Start: first.ISO(),
		End:   last.ISO(),
		Days:  make(map[string][]domain.Game),
	}
	for _, g := range games {
		day := s.resolver.Resolve(g.StartTime).ISO()
		out.Days[day] = append(out.Days[day], g)
	}
	return out, nil
}

// Standings returns the season's standings rows.
func (s *Service) Standings(ctx context.Context, season int) (domain.StandingsResponse, error) {
	if season <= 0 {
		season = s.resolver.Resolve(s.now()).Year
	}
	records, err := s.provider.FetchStandings(ctx, season)
	if err != nil {
		return domain.StandingsResponse{}, err
	}
	return domain.StandingsResponse{Season: season, Records: records}, nil
}

// ResolveTeam maps a user-entered team name to a team, tolerating typos
// and partial names. Exact matches on name, abbreviation, or location win;
// otherwise the closest fuzzy match is used.
func (s *Service) ResolveTeam(ctx context.Context, name string) (domain.Team, error) {
	query := strings.TrimSpace(name)
	if query == "" {
		return domain.Team{}, fmt.Errorf("team name is empty")
	}

	teams, err := s.provider.FetchTeams(ctx)
	if err != nil {
		return domain.Team{}, err
	}

	for _, t := range teams {
		if strings.EqualFold(query, t.Name) || strings.EqualFold(query, t.Abbreviation) || strings.EqualFold(query, t.LocationName) {
			return t, nil
		}
	}

	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return domain.Team{}, fmt.Errorf("no team matches %q", name)
	}
	sort.Sort(ranks)
	return teams[ranks[0].OriginalIndex], nil
}

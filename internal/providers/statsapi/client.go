// Package statsapi implements the DataProvider contract against the public
// MLB Stats API. The feed is read-only, unauthenticated JSON; every field
// is treated as possibly absent and absent data degrades to empty values
// rather than errors.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"lastgame-service/internal/domain"
	"lastgame-service/internal/providers"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedule, media, standings, and team data and maps it to
// domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchSchedule retrieves a team's games over an inclusive date range.
func (c *Client) FetchSchedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.Game, error) {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("teamId", strconv.Itoa(teamID))
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var payload scheduleResponse
	if err := c.getJSON(ctx, "/v1/schedule", q, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0)
	for _, day := range payload.Dates {
		for _, g := range day.Games {
			games = append(games, mapGame(g))
		}
	}
	return games, nil
}

// FetchGameMedia retrieves the highlight feed attached to one game.
func (c *Client) FetchGameMedia(ctx context.Context, gamePk int) ([]domain.MediaItem, error) {
	var payload contentResponse
	path := fmt.Sprintf("/v1/game/%d/content", gamePk)
	if err := c.getJSON(ctx, path, nil, &payload); err != nil {
		return nil, err
	}

	items := make([]domain.MediaItem, 0)
	for _, raw := range contentItems(payload) {
		items = append(items, mapMediaItem(raw))
	}
	return items, nil
}

// contentItems digs the item list out of the nested content payload. Either
// wrapper level can be missing entirely.
func contentItems(payload contentResponse) []mediaItemResponse {
	if payload.Highlights == nil {
		return nil
	}
	if payload.Highlights.Highlights != nil && len(payload.Highlights.Highlights.Items) > 0 {
		return payload.Highlights.Highlights.Items
	}
	if payload.Highlights.Live != nil {
		return payload.Highlights.Live.Items
	}
	return nil
}

// FetchStandings retrieves regular-season standings for both leagues.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]domain.StandingRecord, error) {
	q := url.Values{}
	q.Set("leagueId", leagueIDs)
	q.Set("season", strconv.Itoa(season))
	q.Set("standingsTypes", "regularSeason")

	var payload standingsResponse
	if err := c.getJSON(ctx, "/v1/standings", q, &payload); err != nil {
		return nil, err
	}

	records := make([]domain.StandingRecord, 0)
	for _, rec := range payload.Records {
		for _, tr := range rec.TeamRecords {
			records = append(records, mapStandingRecord(tr))
		}
	}
	return records, nil
}

// FetchTeams retrieves the league's active teams.
func (c *Client) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))

	var payload teamsResponse
	if err := c.getJSON(ctx, "/v1/teams", q, &payload); err != nil {
		return nil, err
	}

	teams := make([]domain.Team, 0, len(payload.Teams))
	for _, t := range payload.Teams {
		teams = append(teams, mapTeam(t))
	}
	return teams, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

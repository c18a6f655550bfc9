package handlers

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"lastgame-service/internal/app/presentation"
	"lastgame-service/internal/dates"
	"lastgame-service/internal/domain"
	"lastgame-service/internal/refresh"
	"lastgame-service/internal/store"
	"lastgame-service/internal/testutil"
)

func intp(v int) *int { return &v }

func finalGame() domain.Game {
	return domain.Game{
		GamePk:    745123,
		StartTime: time.Date(2024, 9, 28, 20, 15, 0, 0, time.UTC),
		Status:    domain.GameStatus{Code: "F", AbstractState: "Final", DetailedState: "Final"},
		Home:      domain.TeamRef{ID: 137, Name: "San Francisco Giants", Score: intp(5), Winner: boolp(true)},
		Away:      domain.TeamRef{ID: 119, Name: "Los Angeles Dodgers", Score: intp(2)},
		Venue:     "Oracle Park",
	}
}

func boolp(v bool) *bool { return &v }

func condensedMedia() []domain.MediaItem {
	return []domain.MediaItem{
		{
			Type:     "Condensed Game",
			Headline: "CG: LAD@SF - 9/28/24",
			Playbacks: []domain.Playback{
				{Name: "mp4Avc", URL: "http://example.com/condensed.mp4"},
			},
		},
	}
}

func newTestHandler(t *testing.T, provider *testutil.StubProvider, statusFn func() refresh.Status) *Handler {
	t.Helper()
	resolver, err := dates.NewResolver(dates.DefaultZone)
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	svc := presentation.NewService(provider, resolver, store.NewDayCache(), nil, presentation.Config{TeamID: 137})
	return NewHandler(svc, nil, statusFn)
}

func TestHealthReturnsOK(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(nethttp.MethodGet, "/health", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthRejectsPost(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(nethttp.MethodPost, "/health", nil))

	if rec.Code != nethttp.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFnIsReady(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReportsUnavailableWhileRefreshFailing(t *testing.T) {
	statusFn := func() refresh.Status {
		return refresh.Status{ConsecutiveFailures: 5, LastError: "upstream down"}
	}
	h := newTestHandler(t, &testutil.StubProvider{}, statusFn)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(nethttp.MethodGet, "/ready", nil))

	if rec.Code != nethttp.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "upstream down" {
		t.Fatalf("expected last error surfaced, got %q", body["error"])
	}
}

func TestPresentationReturnsLatestGame(t *testing.T) {
	provider := &testutil.StubProvider{
		Games: []domain.Game{finalGame()},
		Media: condensedMedia(),
	}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var p domain.Presentation
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !p.HasGame() {
		t.Fatalf("expected a game in %s", rec.Body.String())
	}
	if p.DirectURL != "https://example.com/condensed.mp4" {
		t.Fatalf("expected secured direct url, got %q", p.DirectURL)
	}
}

func TestPresentationForSpecificDate(t *testing.T) {
	provider := &testutil.StubProvider{
		Games: []domain.Game{finalGame()},
		Media: condensedMedia(),
	}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation?date=2024-09-28", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var p domain.Presentation
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if p.Date != "2024-09-28" {
		t.Fatalf("expected requested date back, got %q", p.Date)
	}
}

func TestPresentationInvalidDateIsBadRequest(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation?date=09-28-2024", nil))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPresentationNoGameStillSucceeds(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200 for no-game day, got %d", rec.Code)
	}

	var p domain.Presentation
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if p.HasGame() {
		t.Fatalf("expected no game")
	}
	if p.DirectURL != "" || p.EmbedURL != "" {
		t.Fatalf("expected no media urls for a no-game day, got %+v", p)
	}
}

func TestPresentationUpstreamFailureIsBadGateway(t *testing.T) {
	provider := &testutil.StubProvider{ScheduleErr: errors.New("connection refused")}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation", nil))

	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestPresentationUpstreamTimeoutIsBadGateway(t *testing.T) {
	timeout := &url.Error{Op: "Get", URL: "http://statsapi.local/schedule", Err: context.DeadlineExceeded}
	provider := &testutil.StubProvider{ScheduleErr: timeout}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation?date=2024-07-04", nil))

	if rec.Code != nethttp.StatusBadGateway {
		t.Fatalf("expected 502 for an upstream timeout, got %d", rec.Code)
	}
}

func TestPresentationCancellationUsesClientClosedStatus(t *testing.T) {
	provider := &testutil.StubProvider{ScheduleErr: context.Canceled}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Presentation(rec, httptest.NewRequest(nethttp.MethodGet, "/presentation", nil))

	if rec.Code != 499 {
		t.Fatalf("expected 499, got %d", rec.Code)
	}
}

func TestMonthGamesGroupsByDay(t *testing.T) {
	provider := &testutil.StubProvider{Games: []domain.Game{finalGame()}}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.MonthGames(rec, httptest.NewRequest(nethttp.MethodGet, "/games/month?date=2024-09-15", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var month domain.MonthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &month); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if month.Start != "2024-09-01" || month.End != "2024-09-30" {
		t.Fatalf("unexpected month bounds %s..%s", month.Start, month.End)
	}
	// 20:15 UTC on Sep 28 is still Sep 28 in the Pacific zone.
	if got := len(month.Days["2024-09-28"]); got != 1 {
		t.Fatalf("expected game grouped under 2024-09-28, got %d", got)
	}
}

func TestMonthGamesInvalidDateIsBadRequest(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.MonthGames(rec, httptest.NewRequest(nethttp.MethodGet, "/games/month?date=bogus", nil))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestNextGameReturnsUpcoming(t *testing.T) {
	upcoming := domain.Game{
		GamePk:    800001,
		StartTime: time.Now().Add(48 * time.Hour),
		Status:    domain.GameStatus{Code: "S", AbstractState: "Preview"},
		Home:      domain.TeamRef{ID: 119, Name: "Los Angeles Dodgers"},
		Away:      domain.TeamRef{ID: 137, Name: "San Francisco Giants"},
	}
	provider := &testutil.StubProvider{
		Games:     []domain.Game{upcoming},
		Standings: []domain.StandingRecord{{TeamID: 119, TeamName: "Los Angeles Dodgers", Wins: 90, Losses: 60}},
	}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.NextGame(rec, httptest.NewRequest(nethttp.MethodGet, "/games/next", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var next domain.NextGame
	if err := json.Unmarshal(rec.Body.Bytes(), &next); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if next.Game == nil || next.Game.GamePk != 800001 {
		t.Fatalf("expected upcoming game, got %+v", next.Game)
	}
	if next.Opponent == nil || next.Opponent.TeamID != 119 {
		t.Fatalf("expected opponent standings, got %+v", next.Opponent)
	}
}

func TestStandingsInvalidSeasonIsBadRequest(t *testing.T) {
	h := newTestHandler(t, &testutil.StubProvider{}, nil)

	rec := httptest.NewRecorder()
	h.Standings(rec, httptest.NewRequest(nethttp.MethodGet, "/standings?season=abc", nil))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Standings(rec, httptest.NewRequest(nethttp.MethodGet, "/standings?season=1776", nil))

	if rec.Code != nethttp.StatusBadRequest {
		t.Fatalf("expected 400 for pre-modern season, got %d", rec.Code)
	}
}

func TestStandingsReturnsRecords(t *testing.T) {
	provider := &testutil.StubProvider{
		Standings: []domain.StandingRecord{{TeamID: 137, TeamName: "San Francisco Giants", Wins: 80, Losses: 82}},
	}
	h := newTestHandler(t, provider, nil)

	rec := httptest.NewRecorder()
	h.Standings(rec, httptest.NewRequest(nethttp.MethodGet, "/standings?season=2024", nil))

	if rec.Code != nethttp.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp domain.StandingsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Season != 2024 {
		t.Fatalf("expected season echoed back, got %d", resp.Season)
	}
	if len(resp.Records) != 1 || resp.Records[0].TeamID != 137 {
		t.Fatalf("unexpected records %+v", resp.Records)
	}
}

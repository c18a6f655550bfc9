package domain

import (
	"strings"
	"time"
)

// finalStatusCodes is the fixed set of upstream status codes that mean a
// game has finished. Historical data uses several of these interchangeably.
var finalStatusCodes = map[string]struct{}{
	"F":  {},
	"FT": {},
	"FR": {},
	"O":  {},
}

// GameStatus carries the raw upstream status vocabulary for a game.
// Upstream is inconsistent across seasons, so completion is derived from
// several fields rather than one.
type GameStatus struct {
	Code          string `json:"code"`
	AbstractState string `json:"abstractState"`
	DetailedState string `json:"detailedState"`
}

// IsFinal reports whether the status describes a completed game. Any of the
// probes matching is enough; upstream vocabularies disagree with each other.
func (s GameStatus) IsFinal() bool {
	if _, ok := finalStatusCodes[s.Code]; ok {
		return true
	}
	if strings.EqualFold(s.AbstractState, "Final") {
		return true
	}
	detail := strings.ToLower(s.DetailedState)
	return strings.Contains(detail, "final") || strings.Contains(detail, "completed")
}

// TeamRef identifies one side of a game, with the score when available.
type TeamRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Score  *int   `json:"score,omitempty"`
	Winner *bool  `json:"winner,omitempty"`
}

// Game is the normalized shape of one scheduled game.
type Game struct {
	GamePk    int        `json:"gamePk"`
	StartTime time.Time  `json:"startTime"`
	Status    GameStatus `json:"status"`
	Home      TeamRef    `json:"home"`
	Away      TeamRef    `json:"away"`
	Venue     string     `json:"venue,omitempty"`
}

// Team is a franchise as returned by the upstream teams listing.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	LocationName string `json:"locationName,omitempty"`
}

// Keyword is a typed free-text tag attached to a media item.
type Keyword struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Playback is one alternative encoding of a media item.
type Playback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MediaItem is one entry from a game's media feed. All fields are
// best-effort; upstream tagging is inconsistent and any of them may be empty.
type MediaItem struct {
	Type         string     `json:"type,omitempty"`
	PlaybackType string     `json:"playbackType,omitempty"`
	Title        string     `json:"title,omitempty"`
	Headline     string     `json:"headline,omitempty"`
	Description  string     `json:"description,omitempty"`
	Slug         string     `json:"slug,omitempty"`
	Keywords     []Keyword  `json:"keywords,omitempty"`
	Playbacks    []Playback `json:"playbacks,omitempty"`
}

// StandingRecord is one team's row in the division standings.
type StandingRecord struct {
	TeamID       int    `json:"teamId"`
	TeamName     string `json:"teamName"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Pct          string `json:"pct,omitempty"`
	GamesBack    string `json:"gamesBack,omitempty"`
	DivisionRank string `json:"divisionRank,omitempty"`
}

// Presentation is the final pipeline output for one civil date.
// When Game is set, exactly one of DirectURL and EmbedURL is populated.
type Presentation struct {
	Date        string `json:"date"`
	DisplayDate string `json:"displayDate"`
	Game        *Game  `json:"game,omitempty"`
	Headline    string `json:"headline,omitempty"`
	Description string `json:"description,omitempty"`
	DirectURL   string `json:"directUrl,omitempty"`
	EmbedURL    string `json:"embedUrl,omitempty"`
	NoMedia     bool   `json:"noMedia,omitempty"`
}

// HasGame reports whether the date resolved to a completed game.
func (p Presentation) HasGame() bool {
	return p.Game != nil
}

// NextGame is the look-ahead result: the nearest upcoming game, with the
// opponent's standings row when it could be fetched.
type NextGame struct {
	Game     *Game           `json:"game,omitempty"`
	Opponent *StandingRecord `json:"opponent,omitempty"`
}

// MonthResponse carries a month's games keyed by ISO day for calendar use.
type MonthResponse struct {
	Start string            `json:"start"`
	End   string            `json:"end"`
	Days  map[string][]Game `json:"days"`
}

// StandingsResponse is the payload returned by /standings.
type StandingsResponse struct {
	Season  int              `json:"season"`
	Records []StandingRecord `json:"records"`
}

package statsapi

import (
	"strings"
	"time"

	"lastgame-service/internal/domain"
)

func mapGame(g gameResponse) domain.Game {
	return domain.Game{
		GamePk:    g.GamePk,
		StartTime: parseGameDate(g.GameDate),
		Status: domain.GameStatus{
			Code:          firstNonEmpty(g.Status.StatusCode, g.Status.CodedGameState),
			AbstractState: g.Status.AbstractGameState,
			DetailedState: g.Status.DetailedState,
		},
		Home:  mapSide(g.Teams.Home),
		Away:  mapSide(g.Teams.Away),
		Venue: g.Venue.Name,
	}
}

func mapSide(side gameTeamSide) domain.TeamRef {
	return domain.TeamRef{
		ID:     side.Team.ID,
		Name:   side.Team.Name,
		Score:  side.Score,
		Winner: side.IsWinner,
	}
}

func parseGameDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	// Some historical entries carry a bare date.
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return time.Time{}
}

func mapMediaItem(m mediaItemResponse) domain.MediaItem {
	item := domain.MediaItem{
		Type:         m.Type,
		PlaybackType: m.MediaPlaybackType,
		Title:        m.Title,
		Headline:     m.Headline,
		Description:  firstNonEmpty(m.Description, m.Blurb),
		Slug:         m.Slug,
	}
	for _, kw := range m.KeywordsAll {
		item.Keywords = append(item.Keywords, domain.Keyword{Type: kw.Type, Value: kw.Value})
	}
	for _, pb := range m.Playbacks {
		item.Playbacks = append(item.Playbacks, domain.Playback{Name: pb.Name, URL: pb.URL})
	}
	return item
}

func mapTeam(t teamResponse) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Name:         t.Name,
		Abbreviation: t.Abbreviation,
		LocationName: t.LocationName,
	}
}

func mapStandingRecord(r teamRecordEntry) domain.StandingRecord {
	return domain.StandingRecord{
		TeamID:       r.Team.ID,
		TeamName:     r.Team.Name,
		Wins:         r.Wins,
		Losses:       r.Losses,
		Pct:          r.WinningPercentage,
		GamesBack:    r.GamesBack,
		DivisionRank: r.DivisionRank,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

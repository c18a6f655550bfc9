package cli

import (
	"fmt"
	"sort"
	"strings"

	"lastgame-service/internal/dates"
	"lastgame-service/internal/domain"
)

func renderPresentation(p domain.Presentation) string {
	var b strings.Builder

	b.WriteString(dateStyle.Render(p.DisplayDate))
	b.WriteString("\n")

	if !p.HasGame() {
		b.WriteString(emptyStyle.Render("no completed game"))
		b.WriteString("\n")
		return b.String()
	}

	if p.Headline != "" {
		b.WriteString(headlineStyle.Render(p.Headline))
		b.WriteString("\n")
	}
	b.WriteString(scoreStyle.Render(matchup(*p.Game)))
	if p.Game.Venue != "" {
		b.WriteString(dateStyle.Render("  " + p.Game.Venue))
	}
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n")
	}

	switch {
	case p.DirectURL != "":
		b.WriteString(urlStyle.Render(p.DirectURL))
	case p.NoMedia:
		b.WriteString(emptyStyle.Render("no condensed replay yet"))
		b.WriteString("  ")
		b.WriteString(urlStyle.Render(p.EmbedURL))
	default:
		b.WriteString(urlStyle.Render(p.EmbedURL))
	}
	b.WriteString("\n")
	return b.String()
}

func renderNext(next domain.NextGame, resolver *dates.Resolver) string {
	if next.Game == nil {
		return emptyStyle.Render("no upcoming game in the look-ahead window") + "\n"
	}

	var b strings.Builder
	d := resolver.Resolve(next.Game.StartTime)
	local := next.Game.StartTime.In(resolver.Location())

	b.WriteString(headlineStyle.Render(matchup(*next.Game)))
	b.WriteString("\n")
	b.WriteString(dateStyle.Render(resolver.Format(d, dates.StyleDisplay) + " at " + local.Format("3:04 PM")))
	b.WriteString("\n")

	if next.Opponent != nil {
		rec := next.Opponent
		b.WriteString(fmt.Sprintf("%s: %d-%d", rec.TeamName, rec.Wins, rec.Losses))
		if rec.GamesBack != "" {
			b.WriteString(dateStyle.Render(fmt.Sprintf("  (%s GB)", rec.GamesBack)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderMonth(month domain.MonthResponse, resolver *dates.Resolver, d dates.Date) string {
	var b strings.Builder
	b.WriteString(headlineStyle.Render(resolver.Format(d, dates.StyleMonthTitle)))
	b.WriteString("\n")

	days := make([]string, 0, len(month.Days))
	for day := range month.Days {
		days = append(days, day)
	}
	sort.Strings(days)

	if len(days) == 0 {
		b.WriteString(emptyStyle.Render("no games scheduled"))
		b.WriteString("\n")
		return b.String()
	}

	for _, day := range days {
		for _, g := range month.Days[day] {
			line := fmt.Sprintf("%s  %s", day, matchup(g))
			if g.Status.IsFinal() {
				b.WriteString(dateStyle.Render(line))
			} else {
				b.WriteString(line)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderStandings(resp domain.StandingsResponse) string {
	var b strings.Builder
	b.WriteString(headlineStyle.Render(fmt.Sprintf("%d standings", resp.Season)))
	b.WriteString("\n")

	if len(resp.Records) == 0 {
		b.WriteString(emptyStyle.Render("no standings available"))
		b.WriteString("\n")
		return b.String()
	}

	for _, rec := range resp.Records {
		line := fmt.Sprintf("%-24s %3d-%-3d", rec.TeamName, rec.Wins, rec.Losses)
		if rec.GamesBack != "" {
			line += fmt.Sprintf("  %s GB", rec.GamesBack)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// matchup renders "Away 2 @ Home 5" with scores when known.
func matchup(g domain.Game) string {
	away := g.Away.Name
	home := g.Home.Name
	if g.Away.Score != nil && g.Home.Score != nil {
		return fmt.Sprintf("%s %d @ %s %d", away, *g.Away.Score, home, *g.Home.Score)
	}
	return fmt.Sprintf("%s @ %s", away, home)
}

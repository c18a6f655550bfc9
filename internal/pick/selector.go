// Package pick holds the pure selection logic of the pipeline: choosing a
// game from a day's schedule, the condensed highlight from a media feed,
// and a single playback URL from its encodings. Nothing here does I/O.
package pick

import (
	"time"

	"lastgame-service/internal/domain"
)

// SelectCompleted returns the completed game with the latest start time at
// or before asOf, or nil when none qualifies. Ties keep the earlier list
// position; one franchise cannot play two games at the same instant.
func SelectCompleted(games []domain.Game, asOf time.Time) *domain.Game {
	var best *domain.Game
	for i := range games {
		g := &games[i]
		if !g.Status.IsFinal() {
			continue
		}
		if g.StartTime.After(asOf) {
			continue
		}
		if best == nil || g.StartTime.After(best.StartTime) {
			best = g
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// SelectNextUpcoming returns the non-completed game with the earliest start
// time at or after asOf, or nil when none qualifies.
func SelectNextUpcoming(games []domain.Game, asOf time.Time) *domain.Game {
	var best *domain.Game
	for i := range games {
		g := &games[i]
		if g.Status.IsFinal() {
			continue
		}
		if g.StartTime.Before(asOf) {
			continue
		}
		if best == nil || g.StartTime.Before(best.StartTime) {
			best = g
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

package pick

import (
	"strings"

	"lastgame-service/internal/domain"
)

const condensedMarker = "condensed"

// FindCondensed returns the first item, in feed order, tagged as a
// condensed game. Upstream tagging is inconsistent, so the marker is probed
// against several fields in a fixed order; any hit selects the item. The
// match is substring-based on purpose and must stay that way.
func FindCondensed(items []domain.MediaItem) *domain.MediaItem {
	for i := range items {
		if isCondensed(&items[i]) {
			out := items[i]
			return &out
		}
	}
	return nil
}

func isCondensed(item *domain.MediaItem) bool {
	for _, field := range []string{
		item.Type,
		item.PlaybackType,
		item.Title,
		item.Headline,
		item.Slug,
	} {
		if containsFold(field, condensedMarker) {
			return true
		}
	}
	for _, kw := range item.Keywords {
		if containsFold(kw.Value, condensedMarker) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

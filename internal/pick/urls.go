package pick

import (
	"strings"

	"lastgame-service/internal/domain"
)

// FallbackEmbedURL is served when no playable or embeddable URL can be
// found, so the presentation layer always has something renderable.
const FallbackEmbedURL = "https://www.mlb.com/video/topic/condensed-games"

// directPreference ranks playback labels from best to worst. Matching is
// case-insensitive substring against the encoding's label.
var directPreference = []string{
	"mp4-adaptive",
	"mp4-hd",
	"mp4-generic",
	"mp4",
	"cloud-mobile",
	"cloud-tablet",
}

// PickDirectURL selects a single directly playable URL from the encodings.
// Label preference wins first; failing that, the first URL ending in .mp4;
// failing that, the first encoding at all. Empty input yields "".
func PickDirectURL(playbacks []domain.Playback) string {
	if len(playbacks) == 0 {
		return ""
	}
	for _, pref := range directPreference {
		for _, pb := range playbacks {
			if containsFold(pb.Name, pref) {
				return SecureURL(pb.URL)
			}
		}
	}
	for _, pb := range playbacks {
		if strings.HasSuffix(strings.ToLower(pb.URL), ".mp4") {
			return SecureURL(pb.URL)
		}
	}
	return SecureURL(playbacks[0].URL)
}

// PickEmbedURL selects a third-party player reference: the first encoding
// whose URL mentions "iframe". Empty when none.
func PickEmbedURL(playbacks []domain.Playback) string {
	for _, pb := range playbacks {
		if strings.Contains(strings.ToLower(pb.URL), "iframe") {
			return SecureURL(pb.URL)
		}
	}
	return ""
}

// SecureURL upgrades an insecure scheme prefix in place. Pure string
// rewrite; the rest of the URL is left untouched.
func SecureURL(raw string) string {
	if strings.HasPrefix(raw, "http://") {
		return "https://" + strings.TrimPrefix(raw, "http://")
	}
	return raw
}

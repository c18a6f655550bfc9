package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lastgame-service/internal/domain"
)

func TestPickDirectURLLabelPriorityBeatsOrder(t *testing.T) {
	playbacks := []domain.Playback{
		{Name: "http_cloud_tablet", URL: "http://a/x.m3u8"},
		{Name: "mp4Avc", URL: "http://a/y.mp4"},
	}
	assert.Equal(t, "https://a/y.mp4", PickDirectURL(playbacks))
}

func TestPickDirectURLPrefersAdaptive(t *testing.T) {
	playbacks := []domain.Playback{
		{Name: "mp4Avc", URL: "https://a/plain.mp4"},
		{Name: "MP4-ADAPTIVE-2500K", URL: "https://a/adaptive.mp4"},
	}
	assert.Equal(t, "https://a/adaptive.mp4", PickDirectURL(playbacks))
}

func TestPickDirectURLFallsBackToMP4Extension(t *testing.T) {
	playbacks := []domain.Playback{
		{Name: "hlsCloud", URL: "https://a/stream.m3u8"},
		{Name: "highBit", URL: "https://a/clip.MP4"},
	}
	assert.Equal(t, "https://a/clip.MP4", PickDirectURL(playbacks))
}

func TestPickDirectURLLastResortFirstEncoding(t *testing.T) {
	playbacks := []domain.Playback{
		{Name: "hlsCloud", URL: "http://a/stream.m3u8"},
		{Name: "dash", URL: "https://a/stream.mpd"},
	}
	assert.Equal(t, "https://a/stream.m3u8", PickDirectURL(playbacks))
}

func TestPickDirectURLEmpty(t *testing.T) {
	assert.Equal(t, "", PickDirectURL(nil))
	assert.Equal(t, "", PickDirectURL([]domain.Playback{}))
}

func TestPickEmbedURL(t *testing.T) {
	playbacks := []domain.Playback{
		{Name: "mp4Avc", URL: "https://a/clip.mp4"},
		{Name: "embed", URL: "http://player.example.com/iframe?content=123"},
	}
	assert.Equal(t, "https://player.example.com/iframe?content=123", PickEmbedURL(playbacks))
	assert.Equal(t, "", PickEmbedURL(playbacks[:1]))
}

func TestSecureURL(t *testing.T) {
	assert.Equal(t, "https://a/b.mp4", SecureURL("http://a/b.mp4"))
	assert.Equal(t, "https://a/b.mp4", SecureURL("https://a/b.mp4"))
	// Only the scheme prefix is touched.
	assert.Equal(t, "https://a/redirect?to=http://b", SecureURL("https://a/redirect?to=http://b"))
	assert.Equal(t, "//a/b.mp4", SecureURL("//a/b.mp4"))
}

package config

import "time"

const (
	envStatsAPIBaseURL  = "STATSAPI_BASE_URL"
	envStatsAPIInterval = "STATSAPI_MIN_INTERVAL"

	defaultStatsAPIBaseURL = "https://statsapi.mlb.com/api"
	// Minimum spacing between upstream calls; the feed is unauthenticated
	// so we self-impose a polite rate.
	defaultStatsAPIInterval = 500 * Duration(time.Millisecond)
)

// StatsAPIConfig controls how we talk to the MLB Stats API.
type StatsAPIConfig struct {
	BaseURL     string
	MinInterval time.Duration
}

func loadStatsAPI() StatsAPIConfig {
	return StatsAPIConfig{
		BaseURL:     envOrDefault(envStatsAPIBaseURL, defaultStatsAPIBaseURL),
		MinInterval: durationEnvOrDefault(envStatsAPIInterval, defaultStatsAPIInterval),
	}
}

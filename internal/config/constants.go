package config

import "time"

const (
	envPort            = "PORT"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envTeamID          = "TEAM_ID"
	envTimezone        = "TIMEZONE"
	envLookbackDays    = "LOOKBACK_DAYS"
	envLookaheadDays   = "LOOKAHEAD_DAYS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Completed games change rarely; a gentle cadence keeps us well under
	// upstream quotas while still catching a game that just went final.
	defaultRefreshInterval = 5 * Duration(time.Minute)
	defaultProvider        = "fixture"
	// San Francisco Giants.
	defaultTeamID   = 137
	defaultTimezone = "America/Los_Angeles"
	// How far back to search for the most recent completed game, and how
	// far forward for the next scheduled one.
	defaultLookbackDays  = 9
	defaultLookaheadDays = 14
	defaultMetricsPort   = "9090"
)

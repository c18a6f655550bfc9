package config

// Config holds runtime configuration for the server.
type Config struct {
	Port            string
	RefreshInterval Duration
	Provider        string
	TeamID          int
	Timezone        string
	LookbackDays    int
	LookaheadDays   int
	StatsAPI        StatsAPIConfig
	Metrics         MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:            envOrDefault(envPort, defaultPort),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshInterval),
		Provider:        envOrDefault(envProvider, defaultProvider),
		TeamID:          intEnvOrDefault(envTeamID, defaultTeamID),
		Timezone:        envOrDefault(envTimezone, defaultTimezone),
		LookbackDays:    intEnvOrDefault(envLookbackDays, defaultLookbackDays),
		LookaheadDays:   intEnvOrDefault(envLookaheadDays, defaultLookaheadDays),
		StatsAPI:        loadStatsAPI(),
		Metrics:         loadMetrics(),
	}
}

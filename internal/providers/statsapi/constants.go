package statsapi

import "time"

const (
	defaultBaseURL     = "https://statsapi.mlb.com/api"
	defaultHTTPTimeout = 10 * time.Second

	// sportID selects MLB on the shared stats platform.
	sportID = 1

	// National and American League; the standings endpoint wants both.
	leagueIDs = "103,104"
)

const providerName = "statsapi"

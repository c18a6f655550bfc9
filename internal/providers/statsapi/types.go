package statsapi

// Wire types for the stats API. Every field is optional in practice; the
// feed omits anything it does not know, so decoding must never assume
// presence.

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	GamePk   int            `json:"gamePk"`
	GameDate string         `json:"gameDate"`
	Status   statusResponse `json:"status"`
	Teams    gameTeams      `json:"teams"`
	Venue    venueResponse  `json:"venue"`
}

type statusResponse struct {
	StatusCode        string `json:"statusCode"`
	CodedGameState    string `json:"codedGameState"`
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type gameTeams struct {
	Home gameTeamSide `json:"home"`
	Away gameTeamSide `json:"away"`
}

type gameTeamSide struct {
	Team     teamResponse `json:"team"`
	Score    *int         `json:"score"`
	IsWinner *bool        `json:"isWinner"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LocationName string `json:"locationName"`
}

type venueResponse struct {
	Name string `json:"name"`
}

type contentResponse struct {
	Highlights *highlightsWrapper `json:"highlights"`
}

type highlightsWrapper struct {
	Highlights *highlightsList `json:"highlights"`
	Live       *highlightsList `json:"live"`
}

type highlightsList struct {
	Items []mediaItemResponse `json:"items"`
}

type mediaItemResponse struct {
	Type              string             `json:"type"`
	MediaPlaybackType string             `json:"mediaPlaybackType"`
	Title             string             `json:"title"`
	Headline          string             `json:"headline"`
	Description       string             `json:"description"`
	Blurb             string             `json:"blurb"`
	Slug              string             `json:"slug"`
	KeywordsAll       []keywordResponse  `json:"keywordsAll"`
	Playbacks         []playbackResponse `json:"playbacks"`
}

type keywordResponse struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type playbackResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type standingsResponse struct {
	Records []standingsRecord `json:"records"`
}

type standingsRecord struct {
	Division    divisionResponse  `json:"division"`
	TeamRecords []teamRecordEntry `json:"teamRecords"`
}

type divisionResponse struct {
	ID int `json:"id"`
}

type teamRecordEntry struct {
	Team              teamResponse `json:"team"`
	Wins              int          `json:"wins"`
	Losses            int          `json:"losses"`
	WinningPercentage string       `json:"winningPercentage"`
	GamesBack         string       `json:"gamesBack"`
	DivisionRank      string       `json:"divisionRank"`
}

type teamsResponse struct {
	Teams []teamResponse `json:"teams"`
}

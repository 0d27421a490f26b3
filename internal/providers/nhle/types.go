package nhle

const providerName = "nhle"

type scheduleResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	ID       int          `json:"id"`
	Season   int          `json:"season"`
	GameType int          `json:"gameType"`
	GameDate string       `json:"gameDate"`
	AwayTeam teamResponse `json:"awayTeam"`
	HomeTeam teamResponse `json:"homeTeam"`
}

type teamResponse struct {
	Abbrev string `json:"abbrev"`
	Score  *int   `json:"score"`
}

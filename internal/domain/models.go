package domain

// GameType mirrors the NHL api-web discriminator for game kinds.
type GameType int

const (
	GameTypePreseason     GameType = 1
	GameTypeRegularSeason GameType = 2
	GameTypePlayoff       GameType = 3
)

// GameSide is one side of a raw schedule game. Score is nil for games
// that have not been played yet.
type GameSide struct {
	Team  string `json:"team"`
	Score *int   `json:"score,omitempty"`
}

// RawGame is a single game as fetched from the schedule provider.
// Immutable once fetched.
type RawGame struct {
	ID     int      `json:"id"`
	Date   string   `json:"date"`
	Season string   `json:"season"`
	Type   GameType `json:"type"`
	Home   GameSide `json:"home"`
	Away   GameSide `json:"away"`
}

// Played reports whether both sides have a final score.
func (g RawGame) Played() bool {
	return g.Home.Score != nil && g.Away.Score != nil
}

// TeamGameRecord is one team's perspective of a single completed game.
// Every completed game yields exactly two records with team/opponent and
// goals swapped; GameLocation is the home team's arena on both.
type TeamGameRecord struct {
	GameID       int    `json:"gameId"`
	Season       string `json:"season"`
	Date         string `json:"date"`
	Team         string `json:"team"`
	Opponent     string `json:"opponent"`
	IsHome       bool   `json:"isHome"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	GameLocation string `json:"gameLocation"`
}

// DerivedRecord augments a TeamGameRecord with the three computed
// features. Pointer fields are nil when the value is undefined (first
// game, unresolvable arena, opponent with no prior games); they are
// never coerced to zero.
type DerivedRecord struct {
	TeamGameRecord
	RestDays       *int     `json:"restDays"`
	TravelDistance *float64 `json:"travelDistance"`
	OpponentWinPct *float64 `json:"opponentWinPct"`
}

// DatasetResponse is the payload returned by /dataset.
type DatasetResponse struct {
	Seasons []string        `json:"seasons"`
	Count   int             `json:"count"`
	Records []DerivedRecord `json:"records"`
}

// NewDatasetResponse builds a DatasetResponse payload.
func NewDatasetResponse(seasons []string, records []DerivedRecord) DatasetResponse {
	return DatasetResponse{
		Seasons: seasons,
		Count:   len(records),
		Records: records,
	}
}

package nhle

import "github.com/danicode12/stat139-nhl-project/internal/domain"

func mapGame(g gameResponse, season string) domain.RawGame {
	return domain.RawGame{
		ID:     g.ID,
		Date:   mapDate(g.GameDate),
		Season: SeasonTag(season),
		Type:   domain.GameType(g.GameType),
		Home: domain.GameSide{
			Team:  g.HomeTeam.Abbrev,
			Score: g.HomeTeam.Score,
		},
		Away: domain.GameSide{
			Team:  g.AwayTeam.Abbrev,
			Score: g.AwayTeam.Score,
		},
	}
}

// mapDate trims api-web game dates to YYYY-MM-DD. Some endpoints return
// a full timestamp, some a bare date.
func mapDate(raw string) string {
	if len(raw) > 10 {
		return raw[:10]
	}
	return raw
}

// SeasonTag converts an upstream season token like "20232024" to the
// dataset tag "2023-24".
func SeasonTag(season string) string {
	if len(season) != 8 {
		return season
	}
	return season[:4] + "-" + season[6:]
}

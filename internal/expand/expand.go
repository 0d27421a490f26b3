// Package expand turns raw schedule games into oriented team-perspective
// records, two per completed game.
package expand

import "github.com/danicode12/stat139-nhl-project/internal/domain"

// Game expands a raw game into zero or two TeamGameRecords. Games with a
// missing score on either side are unplayed and produce no records.
// The home-perspective record always comes first.
func Game(g domain.RawGame) []domain.TeamGameRecord {
	if !g.Played() {
		return nil
	}

	home := *g.Home.Score
	away := *g.Away.Score

	return []domain.TeamGameRecord{
		{
			GameID:       g.ID,
			Season:       g.Season,
			Date:         g.Date,
			Team:         g.Home.Team,
			Opponent:     g.Away.Team,
			IsHome:       true,
			GoalsFor:     home,
			GoalsAgainst: away,
			GoalDiff:     home - away,
			GameLocation: g.Home.Team,
		},
		{
			GameID:       g.ID,
			Season:       g.Season,
			Date:         g.Date,
			Team:         g.Away.Team,
			Opponent:     g.Home.Team,
			IsHome:       false,
			GoalsFor:     away,
			GoalsAgainst: home,
			GoalDiff:     away - home,
			GameLocation: g.Home.Team,
		},
	}
}

// Games expands a slice of raw games, skipping unplayed ones.
func Games(games []domain.RawGame) []domain.TeamGameRecord {
	records := make([]domain.TeamGameRecord, 0, 2*len(games))
	for _, g := range games {
		records = append(records, Game(g)...)
	}
	return records
}

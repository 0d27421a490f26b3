package expand

import (
	"testing"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestGameExpandsCompletedGameIntoTwoRecords(t *testing.T) {
	g := domain.RawGame{
		ID:     2023020001,
		Date:   "2023-10-10",
		Season: "2023-24",
		Type:   domain.GameTypeRegularSeason,
		Home:   domain.GameSide{Team: "BOS", Score: intPtr(4)},
		Away:   domain.GameSide{Team: "TOR", Score: intPtr(2)},
	}

	records := Game(g)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	home, away := records[0], records[1]
	if !home.IsHome || away.IsHome {
		t.Fatalf("expected home-perspective record first: %+v %+v", home, away)
	}
	if home.Team != "BOS" || home.Opponent != "TOR" {
		t.Fatalf("unexpected home record teams: %+v", home)
	}
	if away.Team != "TOR" || away.Opponent != "BOS" {
		t.Fatalf("unexpected away record teams: %+v", away)
	}
	if home.GoalsFor != 4 || home.GoalsAgainst != 2 || home.GoalDiff != 2 {
		t.Fatalf("unexpected home goals: %+v", home)
	}
	if away.GoalsFor != 2 || away.GoalsAgainst != 4 || away.GoalDiff != -2 {
		t.Fatalf("unexpected away goals: %+v", away)
	}
	if home.GoalDiff != -away.GoalDiff {
		t.Fatalf("goal diffs must negate: %d vs %d", home.GoalDiff, away.GoalDiff)
	}
	if home.GameLocation != "BOS" || away.GameLocation != "BOS" {
		t.Fatalf("game location must be home arena on both records: %+v %+v", home, away)
	}
	if home.GameID != away.GameID {
		t.Fatal("records must share the game id")
	}
}

func TestGameSkipsUnplayedGame(t *testing.T) {
	g := domain.RawGame{
		ID:   2023020002,
		Date: "2024-04-01",
		Home: domain.GameSide{Team: "BOS"},
		Away: domain.GameSide{Team: "TOR", Score: intPtr(3)},
	}

	if records := Game(g); len(records) != 0 {
		t.Fatalf("expected no records for unplayed game, got %d", len(records))
	}
}

func TestGamesExpandsOnlyCompleted(t *testing.T) {
	games := []domain.RawGame{
		{
			ID: 1, Date: "2023-10-10",
			Home: domain.GameSide{Team: "BOS", Score: intPtr(4)},
			Away: domain.GameSide{Team: "TOR", Score: intPtr(2)},
		},
		{
			ID: 2, Date: "2024-04-20",
			Home: domain.GameSide{Team: "NYR"},
			Away: domain.GameSide{Team: "NJD"},
		},
	}

	records := Games(games)
	if len(records) != 2 {
		t.Fatalf("expected 2 records from 1 completed game, got %d", len(records))
	}
}

func TestGameIsDeterministic(t *testing.T) {
	g := domain.RawGame{
		ID: 7, Date: "2023-11-01",
		Home: domain.GameSide{Team: "SEA", Score: intPtr(1)},
		Away: domain.GameSide{Team: "VAN", Score: intPtr(5)},
	}

	first := Game(g)
	second := Game(g)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expansion not deterministic at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

package fixture

import (
	"context"
	"testing"
)

func TestFetchSeasonReturnsKnownSeasons(t *testing.T) {
	p := New()

	older, err := p.FetchSeason(context.Background(), "20222023")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(older) != 4 {
		t.Fatalf("expected 4 games, got %d", len(older))
	}

	newer, err := p.FetchSeason(context.Background(), "20232024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(newer) != 5 {
		t.Fatalf("expected 5 games, got %d", len(newer))
	}

	unplayed := 0
	for _, g := range newer {
		if !g.Played() {
			unplayed++
		}
	}
	if unplayed != 1 {
		t.Fatalf("expected exactly one unplayed game, got %d", unplayed)
	}
}

func TestFetchSeasonUnknownSeasonIsEmpty(t *testing.T) {
	p := New()

	games, err := p.FetchSeason(context.Background(), "19992000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 0 {
		t.Fatalf("expected no games, got %d", len(games))
	}
}

func TestFetchSeasonIsDeterministic(t *testing.T) {
	p := New()

	a, _ := p.FetchSeason(context.Background(), "20222023")
	b, _ := p.FetchSeason(context.Background(), "20222023")

	if len(a) != len(b) {
		t.Fatal("fixture must be deterministic")
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Date != b[i].Date {
			t.Fatalf("fixture changed between calls at %d", i)
		}
	}
}

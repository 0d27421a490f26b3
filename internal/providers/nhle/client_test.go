package nhle

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danicode12/stat139-nhl-project/internal/providers"
)

const (
	bosSchedule = `{"games":[
		{"id":1,"season":20232024,"gameType":2,"gameDate":"2023-10-10",
		 "homeTeam":{"abbrev":"BOS","score":4},"awayTeam":{"abbrev":"TOR","score":2}},
		{"id":3,"season":20232024,"gameType":1,"gameDate":"2023-09-30",
		 "homeTeam":{"abbrev":"BOS","score":5},"awayTeam":{"abbrev":"NYR","score":1}}
	]}`
	torSchedule = `{"games":[
		{"id":1,"season":20232024,"gameType":2,"gameDate":"2023-10-10",
		 "homeTeam":{"abbrev":"BOS","score":4},"awayTeam":{"abbrev":"TOR","score":2}},
		{"id":2,"season":20232024,"gameType":2,"gameDate":"2024-04-15",
		 "homeTeam":{"abbrev":"TOR","score":null},"awayTeam":{"abbrev":"MTL","score":null}}
	]}`
)

func newTestClient(t *testing.T, handler http.HandlerFunc, teams []string) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:   srv.URL,
		Teams:     teams,
		TeamDelay: -1,
	})
}

func TestFetchSeasonDeduplicatesAndFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/club-schedule-season/BOS/20232024":
			fmt.Fprint(w, bosSchedule)
		case "/club-schedule-season/TOR/20232024":
			fmt.Fprint(w, torSchedule)
		default:
			http.NotFound(w, r)
		}
	}, []string{"BOS", "TOR"})

	games, err := client.FetchSeason(context.Background(), "20232024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Game 1 appears on both schedules but must be returned once; the
	// preseason game (gameType 1) is dropped; the unplayed game survives
	// with nil scores.
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d: %+v", len(games), games)
	}
	if games[0].ID != 1 || games[1].ID != 2 {
		t.Fatalf("expected games sorted by id, got %+v", games)
	}
	if !games[0].Played() {
		t.Fatal("game 1 must be played")
	}
	if games[1].Played() {
		t.Fatal("game 2 must be unplayed")
	}
	if games[0].Season != "2023-24" {
		t.Fatalf("unexpected season tag %s", games[0].Season)
	}
}

func TestFetchSeasonSurfacesRateLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}, []string{"BOS"})

	_, err := client.FetchSeason(context.Background(), "20232024")
	if err == nil {
		t.Fatal("expected error")
	}
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rlErr.RetryAfter.Seconds() != 7 {
		t.Fatalf("expected Retry-After 7s, got %v", rlErr.RetryAfter)
	}
}

func TestFetchSeasonRejectsBadStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}, []string{"BOS"})

	if _, err := client.FetchSeason(context.Background(), "20232024"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestFetchSeasonValidatesSeasonToken(t *testing.T) {
	client := NewClient(Config{Teams: []string{"BOS"}})

	if _, err := client.FetchSeason(context.Background(), "2023-24"); err == nil {
		t.Fatal("expected error for malformed season")
	}
	if _, err := client.FetchSeason(context.Background(), "abcd1234"); err == nil {
		t.Fatal("expected error for non-numeric season")
	}
}

func TestFetchSeasonRequiresTeams(t *testing.T) {
	client := NewClient(Config{})

	if _, err := client.FetchSeason(context.Background(), "20232024"); err == nil {
		t.Fatal("expected error with no teams configured")
	}
}

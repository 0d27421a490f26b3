package features

import (
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// standings carries the running per-team counters for one sweep. It is
// owned exclusively by that sweep and discarded afterwards.
type standings struct {
	wins   map[string]int
	played map[string]int
}

func newStandings() *standings {
	return &standings{
		wins:   make(map[string]int),
		played: make(map[string]int),
	}
}

// winPct returns the team's running win percentage, or ok=false when the
// team has no completed games yet.
func (s *standings) winPct(team string) (float64, bool) {
	played := s.played[team]
	if played == 0 {
		return 0, false
	}
	return float64(s.wins[team]) / float64(played), true
}

// apply records one completed game. A zero goal diff is a data anomaly
// (completed NHL games always have a decisive winner); games-played still
// advances but neither wins counter moves, and the caller is told.
func (s *standings) apply(rec domain.TeamGameRecord) (anomalous bool) {
	switch {
	case rec.GoalDiff > 0:
		s.wins[rec.Team]++
	case rec.GoalDiff < 0:
		s.wins[rec.Opponent]++
	default:
		anomalous = true
	}
	s.played[rec.Team]++
	s.played[rec.Opponent]++
	return anomalous
}

// opponentWinPct fills OpponentWinPct via a single forward sweep ordered
// by (date, game id). Both records of a game read the counters as they
// stood before either update from that game (snapshot-before-game
// semantics); the per-game mutation is applied exactly once, after both
// reads. This deliberately avoids the alternative where the second
// record of a pair observes its sibling's update.
func (e *Engine) opponentWinPct(derived []domain.DerivedRecord, dates []time.Time) {
	order := byDateGameID(derived, dates)
	table := newStandings()
	anomalies := 0

	for i := 0; i < len(order); {
		first := order[i]
		pair := []int{first}
		if i+1 < len(order) && derived[order[i+1]].GameID == derived[first].GameID {
			pair = append(pair, order[i+1])
		}

		for _, idx := range pair {
			if pct, ok := table.winPct(derived[idx].Opponent); ok {
				v := pct
				derived[idx].OpponentWinPct = &v
			}
		}

		if table.apply(derived[first].TeamGameRecord) {
			anomalies++
			if e.logger != nil {
				e.logger.Warn("anomalous tie in completed game",
					"game_id", derived[first].GameID,
					"date", derived[first].Date,
				)
			}
			if e.metrics != nil {
				e.metrics.RecordAnomalousTie()
			}
		}

		i += len(pair)
	}

	if anomalies > 0 && e.logger != nil {
		e.logger.Warn("dataset contains tied completed games", "count", anomalies)
	}
}

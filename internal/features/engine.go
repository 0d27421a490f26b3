// Package features computes the three derived per-team-game features:
// rest days, travel distance, and opponent win percentage. Every pass is
// time-causal: a record's value depends only on strictly earlier games.
package features

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/arenas"
	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
	"github.com/danicode12/stat139-nhl-project/internal/timeutil"
)

// Engine runs the derivation passes over an in-memory record set.
type Engine struct {
	arenas  *arenas.Directory
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs an Engine. Logger and recorder may be nil.
func New(dir *arenas.Directory, logger *slog.Logger, recorder *metrics.Recorder) *Engine {
	return &Engine{
		arenas:  dir,
		logger:  logger,
		metrics: recorder,
	}
}

// Derive computes all three features for the given records. The returned
// slice preserves the input order; callers sort for output separately.
// The passes are strictly sequential: Pass C's counters depend on the
// cumulative effect of all earlier games.
func (e *Engine) Derive(records []domain.TeamGameRecord) ([]domain.DerivedRecord, error) {
	derived := make([]domain.DerivedRecord, len(records))
	dates := make([]time.Time, len(records))
	for i, rec := range records {
		parsed, err := timeutil.ParseDate(rec.Date)
		if err != nil {
			return nil, fmt.Errorf("features: record %d (game %d): %w", i, rec.GameID, err)
		}
		derived[i] = domain.DerivedRecord{TeamGameRecord: rec}
		dates[i] = parsed
	}

	e.restDays(derived, dates)
	e.travelDistance(derived, dates)
	e.opponentWinPct(derived, dates)

	return derived, nil
}

// byTeamDate returns record indices partitioned by team, each partition
// sorted by (date, game id) ascending. The game-id tie-break keeps
// same-date double-headers in a stable order.
func byTeamDate(derived []domain.DerivedRecord, dates []time.Time) map[string][]int {
	partitions := make(map[string][]int)
	for i, rec := range derived {
		partitions[rec.Team] = append(partitions[rec.Team], i)
	}
	for _, idx := range partitions {
		sort.Slice(idx, func(a, b int) bool {
			if !dates[idx[a]].Equal(dates[idx[b]]) {
				return dates[idx[a]].Before(dates[idx[b]])
			}
			return derived[idx[a]].GameID < derived[idx[b]].GameID
		})
	}
	return partitions
}

// byDateGameID returns all record indices sorted by (date, game id).
// Records of the same game are adjacent in this order.
func byDateGameID(derived []domain.DerivedRecord, dates []time.Time) []int {
	idx := make([]int, len(derived))
	for i := range derived {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if !dates[idx[a]].Equal(dates[idx[b]]) {
			return dates[idx[a]].Before(dates[idx[b]])
		}
		if derived[idx[a]].GameID != derived[idx[b]].GameID {
			return derived[idx[a]].GameID < derived[idx[b]].GameID
		}
		// Home perspective first, matching expansion order.
		return derived[idx[a]].IsHome && !derived[idx[b]].IsHome
	})
	return idx
}

// Package dataset assembles per-season record sets into the final
// derived table with deterministic ordering and a fixed column set.
package dataset

import (
	"errors"
	"sort"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/features"
)

// ErrNoRecords reports that assembly was asked to run over an input with
// no completed games. Callers get an explicit empty-result condition
// instead of a partial table.
var ErrNoRecords = errors.New("dataset: no completed game records")

// Assembler merges multi-season record sets and runs the feature engine
// over the combined collection.
type Assembler struct {
	engine *features.Engine
}

// New constructs an Assembler around a feature engine.
func New(engine *features.Engine) *Assembler {
	return &Assembler{engine: engine}
}

// Assemble concatenates the per-season record sets, derives features
// over the full collection, and returns the table sorted by
// (season, date, team). Rest and travel features intentionally span
// season boundaries, matching the running-state semantics of the passes.
func (a *Assembler) Assemble(seasonRecords ...[]domain.TeamGameRecord) ([]domain.DerivedRecord, error) {
	total := 0
	for _, records := range seasonRecords {
		total += len(records)
	}
	if total == 0 {
		return nil, ErrNoRecords
	}

	merged := make([]domain.TeamGameRecord, 0, total)
	for _, records := range seasonRecords {
		merged = append(merged, records...)
	}

	derived, err := a.engine.Derive(merged)
	if err != nil {
		return nil, err
	}

	Sort(derived)
	return derived, nil
}

// Sort orders records by (season, date, team) ascending, with game id as
// a final tie-break so output is byte-stable run to run.
func Sort(records []domain.DerivedRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Season != b.Season {
			return a.Season < b.Season
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		return a.GameID < b.GameID
	})
}

// Seasons lists the distinct season tags present, sorted ascending.
func Seasons(records []domain.DerivedRecord) []string {
	seen := make(map[string]struct{})
	var seasons []string
	for _, r := range records {
		if _, ok := seen[r.Season]; ok {
			continue
		}
		seen[r.Season] = struct{}{}
		seasons = append(seasons, r.Season)
	}
	sort.Strings(seasons)
	return seasons
}

// FilterSeason returns the records tagged with the given season.
func FilterSeason(records []domain.DerivedRecord, season string) []domain.DerivedRecord {
	var out []domain.DerivedRecord
	for _, r := range records {
		if r.Season == season {
			out = append(out, r)
		}
	}
	return out
}

// FilterTeam returns the records where the given team is the subject.
func FilterTeam(records []domain.DerivedRecord, team string) []domain.DerivedRecord {
	var out []domain.DerivedRecord
	for _, r := range records {
		if r.Team == team {
			out = append(out, r)
		}
	}
	return out
}

package arenas

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/danicode12/stat139-nhl-project/internal/geo"
)

// Entry describes one team's home arena.
type Entry struct {
	Name        string          `json:"name" yaml:"name"`
	Arena       string          `json:"arena" yaml:"arena"`
	Coordinates geo.Coordinates `json:"coordinates" yaml:",inline"`
}

// Directory is a static lookup from team identifier to home arena.
// It is built once at startup and never mutated afterwards.
type Directory struct {
	entries map[string]Entry
}

// NewDirectory returns a Directory backed by the built-in NHL table.
func NewDirectory() *Directory {
	return &Directory{entries: defaultEntries}
}

// NewDirectoryFromEntries builds a Directory from an explicit table,
// primarily for tests and alternate leagues.
func NewDirectoryFromEntries(entries map[string]Entry) *Directory {
	copied := make(map[string]Entry, len(entries))
	for team, e := range entries {
		copied[team] = e
	}
	return &Directory{entries: copied}
}

// LoadDirectory reads a YAML arena table from path. An empty path falls
// back to the built-in table.
func LoadDirectory(path string) (*Directory, error) {
	if path == "" {
		return NewDirectory(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arenas: read %s: %w", path, err)
	}
	var entries map[string]Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("arenas: parse %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("arenas: %s contains no entries", path)
	}
	return NewDirectoryFromEntries(entries), nil
}

// LocationOf returns the home coordinates for a team. Unknown teams
// return ok=false rather than an error so callers can treat
// "unknown team" like "no prior game".
func (d *Directory) LocationOf(team string) (geo.Coordinates, bool) {
	if d == nil {
		return geo.Coordinates{}, false
	}
	e, ok := d.entries[team]
	return e.Coordinates, ok
}

// Entry returns the full arena entry for a team.
func (d *Directory) Entry(team string) (Entry, bool) {
	if d == nil {
		return Entry{}, false
	}
	e, ok := d.entries[team]
	return e, ok
}

// Teams lists the known team identifiers in sorted order.
func (d *Directory) Teams() []string {
	if d == nil {
		return nil
	}
	teams := make([]string, 0, len(d.entries))
	for team := range d.entries {
		teams = append(teams, team)
	}
	sort.Strings(teams)
	return teams
}

// Len reports the number of known teams.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

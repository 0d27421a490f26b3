package snapshots

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/dataset"
	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// SeasonSnapshot is the payload persisted per season.
type SeasonSnapshot struct {
	Season  string                 `json:"season"`
	Count   int                    `json:"count"`
	Records []domain.DerivedRecord `json:"records"`
}

// Writer persists season snapshots and the CSV export, maintaining a
// manifest and pruning seasons beyond the retention window.
type Writer struct {
	basePath      string
	retainSeasons int
}

// NewWriter constructs a writer rooted at basePath keeping the most
// recent retainSeasons seasons.
func NewWriter(basePath string, retainSeasons int) *Writer {
	if retainSeasons <= 0 {
		retainSeasons = 10
	}
	return &Writer{
		basePath:      basePath,
		retainSeasons: retainSeasons,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteSeasonSnapshot writes the snapshot for one season and prunes
// seasons that fell out of the retention window. Records are stored in
// the dataset's canonical order.
func (w *Writer) WriteSeasonSnapshot(season string, records []domain.DerivedRecord) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	if season == "" {
		return fmt.Errorf("season required")
	}

	sorted := make([]domain.DerivedRecord, len(records))
	copy(sorted, records)
	dataset.Sort(sorted)

	payload := SeasonSnapshot{
		Season:  season,
		Count:   len(sorted),
		Records: sorted,
	}

	target := SeasonSnapshotPath(w.basePath, season)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(season)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(season)
}

// WriteDatasetCSV writes the flat CSV export of the full dataset.
func (w *Writer) WriteDatasetCSV(records []domain.DerivedRecord) error {
	if w == nil {
		return fmt.Errorf("snapshot writer not configured")
	}
	target := DatasetCSVPath(w.basePath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, records); err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, buf.Bytes()) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func (w *Writer) updateManifest(season string) error {
	m, _ := readManifest(manifestPath(w.basePath), w.retainSeasons)
	now := time.Now().UTC()

	tags, err := w.listSeasons()
	if err != nil {
		return err
	}
	if !containsSeason(tags, season) {
		tags = append(tags, season)
		sort.Strings(tags)
	}
	kept, err := w.pruneOldSeasons(tags)
	if err != nil {
		return err
	}

	m.Seasons.Tags = kept
	m.Seasons.LastRefreshed = now
	m.Retention.Seasons = w.retainSeasons

	return writeManifest(w.basePath, m)
}

func containsSeason(tags []string, season string) bool {
	for _, t := range tags {
		if t == season {
			return true
		}
	}
	return false
}

func (w *Writer) listSeasons() ([]string, error) {
	dir := filepath.Join(w.basePath, "seasons")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var tags []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		tags = append(tags, name[:len(name)-len(".json")])
	}
	sort.Strings(tags)
	return tags, nil
}

// pruneOldSeasons keeps the lexically newest retainSeasons tags. Season
// tags sort chronologically ("2022-23" < "2023-24"), so the oldest ones
// fall off first.
func (w *Writer) pruneOldSeasons(tags []string) ([]string, error) {
	sort.Strings(tags)
	if len(tags) <= w.retainSeasons {
		return tags, nil
	}
	drop := tags[:len(tags)-w.retainSeasons]
	for _, t := range drop {
		_ = os.Remove(SeasonSnapshotPath(w.basePath, t))
	}
	return tags[len(tags)-w.retainSeasons:], nil
}

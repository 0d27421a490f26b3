package snapshots

import (
	"fmt"
	"path/filepath"
)

// SeasonSnapshotPath builds the path to a season snapshot for a given tag.
func SeasonSnapshotPath(basePath, season string) string {
	return filepath.Join(basePath, "seasons", fmt.Sprintf("%s.json", season))
}

// DatasetCSVPath builds the path to the flat CSV export of the full dataset.
func DatasetCSVPath(basePath string) string {
	return filepath.Join(basePath, "dataset.csv")
}

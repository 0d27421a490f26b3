package snapshots

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int        `json:"version"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Retention   Retention  `json:"retention"`
	Seasons     SeasonMeta `json:"seasons"`
}

type Retention struct {
	Seasons int `json:"seasons"`
}

type SeasonMeta struct {
	Tags          []string  `json:"tags"`
	LastRefreshed time.Time `json:"lastRefreshed"`
}

func manifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}

func defaultManifest(retainSeasons int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			Seasons: retainSeasons,
		},
		Seasons: SeasonMeta{
			Tags:          []string{},
			LastRefreshed: time.Time{},
		},
	}
}

func readManifest(path string, retainSeasons int) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(retainSeasons), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(retainSeasons), err
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	path := filepath.Join(basePath, "manifest.json")
	tmp := path + ".tmp"
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

package snapshots

import (
	"encoding/json"
	"errors"
	"os"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadSeason(season string) (SeasonSnapshot, error)
	ListSeasons() ([]string, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadSeason reads the snapshot for one season from disk. Files live at
// {basePath}/seasons/{season}.json with a SeasonSnapshot payload.
func (s *FSStore) LoadSeason(season string) (SeasonSnapshot, error) {
	if s == nil {
		return SeasonSnapshot{}, errors.New("snapshot store not configured")
	}
	if season == "" {
		return SeasonSnapshot{}, errors.New("snapshot season required")
	}

	f, err := os.Open(SeasonSnapshotPath(s.basePath, season))
	if err != nil {
		return SeasonSnapshot{}, err
	}
	defer f.Close()

	var payload SeasonSnapshot
	if err := json.NewDecoder(f).Decode(&payload); err != nil {
		return SeasonSnapshot{}, err
	}
	if payload.Season == "" {
		payload.Season = season
	}
	return payload, nil
}

// ListSeasons returns the season tags recorded in the manifest, falling
// back to an empty list when no manifest exists yet.
func (s *FSStore) ListSeasons() ([]string, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	m, err := readManifest(manifestPath(s.basePath), 0)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	return m.Seasons.Tags, nil
}

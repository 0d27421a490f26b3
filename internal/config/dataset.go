package config

const (
	envStoreBackend    = "STORE_BACKEND"
	envSQLitePath      = "SQLITE_PATH"
	envArenaFile       = "ARENA_FILE"
	envSnapshotsOn     = "SNAPSHOTS_ENABLED"
	envSnapshotFolder  = "SNAPSHOT_FOLDER"
	envSnapshotSeasons = "SNAPSHOT_RETAIN_SEASONS"

	defaultStoreBackend   = "memory"
	defaultSQLitePath     = "data/dataset.db"
	defaultSnapshotFolder = "data/snapshots"
	defaultRetainSeasons  = 10
)

// DatasetConfig controls where the derived dataset lives and how season
// snapshots are persisted.
type DatasetConfig struct {
	StoreBackend   string // "memory" or "sqlite"
	SQLitePath     string
	ArenaFile      string // optional YAML override for the arena directory
	Snapshots      bool
	SnapshotFolder string
	RetainSeasons  int
	AdminToken     string
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		StoreBackend:   envOrDefault(envStoreBackend, defaultStoreBackend),
		SQLitePath:     envOrDefault(envSQLitePath, defaultSQLitePath),
		ArenaFile:      envOrDefault(envArenaFile, ""),
		Snapshots:      boolEnvOrDefault(envSnapshotsOn, true),
		SnapshotFolder: envOrDefault(envSnapshotFolder, defaultSnapshotFolder),
		RetainSeasons:  intEnvOrDefault(envSnapshotSeasons, defaultRetainSeasons),
		AdminToken:     envOrDefault(envAdminToken, ""),
	}
}

package server

import (
	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Dataset.Snapshots {
		return snapshotComponents{}
	}
	basePath := cfg.Dataset.SnapshotFolder
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Dataset.RetainSeasons),
	}
}

package server

import (
	"log/slog"

	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/store"
)

// buildStore selects the dataset store backend. The closer is non-nil
// only for backends holding external resources.
func buildStore(cfg config.Config, logger *slog.Logger) (store.DatasetStore, func() error) {
	if cfg.Dataset.StoreBackend == "sqlite" {
		s, err := store.NewSQLiteStore(cfg.Dataset.SQLitePath)
		if err == nil {
			return s, s.Close
		}
		if logger != nil {
			logger.Warn("sqlite store unavailable, falling back to memory",
				slog.String("path", cfg.Dataset.SQLitePath),
				"error", err,
			)
		}
	}
	return store.NewMemoryStore(), nil
}

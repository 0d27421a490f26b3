package server

import (
	"log/slog"

	"github.com/danicode12/stat139-nhl-project/internal/arenas"
	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/providers"
	"github.com/danicode12/stat139-nhl-project/internal/providers/fixture"
	"github.com/danicode12/stat139-nhl-project/internal/providers/nhle"
)

func selectProvider(cfg config.Config, dir *arenas.Directory, logger *slog.Logger) providers.ScheduleProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "nhle":
		teams := cfg.NHLe.Teams
		if len(teams) == 0 && dir != nil {
			teams = dir.Teams()
		}
		return nhle.NewClient(nhle.Config{
			BaseURL:   cfg.NHLe.BaseURL,
			Teams:     teams,
			TeamDelay: cfg.NHLe.TeamDelay,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

package server

import (
	"log/slog"

	"github.com/danicode12/stat139-nhl-project/internal/arenas"
	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
	"github.com/danicode12/stat139-nhl-project/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	arenas  *arenas.Directory
}

func newProviderFactory(logger *slog.Logger, recorder *metrics.Recorder, dir *arenas.Directory) providerFactory {
	return providerFactory{logger: logger, metrics: recorder, arenas: dir}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	base := selectProvider(cfg, f.arenas, f.logger)
	// A season backfill is one request per team, so fetches are spaced
	// out to stay friendly to the upstream API.
	limited := providers.NewRateLimitedProvider(base, cfg.FetchSpacing, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.RetryAttempts, cfg.RetryInterval)
}

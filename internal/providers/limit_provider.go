package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// rateLimitedProvider wraps a ScheduleProvider and enforces a minimum
// interval between season fetches. Season backfills hammer the upstream
// API with one request per team, so calls block until the interval elapses.
type rateLimitedProvider struct {
	next     ScheduleProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that limits calls to the given interval.
func NewRateLimitedProvider(next ScheduleProvider, interval time.Duration, logger *slog.Logger) ScheduleProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "fetch canceled", slog.String("season", season))
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, "rate-limited", "season fetch", slog.String("season", season))
	return p.next.FetchSeason(ctx, season)
}

// Close stops the interval ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

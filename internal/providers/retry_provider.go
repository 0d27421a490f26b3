package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultRetryInterval = 200 * time.Millisecond
)

// retryingProvider wraps a ScheduleProvider with exponential backoff retries.
type retryingProvider struct {
	inner           ScheduleProvider
	logger          *slog.Logger
	metrics         *metrics.Recorder
	name            string
	maxAttempts     int
	initialInterval time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts
// or interval are <= 0, defaults are used.
func NewRetryingProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) ScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:           inner,
		logger:          logger,
		metrics:         recorder,
		name:            name,
		maxAttempts:     maxAttempts,
		initialInterval: interval,
	}
}

func (r *retryingProvider) FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initialInterval
	wrapped := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	operation := func() ([]domain.RawGame, error) {
		attempt++
		start := time.Now()
		games, err := r.inner.FetchSeason(ctx, season)
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err == nil {
			return games, nil
		}
		if rlErr, ok := AsRateLimitError(err); ok && r.metrics != nil {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
		}
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}

	notify := func(err error, delay time.Duration) {
		r.logWarn(ctx, "provider fetch retry",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay.String(),
			"err", err,
		)
	}

	games, err := backoff.RetryNotifyWithData(operation, wrapped, notify)
	if err != nil {
		r.logWarn(ctx, "provider fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return games, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, append(args, slog.String("provider", r.name))...)
	}
}

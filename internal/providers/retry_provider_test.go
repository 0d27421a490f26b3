package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
)

type flakeyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyProvider) FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error) {
	_ = ctx
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return nil, f.err
		}
		return nil, errors.New("transient failure")
	}
	return []domain.RawGame{{ID: 1, Date: "2023-10-10", Season: "2023-24"}}, nil
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	inner := &flakeyProvider{failures: 2}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, nil, recorder, "test", 3, time.Millisecond)

	games, err := provider.FetchSeason(context.Background(), "20232024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
	if got := recorder.ProviderCalls("test"); got != 3 {
		t.Fatalf("expected 3 recorded attempts, got %d", got)
	}
	if got := recorder.ProviderErrors("test"); got != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", got)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	inner := &flakeyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, nil, "test", 2, time.Millisecond)

	if _, err := provider.FetchSeason(context.Background(), "20232024"); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if inner.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderRecordsRateLimits(t *testing.T) {
	inner := &flakeyProvider{
		failures: 1,
		err:      &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: 3 * time.Second},
	}
	recorder := metrics.NewRecorder()
	provider := NewRetryingProvider(inner, nil, recorder, "test", 3, time.Millisecond)

	if _, err := provider.FetchSeason(context.Background(), "20232024"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := recorder.RateLimitHits("test"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inner := &flakeyProvider{failures: 10}
	provider := NewRetryingProvider(inner, nil, nil, "test", 5, time.Millisecond)

	_, err := provider.FetchSeason(ctx, "20232024")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt under a canceled context, got %d", inner.calls)
	}
}

func TestRetryingProviderNilInner(t *testing.T) {
	provider := NewRetryingProvider(nil, nil, nil, "test", 1, time.Millisecond)

	if _, err := provider.FetchSeason(context.Background(), "20232024"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

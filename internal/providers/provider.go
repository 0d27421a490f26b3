package providers

import (
	"context"
	"errors"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// ErrProviderUnavailable reports that a provider is missing or misconfigured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ScheduleProvider defines how upstream schedule data is fetched and
// normalized. Season is the upstream token (e.g. "20232024"); providers
// return every game they know for that season, completed or not;
// filtering to completed regular-season games happens downstream.
type ScheduleProvider interface {
	FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error)
}

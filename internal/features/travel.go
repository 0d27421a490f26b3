package features

import (
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/geo"
)

// travelDistance fills TravelDistance: the great-circle miles between a
// team's previous game site and the current one. Travel is measured
// between consecutive game sites, not round-trips through the team's
// home arena. Nil when the team has no prior game or either site is
// missing from the arena directory.
func (e *Engine) travelDistance(derived []domain.DerivedRecord, dates []time.Time) {
	for _, idx := range byTeamDate(derived, dates) {
		for pos := 1; pos < len(idx); pos++ {
			prev, prevOK := e.arenas.LocationOf(derived[idx[pos-1]].GameLocation)
			curr, currOK := e.arenas.LocationOf(derived[idx[pos]].GameLocation)
			if !prevOK || !currOK {
				continue
			}
			miles := geo.Distance(prev, curr)
			derived[idx[pos]].TravelDistance = &miles
		}
	}
}

package features

import (
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/timeutil"
)

// restDays fills RestDays: the whole-day gap since the team's previous
// game. The first record of each team stays nil; a same-date
// double-header yields 0.
func (e *Engine) restDays(derived []domain.DerivedRecord, dates []time.Time) {
	for _, idx := range byTeamDate(derived, dates) {
		for pos := 1; pos < len(idx); pos++ {
			days := timeutil.DaysBetween(dates[idx[pos-1]], dates[idx[pos]])
			derived[idx[pos]].RestDays = &days
		}
	}
}

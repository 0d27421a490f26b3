// Package store holds the derived dataset between pipeline runs and
// serves reads for the HTTP layer.
package store

import (
	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// DatasetStore provides access to the most recent derived dataset.
type DatasetStore interface {
	// SetRecords replaces the stored dataset with a new build.
	SetRecords(records []domain.DerivedRecord) error
	// ListRecords returns the stored dataset in build order.
	ListRecords() ([]domain.DerivedRecord, error)
}

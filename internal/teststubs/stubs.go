package teststubs

import (
	"context"
	"sync/atomic"

	"github.com/danicode12/stat139-nhl-project/internal/domain"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	// Seasons maps a season token to the games it returns; when nil,
	// Games is returned for any season.
	Seasons map[string][]domain.RawGame
	Games   []domain.RawGame
	Err     error
	Calls   atomic.Int32
	Notify  chan struct{}
}

// FetchSeason returns configured games and error while tracking calls.
func (s *StubProvider) FetchSeason(ctx context.Context, season string) ([]domain.RawGame, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Seasons != nil {
		return s.Seasons[season], nil
	}
	return s.Games, nil
}

// StubDatasetStore is a test double for store.DatasetStore.
type StubDatasetStore struct {
	Records []domain.DerivedRecord
	Err     error
	Sets    atomic.Int32
}

// ListRecords returns the configured records.
func (s *StubDatasetStore) ListRecords() ([]domain.DerivedRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// SetRecords replaces the configured records.
func (s *StubDatasetStore) SetRecords(records []domain.DerivedRecord) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sets.Add(1)
	s.Records = records
	return nil
}

// StubSnapshotWriter is a test double for pipeline.SnapshotWriter.
type StubSnapshotWriter struct {
	Written map[string][]domain.DerivedRecord // keyed by season
	CSV     []domain.DerivedRecord
	Err     error
}

// WriteSeasonSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteSeasonSnapshot(season string, records []domain.DerivedRecord) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string][]domain.DerivedRecord)
	}
	w.Written[season] = records
	return nil
}

// WriteDatasetCSV records the exported dataset for verification in tests.
func (w *StubSnapshotWriter) WriteDatasetCSV(records []domain.DerivedRecord) error {
	if w.Err != nil {
		return w.Err
	}
	w.CSV = records
	return nil
}

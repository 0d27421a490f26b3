// Package pipeline drives the periodic build of the derived dataset:
// fetch schedules, expand games into team records, derive features, and
// publish the result to the store and snapshot writer.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/dataset"
	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/expand"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
	"github.com/danicode12/stat139-nhl-project/internal/providers"
	"github.com/danicode12/stat139-nhl-project/internal/store"
)

const defaultInterval = 6 * time.Hour

// SnapshotWriter persists season snapshots and the CSV export.
type SnapshotWriter interface {
	WriteSeasonSnapshot(season string, records []domain.DerivedRecord) error
	WriteDatasetCSV(records []domain.DerivedRecord) error
}

// Runner rebuilds the dataset on an interval and publishes each build to
// the store and snapshot writer.
type Runner struct {
	provider  providers.ScheduleProvider
	assembler *dataset.Assembler
	store     store.DatasetStore
	writer    SnapshotWriter
	logger    *slog.Logger
	metrics   *metrics.Recorder
	seasons   []string
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the build loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastRecordCount     int
}

// IsReady reports whether the runner has a recent successful build and
// is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(provider providers.ScheduleProvider, assembler *dataset.Assembler, datasetStore store.DatasetStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, seasons []string, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		provider:  provider,
		assembler: assembler,
		store:     datasetStore,
		writer:    writer,
		logger:    logger,
		metrics:   recorder,
		seasons:   seasons,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start begins the build loop until the context is cancelled or Stop is
// called. The first build runs immediately to warm data on boot.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		r.logInfo("pipeline started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		r.buildOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				r.logInfo("pipeline stopped")
				return
			case <-r.done:
				r.stopTicker()
				r.logInfo("pipeline stopped")
				return
			case <-r.ticker.C:
				r.buildOnce(ctx)
			}
		}
	}()
}

// Stop halts the build loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RunOnce performs a single fetch-and-build cycle. It backs the admin
// rebuild endpoint and one-shot invocations.
func (r *Runner) RunOnce(ctx context.Context) error {
	start := time.Now()
	r.recordAttempt(start)

	derived, err := r.build(ctx)
	if r.metrics != nil {
		r.metrics.RecordPipelineCycle(time.Since(start), err)
	}
	if err != nil {
		r.recordFailure(err, start)
		return err
	}

	r.recordSuccess(start, len(derived))
	r.logInfo("pipeline built dataset",
		logging.FieldCount, len(derived),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (r *Runner) buildOnce(ctx context.Context) {
	if err := r.RunOnce(ctx); err != nil {
		r.logError("pipeline build failed", err)
	}
}

func (r *Runner) build(ctx context.Context) ([]domain.DerivedRecord, error) {
	if r.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}

	seasonRecords := make([][]domain.TeamGameRecord, 0, len(r.seasons))
	for _, season := range r.seasons {
		games, err := r.provider.FetchSeason(ctx, season)
		if err != nil {
			return nil, fmt.Errorf("fetching season %s: %w", season, err)
		}
		records := expand.Games(games)
		r.logInfo("season fetched",
			logging.FieldSeason, season,
			logging.FieldCount, len(records),
		)
		seasonRecords = append(seasonRecords, records)
	}

	derived, err := r.assembler.Assemble(seasonRecords...)
	if err != nil {
		return nil, err
	}

	if r.metrics != nil {
		r.metrics.RecordDatasetBuilt(len(derived))
	}
	if r.store != nil {
		if err := r.store.SetRecords(derived); err != nil {
			return nil, fmt.Errorf("storing dataset: %w", err)
		}
	}
	if r.writer != nil {
		for _, tag := range dataset.Seasons(derived) {
			if err := r.writer.WriteSeasonSnapshot(tag, dataset.FilterSeason(derived, tag)); err != nil {
				r.logError("season snapshot write failed", err, logging.FieldSeason, tag)
			}
		}
		if err := r.writer.WriteDatasetCSV(derived); err != nil {
			r.logError("dataset csv write failed", err)
		}
	}
	return derived, nil
}

func (r *Runner) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Runner) logInfo(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Info(msg, args...)
	}
}

func (r *Runner) logError(msg string, err error, attrs ...any) {
	if r.logger != nil {
		r.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) recordSuccess(at time.Time, records int) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
	r.status.LastRecordCount = records
}

func (r *Runner) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (r *Runner) Provider() providers.ScheduleProvider {
	return r.provider
}

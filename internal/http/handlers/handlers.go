// Package handlers wires HTTP routes to the dataset store and snapshot
// layer.
package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/danicode12/stat139-nhl-project/internal/dataset"
	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
	"github.com/danicode12/stat139-nhl-project/internal/pipeline"
	"github.com/danicode12/stat139-nhl-project/internal/snapshots"
	"github.com/danicode12/stat139-nhl-project/internal/store"
)

var seasonTagPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// Handler serves the derived dataset.
type Handler struct {
	store    store.DatasetStore
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() pipeline.Status
}

// NewHandler constructs a Handler.
func NewHandler(datasetStore store.DatasetStore, snaps snapshots.Store, logger *slog.Logger, statusFn func() pipeline.Status) *Handler {
	return &Handler{
		store:    datasetStore,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Status reports the recent health of the build loop.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeError(w, r, http.StatusServiceUnavailable, "pipeline not configured", h.logger)
		return
	}
	status := h.statusFn()
	writeJSON(w, http.StatusOK, map[string]any{
		"ready":               status.IsReady(),
		"consecutiveFailures": status.ConsecutiveFailures,
		"lastError":           status.LastError,
		"lastAttempt":         status.LastAttempt,
		"lastSuccess":         status.LastSuccess,
		"records":             status.LastRecordCount,
	}, h.logger)
}

// Dataset returns the derived dataset, optionally filtered by season and
// team. format=csv switches to the flat CSV rendering.
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	records, err := h.store.ListRecords()
	if err != nil {
		logging.Error(logger, "dataset read failed", err)
		writeError(w, r, http.StatusInternalServerError, "dataset unavailable", h.logger)
		return
	}

	if season := strings.TrimSpace(r.URL.Query().Get("season")); season != "" {
		if !seasonTagPattern.MatchString(season) {
			writeError(w, r, http.StatusBadRequest, "invalid season format (expected YYYY-YY)", h.logger)
			return
		}
		records = dataset.FilterSeason(records, season)
	}
	if team := strings.TrimSpace(r.URL.Query().Get("team")); team != "" {
		records = dataset.FilterTeam(records, strings.ToUpper(team))
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if err := dataset.WriteCSV(w, records); err != nil {
			logging.Error(logger, "csv encode failed", err)
		}
		return
	}

	logging.Info(logger, "served dataset", logging.FieldCount, len(records))
	writeJSON(w, http.StatusOK, domain.NewDatasetResponse(dataset.Seasons(records), records), h.logger)
}

// DatasetBySeason returns one season of the dataset, falling back to the
// on-disk snapshot when the store has nothing for it.
func (h *Handler) DatasetBySeason(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	season := strings.TrimPrefix(r.URL.Path, "/dataset/")
	if season == "" || !seasonTagPattern.MatchString(season) {
		writeError(w, r, http.StatusBadRequest, "invalid season format (expected YYYY-YY)", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	records, err := h.store.ListRecords()
	if err == nil {
		if filtered := dataset.FilterSeason(records, season); len(filtered) > 0 {
			logging.Info(logger, "served season dataset",
				logging.FieldSeason, season,
				logging.FieldCount, len(filtered),
			)
			writeJSON(w, http.StatusOK, domain.NewDatasetResponse([]string{season}, filtered), h.logger)
			return
		}
	}

	if h.snaps != nil {
		if snap, snapErr := h.snaps.LoadSeason(season); snapErr == nil {
			logging.Info(logger, "served season snapshot",
				logging.FieldSeason, season,
				logging.FieldCount, snap.Count,
			)
			writeJSON(w, http.StatusOK, domain.NewDatasetResponse([]string{season}, snap.Records), h.logger)
			return
		}
	}

	writeError(w, r, http.StatusNotFound, "season not found", h.logger)
}

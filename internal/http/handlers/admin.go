package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danicode12/stat139-nhl-project/internal/http/requestutil"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
)

// Rebuilder triggers a single dataset build cycle.
type Rebuilder interface {
	RunOnce(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	rebuilder Rebuilder
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(rebuilder Rebuilder, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		rebuilder: rebuilder,
		token:     token,
		logger:    logger,
	}
}

// Rebuild triggers a synchronous dataset rebuild. Guarded by ADMIN_TOKEN;
// returns 401 if missing/invalid.
func (h *AdminHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.rebuilder == nil {
		writeError(w, r, http.StatusServiceUnavailable, "pipeline not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.rebuilder.RunOnce(r.Context()); err != nil {
		logging.Warn(logger, "admin rebuild failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "rebuild failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
	logging.Info(logger, "admin rebuild complete")
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}

// Package http assembles the service's route table.
package http

import (
	nethttp "net/http"

	"github.com/danicode12/stat139-nhl-project/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/status", handler.Status)
	mux.HandleFunc("/dataset", handler.Dataset)
	mux.HandleFunc("/dataset/", handler.DatasetBySeason)
	if admin != nil {
		mux.HandleFunc("/admin/rebuild", admin.Rebuild)
	}
	return mux
}

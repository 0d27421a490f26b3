package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/danicode12/stat139-nhl-project/internal/http/handlers"
	"github.com/danicode12/stat139-nhl-project/internal/teststubs"
)

func TestRouterRoutes(t *testing.T) {
	handler := handlers.NewHandler(&teststubs.StubDatasetStore{}, nil, nil, nil)
	router := NewRouter(handler, nil)

	cases := []struct {
		path   string
		status int
	}{
		{"/health", nethttp.StatusOK},
		{"/ready", nethttp.StatusOK},
		{"/dataset", nethttp.StatusOK},
		{"/dataset/2022-23", nethttp.StatusNotFound},
		{"/nope", nethttp.StatusNotFound},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, tc.path, nil))
		if rec.Code != tc.status {
			t.Fatalf("GET %s: expected %d, got %d", tc.path, tc.status, rec.Code)
		}
	}
}

func TestRouterAdminRouteRegisteredWhenConfigured(t *testing.T) {
	handler := handlers.NewHandler(&teststubs.StubDatasetStore{}, nil, nil, nil)
	admin := handlers.NewAdminHandler(nil, "secret", nil)
	router := NewRouter(handler, admin)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/admin/rebuild", nil))

	if rec.Code != nethttp.StatusUnauthorized {
		t.Fatalf("expected 401 from admin route, got %d", rec.Code)
	}
}

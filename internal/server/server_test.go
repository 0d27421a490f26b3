package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/domain"
	"github.com/danicode12/stat139-nhl-project/internal/pipeline"
	"github.com/danicode12/stat139-nhl-project/internal/providers/fixture"
	"github.com/danicode12/stat139-nhl-project/internal/providers/nhle"
	"github.com/danicode12/stat139-nhl-project/internal/store"
)

func testConfig() config.Config {
	return config.Config{
		Port:     "0",
		Provider: "fixture",
		Seasons:  []string{"20222023", "20232024"},
		Metrics:  config.MetricsConfig{Enabled: false},
		Dataset:  config.DatasetConfig{StoreBackend: "memory", Snapshots: false},
	}
}

type stubPipeline struct {
	startCalls int
	stopCalls  int
	runCalls   int
	err        error
	status     pipeline.Status
}

func (p *stubPipeline) Start(ctx context.Context) {
	_ = ctx
	p.startCalls++
}

func (p *stubPipeline) Stop(ctx context.Context) error {
	_ = ctx
	p.stopCalls++
	return p.err
}

func (p *stubPipeline) RunOnce(ctx context.Context) error {
	_ = ctx
	p.runCalls++
	return p.err
}

func (p *stubPipeline) Status() pipeline.Status {
	return p.status
}

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

func TestServerServesHealthAndDataset(t *testing.T) {
	srv := newServerWithProvider(testConfig(), nil, fixture.New())

	if err := srv.pipeline.RunOnce(context.Background()); err != nil {
		t.Fatalf("build failed: %v", err)
	}

	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	dataRec := httptest.NewRecorder()
	router.ServeHTTP(dataRec, httptest.NewRequest(http.MethodGet, "/dataset", nil))
	if dataRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /dataset, got %d", dataRec.Code)
	}

	var payload domain.DatasetResponse
	if err := json.NewDecoder(dataRec.Body).Decode(&payload); err != nil {
		t.Fatalf("failed to decode dataset response: %v", err)
	}
	// Fixture carries 8 completed games across two seasons, two records each.
	if payload.Count != 16 {
		t.Fatalf("expected 16 records, got %d", payload.Count)
	}
	if len(payload.Seasons) != 2 {
		t.Fatalf("expected 2 seasons, got %v", payload.Seasons)
	}

	readyRec := httptest.NewRecorder()
	router.ServeHTTP(readyRec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if readyRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /ready after build, got %d", readyRec.Code)
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil, nil)
	if provider == nil {
		t.Fatal("expected provider fallback")
	}
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider, got %T", provider)
	}
}

func TestSelectProviderChoosesNHLe(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "nhle",
		NHLe: config.NHLeConfig{
			BaseURL: "http://example.com/v1",
			Teams:   []string{"BOS"},
		},
	}, nil, nil)
	if _, ok := provider.(*nhle.Client); !ok {
		t.Fatalf("expected nhle provider, got %T", provider)
	}
}

func TestNewConstructsServer(t *testing.T) {
	srv := New(testConfig(), nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatal("expected server with handler")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("NHLE", nil); got != "nhle" {
		t.Fatalf("expected lower-cased explicit name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got == "" || got == "provider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPipeline{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected pipeline Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownContinuesWhenPipelineStopErrors(t *testing.T) {
	p := &stubPipeline{err: errors.New("stop failure")}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected pipeline Stop to be called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.shutdownCalls)
	}
}

type errHTTPServer struct {
	shutdownCalls int
}

func (e *errHTTPServer) ListenAndServe() error {
	return errors.New("listen failure")
}

func (e *errHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	e.shutdownCalls++
	return nil
}

func (e *errHTTPServer) Addr() string {
	return ":0"
}

func (e *errHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	p := &stubPipeline{}
	httpSrv := &errHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), httpSrv, p)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &stubPipeline{}
	httpSrv := &closeableHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), httpSrv, p)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if p.startCalls != 1 {
		t.Fatalf("expected pipeline Start called once, got %d", p.startCalls)
	}
	if p.stopCalls != 1 {
		t.Fatalf("expected pipeline Stop called once, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestServerRunOnce(t *testing.T) {
	p := &stubPipeline{}
	srv := newServerWithDeps(config.Config{}, nil, store.NewMemoryStore(), &stubHTTPServer{}, p)

	if err := srv.RunOnce(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.runCalls != 1 {
		t.Fatalf("expected one build, got %d", p.runCalls)
	}
}

package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danicode12/stat139-nhl-project/internal/arenas"
	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/dataset"
	"github.com/danicode12/stat139-nhl-project/internal/features"
	httpserver "github.com/danicode12/stat139-nhl-project/internal/http"
	"github.com/danicode12/stat139-nhl-project/internal/http/handlers"
	"github.com/danicode12/stat139-nhl-project/internal/http/middleware"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
	"github.com/danicode12/stat139-nhl-project/internal/metrics"
	"github.com/danicode12/stat139-nhl-project/internal/pipeline"
	"github.com/danicode12/stat139-nhl-project/internal/providers"
	"github.com/danicode12/stat139-nhl-project/internal/store"
)

var metricsSetup = metrics.Setup

// Server owns the pipeline, the dataset store, and the HTTP surface.
type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         store.DatasetStore
	storeClose    func() error
	httpServer    httpServer
	metricsServer httpServer
	pipeline      Pipeline
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and pipeline wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.ScheduleProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	dir := buildArenas(cfg, logger)
	if provider == nil {
		provider = newProviderFactory(logger, recorder, dir).build(cfg)
	}

	engine := features.New(dir, logger, recorder)
	assembler := dataset.New(engine)
	datasetStore, storeClose := buildStore(cfg, logger)
	snaps := buildSnapshots(cfg)

	var writer pipeline.SnapshotWriter
	if snaps.writer != nil {
		writer = snaps.writer
	}
	runner := pipeline.New(provider, assembler, datasetStore, writer, logger, recorder, cfg.Seasons, cfg.BuildInterval)
	httpSrv := buildHTTPServer(cfg, datasetStore, snaps, logger, recorder, runner)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         datasetStore,
		storeClose:    storeClose,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		pipeline:      runner,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, datasetStore store.DatasetStore, httpSrv httpServer, pl Pipeline) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		store:      datasetStore,
		httpServer: httpSrv,
		pipeline:   pl,
	}
}

func buildArenas(cfg config.Config, logger *slog.Logger) *arenas.Directory {
	dir, err := arenas.LoadDirectory(cfg.Dataset.ArenaFile)
	if err != nil {
		if logger != nil {
			logger.Warn("arena file unusable, using built-in directory",
				slog.String("path", cfg.Dataset.ArenaFile),
				"error", err,
			)
		}
		return arenas.NewDirectory()
	}
	return dir
}

func buildHTTPServer(cfg config.Config, datasetStore store.DatasetStore, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder, pl Pipeline) httpServer {
	var statusFn func() pipeline.Status
	if pl != nil {
		statusFn = pl.Status
	}

	handler := handlers.NewHandler(datasetStore, snaps.store, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Dataset.AdminToken != "" {
		admin = handlers.NewAdminHandler(pl, cfg.Dataset.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the pipeline and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.pipeline.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// RunOnce performs a single dataset build and releases resources. It
// backs one-shot invocations that only want the exported artifacts.
func (s *Server) RunOnce(ctx context.Context) error {
	defer s.cleanup()
	return s.pipeline.RunOnce(ctx)
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.pipeline.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop pipeline", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	s.cleanup()

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

// cleanup releases provider tickers and store handles.
func (s *Server) cleanup() {
	if rl, ok := s.pipelineProvider().(interface{ Close() }); ok {
		rl.Close()
	}
	if s.storeClose != nil {
		if err := s.storeClose(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}
}

// pipelineProvider attempts to extract the underlying provider from the pipeline when available.
// Best-effort helper to enable cleanup of rate-limited tickers; safe if not supported.
func (s *Server) pipelineProvider() providers.ScheduleProvider {
	if pa, ok := s.pipeline.(interface {
		Provider() providers.ScheduleProvider
	}); ok {
		return pa.Provider()
	}
	return nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/danicode12/stat139-nhl-project/internal/config"
	"github.com/danicode12/stat139-nhl-project/internal/logging"
	"github.com/danicode12/stat139-nhl-project/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nhl-feature-service",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)

	if cfg.BuildOnce {
		if err := srv.RunOnce(ctx); err != nil {
			logger.Error("one-shot build failed", "error", err)
			os.Exit(1)
		}
		return
	}

	srv.Run(ctx, stop)
}

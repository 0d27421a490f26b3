package server

import (
	"context"

	"github.com/danicode12/stat139-nhl-project/internal/pipeline"
)

// Pipeline defines the minimal build-loop behavior needed by the server.
type Pipeline interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	RunOnce(ctx context.Context) error
	Status() pipeline.Status
}

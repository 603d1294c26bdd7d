package app

import (
	"context"

	"go.trai.ch/tldr/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	// Shutdown releases process-wide resources such as the tracer provider.
	Shutdown func(context.Context) error
}

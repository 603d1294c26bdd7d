// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tldr/internal/adapters/cas"
	_ "go.trai.ch/tldr/internal/adapters/config"
	_ "go.trai.ch/tldr/internal/adapters/esbuild"
	_ "go.trai.ch/tldr/internal/adapters/fs"
	_ "go.trai.ch/tldr/internal/adapters/logger"
	_ "go.trai.ch/tldr/internal/adapters/probe"
	_ "go.trai.ch/tldr/internal/adapters/telemetry"
	_ "go.trai.ch/tldr/internal/adapters/tldraw"
	// Register app nodes.
	_ "go.trai.ch/tldr/internal/app"
)

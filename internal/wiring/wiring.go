// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/carve/internal/adapters/cargo"
	_ "go.trai.ch/carve/internal/adapters/config"
	_ "go.trai.ch/carve/internal/adapters/fs"
	_ "go.trai.ch/carve/internal/adapters/logger"
	_ "go.trai.ch/carve/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/carve/internal/app"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/packlink/internal/adapters/cas"
	_ "go.trai.ch/packlink/internal/adapters/config"
	_ "go.trai.ch/packlink/internal/adapters/fs"
	_ "go.trai.ch/packlink/internal/adapters/logger"
	_ "go.trai.ch/packlink/internal/adapters/npm"
	_ "go.trai.ch/packlink/internal/adapters/shell"
	_ "go.trai.ch/packlink/internal/adapters/telemetry"
	_ "go.trai.ch/packlink/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/packlink/internal/app"
	_ "go.trai.ch/packlink/internal/engine/linker"
)

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/forge/internal/adapters/config"
	_ "go.trai.ch/forge/internal/adapters/descriptor"
	_ "go.trai.ch/forge/internal/adapters/ledger"
	_ "go.trai.ch/forge/internal/adapters/logger"
	_ "go.trai.ch/forge/internal/adapters/network"
	_ "go.trai.ch/forge/internal/adapters/process"
	_ "go.trai.ch/forge/internal/adapters/registry"
	_ "go.trai.ch/forge/internal/adapters/telemetry"
	_ "go.trai.ch/forge/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/forge/internal/app"
)

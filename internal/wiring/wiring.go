// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/replica/internal/adapters/codec"
	_ "go.trai.ch/replica/internal/adapters/config"
	_ "go.trai.ch/replica/internal/adapters/daemon"
	_ "go.trai.ch/replica/internal/adapters/logger"
	_ "go.trai.ch/replica/internal/adapters/metrics"
	_ "go.trai.ch/replica/internal/adapters/source"
	_ "go.trai.ch/replica/internal/adapters/telemetry"
	_ "go.trai.ch/replica/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/replica/internal/app"
)

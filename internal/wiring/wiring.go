// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/importcache/internal/adapters/config"
	_ "go.trai.ch/importcache/internal/adapters/logger"
	_ "go.trai.ch/importcache/internal/adapters/manifest"
	_ "go.trai.ch/importcache/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/importcache/internal/app"
)

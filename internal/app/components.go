package app

import "go.trai.ch/importcache/internal/core/ports"

// Components holds the wired application and the adapters main needs
// directly.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

package ports

import "go.trai.ch/importcache/internal/core/domain"

// Settings are the session options read alongside the schema.
type Settings struct {
	// PreloadConcurrency bounds how many root modules resolve at once during initialization.
	PreloadConcurrency int
	// EagerAll resolves every root module during initialization.
	EagerAll bool
}

// SchemaLoader produces the declaration table for a session.
//
//go:generate mockgen -source=schema_loader.go -destination=mocks/mock_schema_loader.go -package=mocks
type SchemaLoader interface {
	// Load returns the built-in schema merged with the overlay at path.
	// A missing overlay file is not an error.
	Load(path string) (domain.Schema, Settings, error)
}

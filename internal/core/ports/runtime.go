// Package ports defines the interfaces the import cache consumes from its
// collaborators: the embedded runtime, logging, tracing and loaders.
package ports

import (
	"context"

	"go.trai.ch/importcache/internal/core/domain"
)

// Runtime is the lookup surface of the embedded runtime.
// Callers must hold whatever serialization token the runtime requires.
//
//go:generate mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type Runtime interface {
	// ImportModule imports the named top-level module and returns its handle.
	ImportModule(name string) (domain.Handle, error)
	// GetAttribute looks up name on the object referenced by h.
	GetAttribute(h domain.Handle, name string) (domain.Handle, error)
}

// ScopedRuntime is a Runtime that can attribute a batch of lookups to ctx,
// for instance to the span of the operation that issues them. The returned
// Runtime shares all state with the receiver.
type ScopedRuntime interface {
	Runtime
	WithContext(ctx context.Context) Runtime
}

// RuntimeLoader builds a Runtime from a description on disk.
type RuntimeLoader interface {
	// Load reads the description at path.
	Load(path string) (Runtime, error)
}

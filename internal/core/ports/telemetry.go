package ports

import (
	"context"

	"go.trai.ch/importcache/internal/core/domain"
)

//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError records an error for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Telemetry owns the tracer of a process and counts the runtime lookups it
// records.
type Telemetry interface {
	// Tracer returns the tracer spans are started on.
	Tracer() Tracer
	// Instrument wraps rt so every lookup becomes a span below ctx.
	Instrument(ctx context.Context, rt Runtime) Runtime
	// Stats returns the lookups recorded so far.
	Stats() domain.LookupStats
	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}

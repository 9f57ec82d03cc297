package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
)

// InstrumentationName names the tracer spans are created on.
const InstrumentationName = "go.trai.ch/importcache"

// Provider implements ports.Telemetry on an SDK tracer provider that feeds a
// LookupStats processor.
type Provider struct {
	tp     *sdktrace.TracerProvider
	stats  *LookupStats
	tracer *OTelTracer
}

// NewProvider creates a Provider. Extra processors, such as exporters, receive
// every span as well.
func NewProvider(processors ...sdktrace.SpanProcessor) *Provider {
	stats := NewLookupStats()
	opts := []sdktrace.TracerProviderOption{sdktrace.WithSpanProcessor(stats)}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	tp := sdktrace.NewTracerProvider(opts...)

	return &Provider{
		tp:     tp,
		stats:  stats,
		tracer: NewOTelTracer(tp, InstrumentationName),
	}
}

// Tracer returns the provider's tracer.
func (p *Provider) Tracer() ports.Tracer {
	return p.tracer
}

// Instrument wraps rt with lookup spans.
func (p *Provider) Instrument(ctx context.Context, rt ports.Runtime) ports.Runtime {
	return InstrumentRuntime(ctx, rt, p.tracer)
}

// Stats returns the lookups recorded so far.
func (p *Provider) Stats() domain.LookupStats {
	return p.stats.Snapshot()
}

// Shutdown flushes and stops the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

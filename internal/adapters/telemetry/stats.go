package telemetry

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/importcache/internal/core/domain"
)

// LookupStats is an sdktrace.SpanProcessor that counts ended lookup spans.
type LookupStats struct {
	imports    atomic.Int64
	attributes atomic.Int64
	failures   atomic.Int64
}

// NewLookupStats returns an empty LookupStats.
func NewLookupStats() *LookupStats {
	return &LookupStats{}
}

// OnStart does nothing.
func (l *LookupStats) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd counts s if it is a lookup span.
func (l *LookupStats) OnEnd(s sdktrace.ReadOnlySpan) {
	var kind string
	for _, kv := range s.Attributes() {
		if string(kv.Key) == AttrLookupKind {
			kind = kv.Value.AsString()
			break
		}
	}

	switch kind {
	case KindImport:
		l.imports.Add(1)
	case KindGetattr:
		l.attributes.Add(1)
	default:
		return
	}

	if s.Status().Code == codes.Error {
		l.failures.Add(1)
	}
}

// ForceFlush does nothing.
func (l *LookupStats) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (l *LookupStats) Shutdown(_ context.Context) error {
	return nil
}

// Snapshot returns the counts so far.
func (l *LookupStats) Snapshot() domain.LookupStats {
	return domain.LookupStats{
		Imports:    l.imports.Load(),
		Attributes: l.attributes.Load(),
		Failures:   l.failures.Load(),
	}
}

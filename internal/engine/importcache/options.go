package importcache

import (
	"context"

	"go.trai.ch/importcache/internal/core/ports"
)

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the logger used for resolution failures and lifecycle events.
func WithLogger(l ports.Logger) Option {
	return func(r *Root) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTracer sets the tracer used to record initialization.
func WithTracer(t ports.Tracer) Option {
	return func(r *Root) {
		if t != nil {
			r.tracer = t
		}
	}
}

// WithPreloadConcurrency bounds how many root modules Initialize resolves at
// once. The default of 1 suits runtimes guarded by a single global lock.
func WithPreloadConcurrency(n int) Option {
	return func(r *Root) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithEagerAll makes Initialize resolve every root module.
func WithEagerAll() Option {
	return func(r *Root) {
		r.eagerAll = true
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(error)          {}

type nopTracer struct{}

func (nopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, nopSpan{}
}

type nopSpan struct{}

func (nopSpan) End()                     {}
func (nopSpan) RecordError(error)        {}
func (nopSpan) SetAttribute(string, any) {}

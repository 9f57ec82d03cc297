package telemetry

import (
	"context"
	"reflect"
	"sync"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
)

// Span attribute keys set on lookup spans.
const (
	AttrLookupKind = "lookup.kind"
	AttrModule     = "module"
	AttrAttribute  = "attribute"
)

// Lookup kinds.
const (
	KindImport  = "import"
	KindGetattr = "getattr"
)

// InstrumentRuntime wraps rt so that every ImportModule and GetAttribute call
// becomes a span under ctx. Spans are named "import datetime" and
// "getattr datetime.date"; failures are recorded on the span. WithContext
// returns a view whose spans nest under another context, which is how cache
// initialization groups its preload lookups.
func InstrumentRuntime(ctx context.Context, rt ports.Runtime, tracer ports.Tracer) ports.ScopedRuntime {
	return &instrumentedRuntime{
		ctx:    ctx,
		rt:     rt,
		tracer: tracer,
		names:  &handleNames{m: make(map[domain.Handle]string)},
	}
}

type instrumentedRuntime struct {
	ctx    context.Context
	rt     ports.Runtime
	tracer ports.Tracer
	names  *handleNames
}

// handleNames maps handles to the qualified name they were reached by. It is
// shared by every view of one instrumented runtime.
type handleNames struct {
	mu sync.Mutex
	m  map[domain.Handle]string
}

// WithContext returns a view of r whose spans are started under ctx.
func (r *instrumentedRuntime) WithContext(ctx context.Context) ports.Runtime {
	return &instrumentedRuntime{
		ctx:    ctx,
		rt:     r.rt,
		tracer: r.tracer,
		names:  r.names,
	}
}

func (r *instrumentedRuntime) ImportModule(name string) (domain.Handle, error) {
	_, span := r.tracer.Start(r.ctx, KindImport+" "+name)
	defer span.End()
	span.SetAttribute(AttrLookupKind, KindImport)
	span.SetAttribute(AttrModule, name)

	h, err := r.rt.ImportModule(name)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	r.remember(h, name)
	return h, nil
}

func (r *instrumentedRuntime) GetAttribute(h domain.Handle, name string) (domain.Handle, error) {
	qualified := name
	if parent, ok := r.nameOf(h); ok {
		qualified = parent + "." + name
	}

	_, span := r.tracer.Start(r.ctx, KindGetattr+" "+qualified)
	defer span.End()
	span.SetAttribute(AttrLookupKind, KindGetattr)
	span.SetAttribute(AttrAttribute, qualified)

	attr, err := r.rt.GetAttribute(h, name)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	r.remember(attr, qualified)
	return attr, nil
}

// remember records the qualified name of h. Handles that cannot be map keys
// are skipped and later show up under their bare attribute name.
func (r *instrumentedRuntime) remember(h domain.Handle, name string) {
	if !hashable(h) {
		return
	}
	r.names.mu.Lock()
	if _, ok := r.names.m[h]; !ok {
		r.names.m[h] = name
	}
	r.names.mu.Unlock()
}

func (r *instrumentedRuntime) nameOf(h domain.Handle) (string, bool) {
	if !hashable(h) {
		return "", false
	}
	r.names.mu.Lock()
	defer r.names.mu.Unlock()
	name, ok := r.names.m[h]
	return name, ok
}

func hashable(h domain.Handle) bool {
	return h != nil && reflect.TypeOf(h).Comparable()
}

// Package importcache implements the handle cache: a tree of lazily resolved,
// memoized references into the embedded runtime's module namespace.
//
// A Root is built once per embedding session from a declarative schema. Each
// declared name becomes an Item that resolves at most once, the first time it
// is requested or when its parent is resolved. Items guard their own first
// resolution, so concurrent first use performs one runtime lookup and every
// caller observes the same handle. Callers must still hold the runtime's own
// lock, if it has one, for the duration of any call that may resolve.
package importcache

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Root owns the top-level items of one session and is the entry point for
// handle lookups.
type Root struct {
	rt          ports.Runtime
	schema      domain.Schema
	fingerprint string
	log         ports.Logger
	tracer      ports.Tracer
	concurrency int
	eagerAll    bool

	mu          sync.RWMutex
	modules     []*Item
	byName      map[string]*Item
	index       *pathIndex
	initialized bool
	closed      bool
}

// New validates schema and builds the item tree. Every item starts Unresolved
// and no runtime call is made until Initialize or Get.
func New(rt ports.Runtime, schema domain.Schema, opts ...Option) (*Root, error) {
	if err := schema.Validate(); err != nil {
		return nil, zerr.Wrap(err, "invalid import cache schema")
	}

	r := &Root{
		rt:          rt,
		schema:      schema,
		fingerprint: schema.Fingerprint(),
		log:         nopLogger{},
		tracer:      nopTracer{},
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(r)
	}

	s := &session{rt: rt, log: r.log}
	r.modules = make([]*Item, 0, len(schema.Modules))
	r.byName = make(map[string]*Item, len(schema.Modules))
	for _, d := range schema.Modules {
		it := newItem(s, d, nil)
		r.modules = append(r.modules, it)
		r.byName[d.Key()] = it
	}
	r.index = newPathIndex(r.modules)

	return r, nil
}

// Initialize resolves every eager root module and, through them, their
// declared children. It may be called once. A ScopedRuntime is handed the
// initialization context, so preload lookups nest under its span. Resolution failures are logged
// and kept on the failing items; they are not returned. An error is returned
// only for lifecycle misuse or when ctx is cancelled mid-preload.
func (r *Root) Initialize(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return domain.ErrCacheClosed
	}
	if r.initialized {
		r.mu.Unlock()
		return domain.ErrAlreadyInitialized
	}
	r.initialized = true
	var eager []*Item
	for _, it := range r.modules {
		if r.eagerAll || it.eager {
			eager = append(eager, it)
		}
	}
	r.mu.Unlock()

	ctx, span := r.tracer.Start(ctx, "importcache.initialize")
	defer span.End()
	span.SetAttribute("fingerprint", r.fingerprint)
	span.SetAttribute("eager_modules", len(eager))

	r.log.Debug("initializing import cache", "fingerprint", r.fingerprint, "eager", len(eager))

	rt := r.rt
	if sr, ok := rt.(ports.ScopedRuntime); ok {
		rt = sr.WithContext(ctx)
	}

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for _, it := range eager {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := it.ensureLoaded(rt, nil); err != nil {
				failed.Add(1)
				r.reportModuleFailure(it, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return zerr.Wrap(err, "import cache preload interrupted")
	}

	span.SetAttribute("failed_modules", int(failed.Load()))
	r.log.Info("import cache initialized", "eager", len(eager), "failed", failed.Load())
	return nil
}

func (r *Root) reportModuleFailure(it *Item, err error) {
	if it.optional {
		r.log.Info("optional module not available", "module", it.Name())
		return
	}
	r.log.Error(zerr.With(err, "module", it.Name()))
}

// Get resolves a declared dotted path and returns its handle. Each segment is
// resolved root to leaf; a failure names the path and the segment at which
// resolution stopped.
func (r *Root) Get(path string) (domain.Handle, error) {
	p, err := domain.ParsePath(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, domain.ErrCacheClosed
	}

	if it := r.index.lookup(p); it != nil {
		if h, ok := it.cached(); ok {
			return h, nil
		}
	}

	segments := p.Segments()
	it, ok := r.byName[segments[0]]
	if !ok {
		return nil, undeclared(p, segments[0])
	}
	h, err := it.GetHandleOrFail()
	if err != nil {
		return nil, annotate(err, p, segments[0])
	}
	for _, seg := range segments[1:] {
		it, ok = it.Child(seg)
		if !ok {
			return nil, undeclared(p, seg)
		}
		h, err = it.GetHandleOrFail()
		if err != nil {
			return nil, annotate(err, p, seg)
		}
	}
	return h, nil
}

// Item returns the declared item at path without resolving it.
func (r *Root) Item(path string) (*Item, error) {
	p, err := domain.ParsePath(path)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return nil, domain.ErrCacheClosed
	}

	if it := r.index.lookup(p); it != nil {
		return it, nil
	}

	segments := p.Segments()
	it, ok := r.byName[segments[0]]
	if !ok {
		return nil, undeclared(p, segments[0])
	}
	for _, seg := range segments[1:] {
		if it, ok = it.Child(seg); !ok {
			return nil, undeclared(p, seg)
		}
	}
	return it, nil
}

// Modules returns the root items in declaration order.
func (r *Root) Modules() []*Item {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules
}

// Snapshot returns the state of every item, depth-first in declaration order.
func (r *Root) Snapshot() []domain.ItemStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ItemStatus, 0, r.index.len())
	var walk func(items []*Item)
	walk = func(items []*Item) {
		for _, it := range items {
			out = append(out, it.status())
			walk(it.children)
		}
	}
	walk(r.modules)
	return out
}

// Schema returns the declaration table the root was built from.
func (r *Root) Schema() domain.Schema { return r.schema }

// Fingerprint returns the schema fingerprint.
func (r *Root) Fingerprint() string { return r.fingerprint }

// Close discards the handle table. The runtime objects themselves are not
// released; the cache never owned them. Close may be called once.
func (r *Root) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return domain.ErrCacheClosed
	}
	r.closed = true
	r.modules = nil
	r.byName = nil
	r.index = &pathIndex{}
	r.log.Debug("import cache closed", "fingerprint", r.fingerprint)
	return nil
}

func undeclared(p domain.Path, segment string) error {
	return zerr.With(zerr.With(zerr.Wrap(domain.ErrUndeclaredPath, "path is not declared"), "path", p.String()), "segment", segment)
}

func annotate(err error, p domain.Path, segment string) error {
	return zerr.With(zerr.With(err, "path", p.String()), "segment", segment)
}

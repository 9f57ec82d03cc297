// Package app implements the application layer: it opens cache sessions
// against a runtime and renders their state.
package app

import (
	"context"
	"io"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
	"go.trai.ch/importcache/internal/engine/importcache"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	schemas   ports.SchemaLoader
	runtimes  ports.RuntimeLoader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	schemas ports.SchemaLoader,
	runtimes ports.RuntimeLoader,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		schemas:   schemas,
		runtimes:  runtimes,
		logger:    log,
		telemetry: telemetry,
	}
}

// SessionOptions configures one cache session.
type SessionOptions struct {
	// ManifestPath is the runtime manifest to load.
	ManifestPath string
	// ConfigPath is the overlay file. Empty selects the default file name.
	ConfigPath string
	// EagerAll resolves every root module during initialization.
	EagerAll bool
	// PreloadConcurrency overrides the overlay setting when positive.
	PreloadConcurrency int
}

// Resolution is the outcome of resolving one requested path.
type Resolution struct {
	Path   string
	Handle domain.Handle
	Err    error
}

// Open loads the declarations and the runtime, builds the cache and
// initializes it. The caller closes the returned root.
func (a *App) Open(ctx context.Context, opts SessionOptions) (*importcache.Root, error) {
	schema, settings, err := a.schemas.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load declarations")
	}

	rt, err := a.runtimes.Load(opts.ManifestPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load runtime")
	}

	cacheOpts := []importcache.Option{
		importcache.WithLogger(a.logger),
		importcache.WithTracer(a.telemetry.Tracer()),
		importcache.WithPreloadConcurrency(settings.PreloadConcurrency),
		importcache.WithPreloadConcurrency(opts.PreloadConcurrency),
	}
	if opts.EagerAll || settings.EagerAll {
		cacheOpts = append(cacheOpts, importcache.WithEagerAll())
	}

	root, err := importcache.New(a.telemetry.Instrument(ctx, rt), schema, cacheOpts...)
	if err != nil {
		return nil, err
	}
	if err := root.Initialize(ctx); err != nil {
		_ = root.Close()
		return nil, err
	}
	return root, nil
}

// Resolve opens a session and resolves every path in order. Every path is
// attempted; the returned slice holds one Resolution per path. The error is
// ErrResolutionFailed if any path failed.
func (a *App) Resolve(ctx context.Context, paths []string, opts SessionOptions) ([]Resolution, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoPathsSpecified
	}

	root, err := a.Open(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = root.Close() }()

	results := make([]Resolution, 0, len(paths))
	failed := 0
	for _, p := range paths {
		h, err := root.Get(p)
		if err != nil {
			failed++
		}
		results = append(results, Resolution{Path: p, Handle: h, Err: err})
	}

	if failed > 0 {
		err := zerr.Wrap(domain.ErrResolutionFailed, "some paths did not resolve")
		return results, zerr.With(err, "failed", failed)
	}
	return results, nil
}

// Inspect opens a session with every module preloaded and writes the state
// of the whole tree to w.
func (a *App) Inspect(ctx context.Context, w io.Writer, opts SessionOptions) error {
	opts.EagerAll = true
	root, err := a.Open(ctx, opts)
	if err != nil {
		return err
	}
	defer func() { _ = root.Close() }()

	return RenderReport(w, Report{
		Fingerprint: root.Fingerprint(),
		Rows:        root.Snapshot(),
		Stats:       a.telemetry.Stats(),
	})
}

// Modules writes the declared tree to w without touching a runtime.
func (a *App) Modules(w io.Writer, opts SessionOptions) error {
	schema, _, err := a.schemas.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load declarations")
	}
	return RenderDeclarations(w, schema)
}

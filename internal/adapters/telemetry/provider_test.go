package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/importcache/internal/adapters/telemetry"
	"go.trai.ch/importcache/internal/core/domain"
)

func TestProvider_Stats(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	p := telemetry.NewProvider(sr)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	ctx, session := p.Tracer().Start(context.Background(), "session")
	rt := p.Instrument(ctx, newTreeRuntime())

	mod, err := rt.ImportModule("collections")
	require.NoError(t, err)
	abc, err := rt.GetAttribute(mod, "abc")
	require.NoError(t, err)
	_, _ = rt.GetAttribute(abc, "Mapping")
	_, _ = rt.GetAttribute(abc, "Sequence")
	_, _ = rt.ImportModule("numpy")
	session.End()

	stats := p.Stats()
	assert.Equal(t, domain.LookupStats{Imports: 2, Attributes: 3, Failures: 2}, stats)
	assert.Equal(t, int64(5), stats.Total())

	assert.Len(t, sr.Ended(), 6, "extra processors see every span")
}

func TestLookupStats_IgnoresOtherSpans(t *testing.T) {
	stats := telemetry.NewLookupStats()
	p := telemetry.NewProvider(stats)
	t.Cleanup(func() { _ = p.Shutdown(context.Background()) })

	_, span := p.Tracer().Start(context.Background(), "importcache.initialize")
	span.SetAttribute("fingerprint", "9f2c")
	span.End()

	assert.Equal(t, domain.LookupStats{}, stats.Snapshot())
	assert.NoError(t, stats.ForceFlush(context.Background()))
}

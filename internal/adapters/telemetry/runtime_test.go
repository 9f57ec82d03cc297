package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/importcache/internal/adapters/telemetry"
	"go.trai.ch/importcache/internal/core/domain"
)

type node struct {
	attrs map[string]*node
}

type treeRuntime struct {
	modules map[string]*node
}

var errMissing = errors.New("missing")

func (r *treeRuntime) ImportModule(name string) (domain.Handle, error) {
	if m, ok := r.modules[name]; ok {
		return m, nil
	}
	return nil, errMissing
}

func (r *treeRuntime) GetAttribute(h domain.Handle, name string) (domain.Handle, error) {
	if a, ok := h.(*node).attrs[name]; ok {
		return a, nil
	}
	return nil, errMissing
}

func newTreeRuntime() *treeRuntime {
	return &treeRuntime{modules: map[string]*node{
		"collections": {attrs: map[string]*node{
			"abc": {attrs: map[string]*node{"Mapping": {}}},
		}},
	}}
}

func TestInstrumentRuntime_SpanNames(t *testing.T) {
	sr, tp := newRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test")

	ctx, parent := tracer.Start(context.Background(), "session")
	rt := telemetry.InstrumentRuntime(ctx, newTreeRuntime(), tracer)

	mod, err := rt.ImportModule("collections")
	require.NoError(t, err)
	abc, err := rt.GetAttribute(mod, "abc")
	require.NoError(t, err)
	_, err = rt.GetAttribute(abc, "Mapping")
	require.NoError(t, err)
	_, err = rt.GetAttribute(abc, "Sequence")
	require.ErrorIs(t, err, errMissing)
	_, err = rt.ImportModule("numpy")
	require.ErrorIs(t, err, errMissing)
	parent.End()

	spans := sr.Ended()
	require.Len(t, spans, 6)

	names := make([]string, 0, len(spans))
	for _, s := range spans[:5] {
		names = append(names, s.Name())
		assert.Equal(t, spans[5].SpanContext().SpanID(), s.Parent().SpanID(), "lookups are children of the session span")
	}
	assert.Equal(t, []string{
		"import collections",
		"getattr collections.abc",
		"getattr collections.abc.Mapping",
		"getattr collections.abc.Sequence",
		"import numpy",
	}, names)

	assert.Equal(t, codes.Unset, spans[2].Status().Code)
	assert.Equal(t, codes.Error, spans[3].Status().Code)
	assert.Equal(t, codes.Error, spans[4].Status().Code)

	attrs := attrMap(spans[2].Attributes())
	assert.Equal(t, telemetry.KindGetattr, attrs[telemetry.AttrLookupKind].AsString())
	assert.Equal(t, "collections.abc.Mapping", attrs[telemetry.AttrAttribute].AsString())

	attrs = attrMap(spans[0].Attributes())
	assert.Equal(t, "collections", attrs[telemetry.AttrModule].AsString())
}

func TestInstrumentRuntime_WithContext(t *testing.T) {
	sr, tp := newRecorder(t)
	tracer := telemetry.NewOTelTracer(tp, "test")

	sessionCtx, session := tracer.Start(context.Background(), "session")
	rt := telemetry.InstrumentRuntime(sessionCtx, newTreeRuntime(), tracer)

	initCtx, initialize := tracer.Start(sessionCtx, "initialize")
	scoped := rt.WithContext(initCtx)

	mod, err := scoped.ImportModule("collections")
	require.NoError(t, err)
	_, err = scoped.GetAttribute(mod, "abc")
	require.NoError(t, err)
	initialize.End()

	_, err = rt.GetAttribute(mod, "abc")
	require.NoError(t, err)
	session.End()

	spans := sr.Ended()
	require.Len(t, spans, 5)
	byName := make(map[string][]sdktrace.ReadOnlySpan)
	for _, s := range spans {
		byName[s.Name()] = append(byName[s.Name()], s)
	}

	initID := byName["initialize"][0].SpanContext().SpanID()
	sessionID := byName["session"][0].SpanContext().SpanID()

	assert.Equal(t, initID, byName["import collections"][0].Parent().SpanID())
	require.Len(t, byName["getattr collections.abc"], 2, "names learned by the view are shared")
	assert.Equal(t, initID, byName["getattr collections.abc"][0].Parent().SpanID())
	assert.Equal(t, sessionID, byName["getattr collections.abc"][1].Parent().SpanID())
}

type sliceHandle []string

type sliceRuntime struct{}

func (sliceRuntime) ImportModule(name string) (domain.Handle, error) {
	return sliceHandle{name}, nil
}

func (sliceRuntime) GetAttribute(_ domain.Handle, name string) (domain.Handle, error) {
	return sliceHandle{name}, nil
}

func TestInstrumentRuntime_UnhashableHandles(t *testing.T) {
	sr, tp := newRecorder(t)
	rt := telemetry.InstrumentRuntime(context.Background(), sliceRuntime{}, telemetry.NewOTelTracer(tp, "test"))

	mod, err := rt.ImportModule("uuid")
	require.NoError(t, err)
	_, err = rt.GetAttribute(mod, "UUID")
	require.NoError(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "getattr UUID", spans[1].Name())
}

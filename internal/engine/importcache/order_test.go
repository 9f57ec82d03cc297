//go:build !importcache_debug

package importcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/engine/importcache"
)

func TestGetHandleOrFail_ParentUnresolved(t *testing.T) {
	rt := newFakeRuntime(map[string][]string{"datetime": {"date"}})

	root, err := importcache.New(rt, datetimeSchema())
	require.NoError(t, err)

	child, err := root.Item("datetime.date")
	require.NoError(t, err)

	_, err = child.GetHandleOrFail()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUsedBeforeParentResolved))
	assert.Equal(t, domain.StateUnresolved, child.State())
	assert.Zero(t, rt.getattrs.Load(), "no lookup may run against an unresolved parent")
}

func TestEnsureLoaded_ParentUnresolved(t *testing.T) {
	rt := newFakeRuntime(map[string][]string{"datetime": {"date"}})

	root, err := importcache.New(rt, datetimeSchema())
	require.NoError(t, err)

	child, err := root.Item("datetime.date")
	require.NoError(t, err)

	// A handle obtained outside the cache does not make the parent item Resolved.
	mod, err := rt.ImportModule("datetime")
	require.NoError(t, err)

	err = child.EnsureLoaded(mod)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUsedBeforeParentResolved))
	assert.Equal(t, domain.StateUnresolved, child.State())
	assert.Equal(t, domain.StateUnresolved, child.Parent().State())
	assert.Zero(t, rt.getattrs.Load())
}

func TestEnsureLoaded_ParentFailed(t *testing.T) {
	rt := newFakeRuntime(map[string][]string{"decimal": {"Decimal"}})

	root, err := importcache.New(rt, datetimeSchema())
	require.NoError(t, err)

	parent, err := root.Item("datetime")
	require.NoError(t, err)
	require.Error(t, parent.EnsureLoaded(nil))

	child, err := root.Item("datetime.date")
	require.NoError(t, err)

	err = child.EnsureLoaded(&object{path: "datetime"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleUnavailable))
	assert.Equal(t, domain.StateUnresolved, child.State())
	assert.Zero(t, rt.getattrs.Load())
}

package importcache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports/mocks"
	"go.trai.ch/importcache/internal/engine/importcache"
	"go.uber.org/mock/gomock"
)

func datetimeSchema() domain.Schema {
	return domain.NewSchema(
		domain.Module("datetime", domain.Attrs("datetime", "date", "time", "timedelta")...),
	)
}

type handle struct{ name string }

func TestEnsureLoaded_LooksUpOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	mod := &handle{"datetime"}
	rt.EXPECT().ImportModule("datetime").Return(mod, nil).Times(1)
	for _, name := range []string{"datetime", "date", "time", "timedelta"} {
		rt.EXPECT().GetAttribute(mod, name).Return(&handle{name}, nil).Times(1)
	}

	root, err := importcache.New(rt, datetimeSchema())
	require.NoError(t, err)

	item, err := root.Item("datetime")
	require.NoError(t, err)
	assert.False(t, item.Loaded())

	for range 5 {
		require.NoError(t, item.EnsureLoaded(nil))
	}

	h, err := item.GetHandleOrFail()
	require.NoError(t, err)
	assert.Same(t, mod, h)
	assert.True(t, item.Loaded())
	assert.Equal(t, domain.StateResolved, item.State())
	assert.NoError(t, item.Err())
}

func TestEnsureLoaded_QueriesExactlyDeclaredChildren(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	mod := &handle{"datetime"}
	rt.EXPECT().ImportModule("datetime").Return(mod, nil)

	var queried []string
	rt.EXPECT().GetAttribute(mod, gomock.Any()).DoAndReturn(func(_ domain.Handle, name string) (domain.Handle, error) {
		queried = append(queried, name)
		return &handle{name}, nil
	}).Times(4)

	root, err := importcache.New(rt, datetimeSchema())
	require.NoError(t, err)
	item, err := root.Item("datetime")
	require.NoError(t, err)

	require.NoError(t, item.EnsureLoaded(nil))
	assert.ElementsMatch(t, []string{"datetime", "date", "time", "timedelta"}, queried)
}

func TestEnsureLoaded_ChildFailureLeavesParentResolved(t *testing.T) {
	rt := newFakeRuntime(map[string][]string{"datetime": {"date"}})
	schema := domain.NewSchema(domain.Module("datetime", domain.Attrs("date", "tzinfo")...))

	root, err := importcache.New(rt, schema)
	require.NoError(t, err)
	item, err := root.Item("datetime")
	require.NoError(t, err)

	require.NoError(t, item.EnsureLoaded(nil))

	date, ok := item.Child("date")
	require.True(t, ok)
	assert.Equal(t, domain.StateResolved, date.State())

	tz, ok := item.Child("tzinfo")
	require.True(t, ok)
	assert.Equal(t, domain.StateFailed, tz.State())
	assert.True(t, errors.Is(tz.Err(), domain.ErrAttributeUnavailable))
	assert.True(t, errors.Is(tz.Err(), errNotFound))

	var resErr *domain.ResolutionError
	require.True(t, errors.As(tz.Err(), &resErr))
	assert.Equal(t, domain.Path("datetime.tzinfo"), resErr.Path)
	assert.Equal(t, "tzinfo", resErr.Segment)

	assert.Equal(t, domain.StateResolved, item.State())
}

func TestEnsureLoaded_FailureIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	cause := errors.New("ModuleNotFoundError")
	rt.EXPECT().ImportModule("numpy").Return(nil, cause).Times(1)

	root, err := importcache.New(rt, domain.NewSchema(domain.Module("numpy", domain.Attr("ndarray"))))
	require.NoError(t, err)
	item, err := root.Item("numpy")
	require.NoError(t, err)

	first := item.EnsureLoaded(nil)
	second := item.EnsureLoaded(nil)
	_, third := item.GetHandleOrFail()

	for _, err := range []error{first, second, third} {
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrModuleUnavailable))
		assert.True(t, errors.Is(err, cause))
	}
	assert.Equal(t, domain.StateFailed, item.State())

	child, ok := item.Child("ndarray")
	require.True(t, ok)
	_, err = child.GetHandleOrFail()
	assert.True(t, errors.Is(err, domain.ErrModuleUnavailable), "a child of a failed parent reports the parent's failure")
	assert.Equal(t, domain.StateUnresolved, child.State())
}

func TestEnsureLoaded_NilHandleIsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	mod := &handle{"decimal"}
	rt.EXPECT().ImportModule("decimal").Return(mod, nil)
	rt.EXPECT().GetAttribute(mod, "Decimal").Return(nil, nil)

	root, err := importcache.New(rt, domain.NewSchema(domain.Module("decimal", domain.Attr("Decimal"))))
	require.NoError(t, err)

	_, err = root.Get("decimal.Decimal")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAttributeUnavailable))
}

func TestEnsureLoaded_LazyChildWaitsForRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	mod := &handle{"pandas"}
	frame := &handle{"DataFrame"}
	schema := domain.NewSchema(domain.Module("pandas",
		domain.Attr("DataFrame"),
		domain.Attr("ArrowDtype").AsLazy(),
	))

	root, err := importcache.New(rt, schema)
	require.NoError(t, err)
	item, err := root.Item("pandas")
	require.NoError(t, err)

	gomock.InOrder(
		rt.EXPECT().ImportModule("pandas").Return(mod, nil),
		rt.EXPECT().GetAttribute(mod, "DataFrame").Return(frame, nil),
	)
	require.NoError(t, item.EnsureLoaded(nil))

	lazy, ok := item.Child("ArrowDtype")
	require.True(t, ok)
	assert.Equal(t, domain.StateUnresolved, lazy.State())

	dtype := &handle{"ArrowDtype"}
	rt.EXPECT().GetAttribute(mod, "ArrowDtype").Return(dtype, nil).Times(1)

	h, err := root.Get("pandas.ArrowDtype")
	require.NoError(t, err)
	assert.Same(t, dtype, h)

	h, err = lazy.GetHandleOrFail()
	require.NoError(t, err)
	assert.Same(t, dtype, h)
}

func TestItem_Accessors(t *testing.T) {
	rt := newFakeRuntime(map[string][]string{"collections.abc": {"Iterable", "Mapping"}})
	schema := domain.NewSchema(domain.Module("collections",
		domain.Attr("abc", domain.Attrs("Iterable", "Mapping")...),
	))

	root, err := importcache.New(rt, schema)
	require.NoError(t, err)

	item, err := root.Item("collections.abc.Mapping")
	require.NoError(t, err)
	assert.Equal(t, "Mapping", item.Name())
	assert.Equal(t, domain.Path("collections.abc.Mapping"), item.Path())
	assert.Equal(t, domain.Path("collections.abc"), item.Parent().Path())
	assert.Nil(t, item.Parent().Parent().Parent())
	assert.Empty(t, item.Children())

	abc := item.Parent()
	names := make([]string, 0, len(abc.Children()))
	for _, c := range abc.Children() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"Iterable", "Mapping"}, names)

	_, ok := abc.Child("Sequence")
	assert.False(t, ok)
}

func TestEnsureLoaded_SubmoduleImportsDottedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	schema := domain.NewSchema(domain.Module("pyarrow",
		domain.Attr("Table"),
		domain.Attr("dataset", domain.Attr("Scanner")).AsSubmodule(),
	))
	root, err := importcache.New(rt, schema)
	require.NoError(t, err)

	pa := &handle{"pyarrow"}
	ds := &handle{"pyarrow.dataset"}
	gomock.InOrder(
		rt.EXPECT().ImportModule("pyarrow").Return(pa, nil),
		rt.EXPECT().GetAttribute(pa, "Table").Return(&handle{"Table"}, nil),
		rt.EXPECT().ImportModule("pyarrow.dataset").Return(ds, nil),
		rt.EXPECT().GetAttribute(ds, "Scanner").Return(&handle{"Scanner"}, nil),
	)

	h, err := root.Get("pyarrow.dataset")
	require.NoError(t, err)
	assert.Same(t, ds, h)

	for _, st := range root.Snapshot() {
		assert.Equal(t, st.Path == "pyarrow.dataset", st.Submodule, st.Path)
	}
}

func TestEnsureLoaded_SubmoduleUsesRuntimeNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	rt := mocks.NewMockRuntime(ctrl)

	schema := domain.NewSchema(domain.Module("pandas",
		domain.Attr("_libs", domain.Attr("missing").AsField("na").AsSubmodule()).AsField("libs"),
	))
	root, err := importcache.New(rt, schema)
	require.NoError(t, err)

	pd := &handle{"pandas"}
	libs := &handle{"pandas._libs"}
	rt.EXPECT().ImportModule("pandas").Return(pd, nil)
	rt.EXPECT().GetAttribute(pd, "_libs").Return(libs, nil)
	rt.EXPECT().ImportModule("pandas._libs.missing").Return(nil, errors.New("No module named 'pandas._libs.missing'"))

	_, err = root.Get("pandas.libs.na")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrModuleUnavailable))

	var resErr *domain.ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, domain.Path("pandas.libs.na"), resErr.Path)
	assert.Equal(t, "missing", resErr.Segment)

	libsItem, err := root.Item("pandas.libs")
	require.NoError(t, err)
	assert.Equal(t, domain.StateResolved, libsItem.State(), "a failed submodule leaves its parent resolved")
}

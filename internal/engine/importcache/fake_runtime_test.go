package importcache_test

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.trai.ch/importcache/internal/core/domain"
)

// object is a runtime value handed out by fakeRuntime.
type object struct {
	path  string
	attrs map[string]*object
}

// fakeRuntime is a small in-memory runtime that counts every lookup.
type fakeRuntime struct {
	modules map[string]*object

	imports  atomic.Int64
	getattrs atomic.Int64

	mu    sync.Mutex
	calls map[string]int

	// onGetAttribute runs before every attribute lookup.
	onGetAttribute func(parent *object, name string)
}

var errNotFound = errors.New("not found")

func newFakeRuntime(tree map[string][]string) *fakeRuntime {
	rt := &fakeRuntime{
		modules: make(map[string]*object),
		calls:   make(map[string]int),
	}
	for path, attrs := range tree {
		rt.ensure(path)
		for _, a := range attrs {
			rt.ensure(path + "." + a)
		}
	}
	return rt
}

func (rt *fakeRuntime) ensure(path string) *object {
	var cur *object
	prefix := ""
	for i, seg := range domain.Path(path).Segments() {
		if i == 0 {
			prefix = seg
			next, ok := rt.modules[seg]
			if !ok {
				next = &object{path: seg, attrs: map[string]*object{}}
				rt.modules[seg] = next
			}
			cur = next
			continue
		}
		prefix += "." + seg
		next, ok := cur.attrs[seg]
		if !ok {
			next = &object{path: prefix, attrs: map[string]*object{}}
			cur.attrs[seg] = next
		}
		cur = next
	}
	return cur
}

func (rt *fakeRuntime) record(key string) {
	rt.mu.Lock()
	rt.calls[key]++
	rt.mu.Unlock()
}

func (rt *fakeRuntime) count(key string) int {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.calls[key]
}

func (rt *fakeRuntime) ImportModule(name string) (domain.Handle, error) {
	rt.imports.Add(1)
	rt.record(name)
	m, ok := rt.modules[name]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (rt *fakeRuntime) GetAttribute(h domain.Handle, name string) (domain.Handle, error) {
	rt.getattrs.Add(1)
	parent := h.(*object)
	rt.record(parent.path + "." + name)
	if rt.onGetAttribute != nil {
		rt.onGetAttribute(parent, name)
	}
	a, ok := parent.attrs[name]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

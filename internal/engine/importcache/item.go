package importcache

import (
	"sync"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
)

// session is shared by every item of one Root.
type session struct {
	rt  ports.Runtime
	log ports.Logger
}

// Item is one declared name in the cache tree: a root module, a submodule or
// an attribute. It resolves at most once per session. Root modules and
// submodules are imported by their dotted module name; attributes are read
// off the parent's handle.
type Item struct {
	name     domain.Name
	path     domain.Path
	parent   *Item
	eager    bool
	optional bool
	lazy     bool
	children []*Item
	byField  map[string]*Item
	s        *session

	// dotted is the runtime name joined with every ancestor's, the name a
	// submodule is imported by.
	dotted    string
	submodule bool

	mu     sync.Mutex
	state  domain.ItemState
	handle domain.Handle
	err    error
}

func newItem(s *session, d domain.Declaration, parent *Item) *Item {
	path, dotted := domain.Path(d.Key()), d.Name
	if parent != nil {
		path = parent.path.Child(d.Key())
		dotted = parent.dotted + "." + d.Name
	}
	it := &Item{
		name:      domain.NewName(d.Name),
		path:      path,
		parent:    parent,
		eager:     d.Eager,
		optional:  d.Optional,
		lazy:      d.Lazy,
		s:         s,
		dotted:    dotted,
		submodule: parent != nil && d.Submodule,
	}
	if len(d.Children) > 0 {
		it.children = make([]*Item, 0, len(d.Children))
		it.byField = make(map[string]*Item, len(d.Children))
		for _, cd := range d.Children {
			child := newItem(s, cd, it)
			it.children = append(it.children, child)
			it.byField[cd.Key()] = child
		}
	}
	return it
}

// Name returns the runtime name the item is looked up by.
func (i *Item) Name() string { return i.name.String() }

// Path returns the declared path of the item.
func (i *Item) Path() domain.Path { return i.path }

// Parent returns the enclosing item, or nil for a root module.
func (i *Item) Parent() *Item { return i.parent }

// Children returns the declared children in declaration order.
func (i *Item) Children() []*Item { return i.children }

// Child returns the child declared under field.
func (i *Item) Child(field string) (*Item, bool) {
	c, ok := i.byField[field]
	return c, ok
}

// State returns the current resolution state.
func (i *Item) State() domain.ItemState {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.state
}

// Loaded reports whether the item is resolved.
func (i *Item) Loaded() bool {
	return i.State() == domain.StateResolved
}

// Err returns the stored failure of a Failed item.
func (i *Item) Err() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.err
}

func (i *Item) cached() (domain.Handle, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.handle, i.state == domain.StateResolved
}

// EnsureLoaded resolves the item against parent, the handle of its enclosing
// scope. Root modules ignore parent and import themselves. A child whose
// enclosing item is not Resolved is refused with ErrUsedBeforeParentResolved,
// or with the enclosing item's failure. The lookup happens at most once;
// later calls return nil or the stored failure. After a successful lookup
// every non-lazy child is resolved against the new handle. A child that fails
// stays Failed and does not affect the item itself.
func (i *Item) EnsureLoaded(parent domain.Handle) error {
	return i.ensureLoaded(i.s.rt, parent)
}

// ensureLoaded is EnsureLoaded with the lookups of the item and its eager
// descendants issued on rt.
func (i *Item) ensureLoaded(rt ports.Runtime, parent domain.Handle) error {
	if _, err := i.parentHandle(); err != nil {
		return err
	}

	i.mu.Lock()
	if i.state.IsTerminal() {
		err := i.err
		i.mu.Unlock()
		return err
	}

	h, err := i.lookup(rt, parent)
	if err != nil {
		i.state = domain.StateFailed
		i.err = err
		i.mu.Unlock()
		return err
	}
	i.handle = h
	i.state = domain.StateResolved
	i.mu.Unlock()

	i.loadChildren(rt, h)
	return nil
}

func (i *Item) lookup(rt ports.Runtime, parent domain.Handle) (domain.Handle, error) {
	kind := domain.ErrAttributeUnavailable
	var (
		h   domain.Handle
		err error
	)
	if i.parent == nil || i.submodule {
		kind = domain.ErrModuleUnavailable
		h, err = rt.ImportModule(i.dotted)
	} else {
		h, err = rt.GetAttribute(parent, i.name.String())
	}
	if err != nil || h == nil {
		return nil, &domain.ResolutionError{
			Kind:    kind,
			Path:    i.path,
			Segment: i.name.String(),
			Cause:   err,
		}
	}
	return h, nil
}

// loadChildren primes every non-lazy child with the item's handle.
func (i *Item) loadChildren(rt ports.Runtime, h domain.Handle) {
	for _, c := range i.children {
		if c.lazy {
			continue
		}
		if err := c.ensureLoaded(rt, h); err != nil {
			i.s.log.Warn("attribute unavailable", "path", c.path.String(), "error", err.Error())
		}
	}
}

// GetHandleOrFail returns the cached handle, resolving the item first if
// needed. A child is resolved against its parent's handle, so the parent must
// already be resolved; otherwise ErrUsedBeforeParentResolved is returned.
// If the parent failed, its failure is returned.
func (i *Item) GetHandleOrFail() (domain.Handle, error) {
	i.mu.Lock()
	switch i.state {
	case domain.StateResolved:
		h := i.handle
		i.mu.Unlock()
		return h, nil
	case domain.StateFailed:
		err := i.err
		i.mu.Unlock()
		return nil, err
	}
	i.mu.Unlock()

	parent, err := i.parentHandle()
	if err != nil {
		return nil, err
	}

	if err := i.EnsureLoaded(parent); err != nil {
		return nil, err
	}
	h, _ := i.cached()
	return h, nil
}

// parentHandle returns the enclosing item's handle. It fails if that item is
// Failed or still Unresolved. Resolved and Failed are terminal, so a nil error
// stays valid. Only the parent's lock is taken.
func (i *Item) parentHandle() (domain.Handle, error) {
	if i.parent == nil {
		return nil, nil
	}
	ph, state, perr := i.parent.snapshot()
	switch state {
	case domain.StateFailed:
		return nil, perr
	case domain.StateUnresolved:
		err := &domain.ResolutionError{
			Kind:    domain.ErrUsedBeforeParentResolved,
			Path:    i.path,
			Segment: i.parent.name.String(),
		}
		assertParentResolved(err)
		return nil, err
	}
	return ph, nil
}

func (i *Item) snapshot() (domain.Handle, domain.ItemState, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.handle, i.state, i.err
}

func (i *Item) status() domain.ItemStatus {
	_, state, err := i.snapshot()
	st := domain.ItemStatus{
		Path:      i.path,
		State:     state,
		Eager:     i.eager,
		Optional:  i.optional,
		Lazy:      i.lazy,
		Submodule: i.submodule,
	}
	if err != nil {
		st.Err = err.Error()
	}
	return st
}

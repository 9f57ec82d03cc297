package domain

// ItemStatus is one row of a cache snapshot.
type ItemStatus struct {
	Path      Path
	State     ItemState
	Err       string
	Eager     bool
	Optional  bool
	Lazy      bool
	Submodule bool
}

// Depth returns the nesting level of the row, 0 for root modules.
func (s ItemStatus) Depth() int {
	return s.Path.Depth()
}

// LookupStats counts the foreign lookups performed during a session.
type LookupStats struct {
	Imports    int64
	Attributes int64
	Failures   int64
}

// Total returns the number of lookups of either kind.
func (s LookupStats) Total() int64 {
	return s.Imports + s.Attributes
}

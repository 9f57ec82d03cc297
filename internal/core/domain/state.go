package domain

// ItemState is the resolution state of a cached item.
type ItemState uint8

const (
	// StateUnresolved indicates no lookup has completed yet.
	StateUnresolved ItemState = iota
	// StateResolved indicates the lookup succeeded and the handle is cached.
	StateResolved
	// StateFailed indicates the lookup failed. It is terminal for the session.
	StateFailed
)

// String returns the lower-case name of the state.
func (s ItemState) String() string {
	switch s {
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unresolved"
	}
}

// IsTerminal reports whether no further transition is possible.
func (s ItemState) IsTerminal() bool {
	return s == StateResolved || s == StateFailed
}

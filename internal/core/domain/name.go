package domain

import "unique"

// Name is an interned item name. Attribute names such as "DataFrame" recur
// across many modules, so items share one copy of each.
type Name struct {
	h unique.Handle[string]
}

// NewName interns s.
func NewName(s string) Name {
	return Name{h: unique.Make(s)}
}

// String returns the name.
func (n Name) String() string {
	var zero unique.Handle[string]
	if n.h == zero {
		return ""
	}
	return n.h.Value()
}

// IsZero reports whether the name was never set.
func (n Name) IsZero() bool {
	var zero unique.Handle[string]
	return n.h == zero
}

package domain

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Declaration declares one resolvable name and the children beneath it.
type Declaration struct {
	// Name is looked up on the parent, or imported when the declaration is a root.
	Name string
	// Field is the local identifier used in paths. It defaults to Name.
	Field string
	// Eager resolves a root module during cache initialization.
	Eager bool
	// Optional marks a root module whose absence is expected.
	Optional bool
	// Lazy keeps a child out of its parent's pre-load.
	Lazy bool
	// Submodule makes a child import its dotted module name instead of being
	// read off its parent. Packages do not expose a submodule as an attribute
	// until something has imported it.
	Submodule bool
	// Children are resolved against this declaration's handle.
	Children []Declaration
}

// Key returns the identifier this declaration is reached by.
func (d Declaration) Key() string {
	if d.Field != "" {
		return d.Field
	}
	return d.Name
}

// Module declares a root module with the given children.
func Module(name string, children ...Declaration) Declaration {
	return Declaration{Name: name, Children: children}
}

// Attr declares a child attribute with the given children.
func Attr(name string, children ...Declaration) Declaration {
	return Declaration{Name: name, Children: children}
}

// Attrs declares several leaf attributes at once.
func Attrs(names ...string) []Declaration {
	out := make([]Declaration, len(names))
	for i, n := range names {
		out[i] = Declaration{Name: n}
	}
	return out
}

// AsField returns a copy of d reached by field instead of its name.
func (d Declaration) AsField(field string) Declaration {
	d.Field = field
	return d
}

// AsEager returns a copy of d that is resolved during initialization.
func (d Declaration) AsEager() Declaration {
	d.Eager = true
	return d
}

// AsOptional returns a copy of d whose absence is expected.
func (d Declaration) AsOptional() Declaration {
	d.Optional = true
	return d
}

// AsLazy returns a copy of d excluded from its parent's pre-load.
func (d Declaration) AsLazy() Declaration {
	d.Lazy = true
	return d
}

// AsSubmodule returns a copy of d that is imported by its dotted name.
func (d Declaration) AsSubmodule() Declaration {
	d.Submodule = true
	return d
}

// Schema is the full declarative tree: one declaration per root module.
type Schema struct {
	Modules []Declaration
}

// NewSchema builds a schema from root declarations.
func NewSchema(modules ...Declaration) Schema {
	return Schema{Modules: modules}
}

// Validate checks that every name is a legal segment and that sibling keys are unique.
func (s Schema) Validate() error {
	return validateLevel(s.Modules, "")
}

func validateLevel(decls []Declaration, parent Path) error {
	seen := make(map[string]struct{}, len(decls))
	for _, d := range decls {
		if err := ValidateName(d.Name); err != nil {
			return zerr.With(zerr.Wrap(ErrInvalidDeclaration, err.Error()), "parent", parent.String())
		}
		key := d.Key()
		if err := ValidateName(key); err != nil {
			return zerr.With(zerr.Wrap(ErrInvalidDeclaration, err.Error()), "parent", parent.String())
		}
		path := parent.Child(key)
		if d.Submodule && parent == "" {
			return zerr.With(zerr.Wrap(ErrInvalidDeclaration, "a root module cannot be a submodule"), "path", path.String())
		}
		if _, dup := seen[key]; dup {
			return zerr.With(zerr.Wrap(ErrDuplicateDeclaration, "declared twice"), "path", path.String())
		}
		seen[key] = struct{}{}
		if err := validateLevel(d.Children, path); err != nil {
			return err
		}
	}
	return nil
}

// Merge overlays other onto s and returns the result. Declarations are matched
// by key; flags set on either side stay set and children merge recursively.
// Declarations only present in other are appended in order.
func (s Schema) Merge(other Schema) Schema {
	return Schema{Modules: mergeLevel(s.Modules, other.Modules)}
}

func mergeLevel(base, overlay []Declaration) []Declaration {
	out := make([]Declaration, 0, len(base)+len(overlay))
	index := make(map[string]int, len(base))
	for _, d := range base {
		index[d.Key()] = len(out)
		out = append(out, d)
	}
	for _, d := range overlay {
		i, ok := index[d.Key()]
		if !ok {
			index[d.Key()] = len(out)
			out = append(out, d)
			continue
		}
		merged := out[i]
		merged.Eager = merged.Eager || d.Eager
		merged.Optional = merged.Optional || d.Optional
		merged.Lazy = merged.Lazy || d.Lazy
		merged.Submodule = merged.Submodule || d.Submodule
		merged.Children = mergeLevel(merged.Children, d.Children)
		out[i] = merged
	}
	return out
}

// Paths lists every declared path depth-first in declaration order.
func (s Schema) Paths() []Path {
	var out []Path
	var walk func(decls []Declaration, parent Path)
	walk = func(decls []Declaration, parent Path) {
		for _, d := range decls {
			p := parent.Child(d.Key())
			out = append(out, p)
			walk(d.Children, p)
		}
	}
	walk(s.Modules, "")
	return out
}

// Fingerprint returns a stable hash of the declared shape. Sibling order does
// not affect it.
func (s Schema) Fingerprint() string {
	h := xxhash.New()
	var walk func(decls []Declaration, depth int)
	walk = func(decls []Declaration, depth int) {
		sorted := slices.Clone(decls)
		slices.SortFunc(sorted, func(a, b Declaration) int {
			return strings.Compare(a.Key(), b.Key())
		})
		for _, d := range sorted {
			_, _ = h.WriteString(strconv.Itoa(depth))
			_, _ = h.WriteString(" " + d.Key() + "=" + d.Name)
			_, _ = h.WriteString(" " + flags(d) + "\n")
			walk(d.Children, depth+1)
		}
	}
	walk(s.Modules, 0)
	return strconv.FormatUint(h.Sum64(), 16)
}

func flags(d Declaration) string {
	b := []byte("----")
	if d.Eager {
		b[0] = 'e'
	}
	if d.Optional {
		b[1] = 'o'
	}
	if d.Lazy {
		b[2] = 'l'
	}
	if d.Submodule {
		b[3] = 's'
	}
	return string(b)
}

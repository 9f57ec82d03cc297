// Package domain contains the core types of the import cache: paths, item
// states, the declarative module tree and the errors reported by resolution.
package domain

import (
	"strings"
	"unicode"

	"go.trai.ch/zerr"
)

// Handle is an opaque reference to an object owned by the embedded runtime.
type Handle any

// Path is a dotted path naming a declared item, e.g. "datetime.datetime".
type Path string

// ParsePath validates s and returns it as a Path.
func ParsePath(s string) (Path, error) {
	if s == "" {
		return "", zerr.With(zerr.Wrap(ErrInvalidPath, "path is empty"), "path", s)
	}
	for i, seg := range strings.Split(s, ".") {
		if err := ValidateName(seg); err != nil {
			return "", zerr.With(zerr.With(zerr.Wrap(ErrInvalidPath, err.Error()), "path", s), "segment_index", i)
		}
	}
	return Path(s), nil
}

// ValidateName reports whether name can be used as a single path segment.
func ValidateName(name string) error {
	if name == "" {
		return zerr.New("empty segment")
	}
	for _, r := range name {
		if r == '.' || unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return zerr.With(zerr.New("segment contains an illegal character"), "segment", name)
		}
	}
	return nil
}

// Segments returns the individual names of the path.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), ".")
}

// Root returns the first segment, the name of the root module.
func (p Path) Root() string {
	s := string(p)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// Parent returns the path without its last segment. The parent of a root is "".
func (p Path) Parent() Path {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return Path(s[:i])
	}
	return ""
}

// Base returns the last segment.
func (p Path) Base() string {
	s := string(p)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Child appends name as a new segment.
func (p Path) Child(name string) Path {
	if p == "" {
		return Path(name)
	}
	return Path(string(p) + "." + name)
}

// Depth returns the number of segments below the root module. A root has depth 0.
func (p Path) Depth() int {
	if p == "" {
		return -1
	}
	return strings.Count(string(p), ".")
}

// String returns the dotted form of the path.
func (p Path) String() string {
	return string(p)
}

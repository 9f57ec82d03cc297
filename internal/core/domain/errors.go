package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrModuleUnavailable is returned when a root module cannot be imported by the runtime.
	ErrModuleUnavailable = zerr.New("module unavailable")

	// ErrAttributeUnavailable is returned when a declared child is missing on its resolved parent.
	ErrAttributeUnavailable = zerr.New("attribute unavailable")

	// ErrUsedBeforeParentResolved is returned when a child is resolved while its parent is still unresolved.
	ErrUsedBeforeParentResolved = zerr.New("item used before parent resolved")

	// ErrUndeclaredPath is returned when a path does not name a declared item.
	ErrUndeclaredPath = zerr.New("undeclared path")

	// ErrInvalidPath is returned when a dotted path is malformed.
	ErrInvalidPath = zerr.New("invalid path")

	// ErrInvalidDeclaration is returned when a declaration has an empty or malformed name.
	ErrInvalidDeclaration = zerr.New("invalid declaration")

	// ErrDuplicateDeclaration is returned when two siblings share the same field.
	ErrDuplicateDeclaration = zerr.New("duplicate declaration")

	// ErrAlreadyInitialized is returned when a cache is initialized twice.
	ErrAlreadyInitialized = zerr.New("cache already initialized")

	// ErrCacheClosed is returned when a closed cache is used.
	ErrCacheClosed = zerr.New("cache closed")

	// ErrNoSuchModule is returned by a runtime that has no module of the requested name.
	ErrNoSuchModule = zerr.New("no such module")

	// ErrNoSuchAttribute is returned by a runtime when an object has no attribute of the requested name.
	ErrNoSuchAttribute = zerr.New("no such attribute")

	// ErrForeignHandle is returned by a runtime when it is handed a handle it did not produce.
	ErrForeignHandle = zerr.New("handle not owned by runtime")

	// ErrFileReadFailed is returned when a manifest or overlay file cannot be read.
	ErrFileReadFailed = zerr.New("failed to read file")

	// ErrFileParseFailed is returned when a manifest or overlay file is not valid YAML.
	ErrFileParseFailed = zerr.New("failed to parse file")

	// ErrInvalidSetting is returned when an overlay setting is out of range.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrNoPathsSpecified is returned when resolve is called without paths.
	ErrNoPathsSpecified = zerr.New("no paths specified")

	// ErrResolutionFailed is returned when at least one requested path did not resolve.
	ErrResolutionFailed = zerr.New("resolution failed")

	// ErrUnsupportedVersion is returned when a YAML document declares a version this build cannot read.
	ErrUnsupportedVersion = zerr.New("unsupported file version")
)

// ResolutionError describes a failed lookup of one path segment.
// It matches both its Kind and its Cause under errors.Is.
type ResolutionError struct {
	// Kind is ErrModuleUnavailable, ErrAttributeUnavailable or ErrUsedBeforeParentResolved.
	Kind error
	// Path is the full path of the item that failed.
	Path Path
	// Segment is the name that could not be looked up.
	Segment string
	// Cause is the runtime's error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ResolutionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	b.WriteString(": ")
	b.WriteString(e.Path.String())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes the kind sentinel and the runtime cause.
func (e *ResolutionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

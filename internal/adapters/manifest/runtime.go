// Package manifest implements ports.Runtime over a YAML description of the
// modules installed in an embedded runtime.
package manifest

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the manifest version this build reads.
const SupportedVersion = "1"

// Kind distinguishes module objects from attribute objects.
type Kind string

const (
	KindModule    Kind = "module"
	KindAttribute Kind = "attribute"
)

// Object is a handle produced by a manifest Runtime.
type Object struct {
	QualifiedName string
	Kind          Kind

	owner *Runtime
	attrs map[string]*Object
}

func (o *Object) String() string {
	return fmt.Sprintf("<%s '%s'>", o.Kind, o.QualifiedName)
}

// Runtime serves ImportModule and GetAttribute from a parsed manifest.
// It is safe for concurrent use.
type Runtime struct {
	name    string
	modules map[string]*Object
	missing map[string]string

	calls atomic.Int64
	mu    sync.Mutex
	byKey map[string]int
}

// Parse decodes a manifest document.
func Parse(data []byte) (*Runtime, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFileParseFailed.Error())
	}
	return New(&f)
}

// New builds a Runtime from a decoded manifest.
func New(f *File) (*Runtime, error) {
	if f.Version != "" && f.Version != SupportedVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedVersion, "unsupported manifest"), "version", f.Version)
	}

	r := &Runtime{
		name:    f.Runtime,
		modules: make(map[string]*Object, len(f.Modules)),
		missing: make(map[string]string),
		byKey:   make(map[string]int),
	}
	for name, dto := range f.Modules {
		if err := domain.ValidateName(name); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDeclaration, err.Error()), "module", name)
		}
		if dto != nil && dto.Missing {
			msg := dto.Error
			if msg == "" {
				msg = fmt.Sprintf("No module named '%s'", name)
			}
			r.missing[name] = msg
			continue
		}
		mod := &Object{QualifiedName: name, Kind: KindModule, owner: r}
		if dto != nil {
			attrs, err := r.buildAttributes(name, dto.Attributes)
			if err != nil {
				return nil, err
			}
			mod.attrs = attrs
		}
		r.modules[name] = mod
	}
	return r, nil
}

func (r *Runtime) buildAttributes(parent string, dtos map[string]*AttributeDTO) (map[string]*Object, error) {
	if len(dtos) == 0 {
		return nil, nil
	}
	out := make(map[string]*Object, len(dtos))
	for name, dto := range dtos {
		if err := domain.ValidateName(name); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidDeclaration, err.Error()), "parent", parent)
		}
		qualified := parent + "." + name
		obj := &Object{QualifiedName: qualified, Kind: KindAttribute, owner: r}
		if dto != nil {
			attrs, err := r.buildAttributes(qualified, dto.Attributes)
			if err != nil {
				return nil, err
			}
			obj.attrs = attrs
		}
		out[name] = obj
	}
	return out, nil
}

// Name returns the runtime label from the manifest.
func (r *Runtime) Name() string { return r.name }

// Installed returns the names of the importable modules, sorted.
func (r *Runtime) Installed() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ImportModule returns the module object for name. A dotted name imports a
// submodule: the top-level module must be importable and every later segment
// must be declared among the attributes beneath it.
func (r *Runtime) ImportModule(name string) (domain.Handle, error) {
	r.record(name)
	top, rest, dotted := strings.Cut(name, ".")
	if msg, ok := r.missing[top]; ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSuchModule, msg), "module", name)
	}
	mod, ok := r.modules[top]
	if !ok {
		return nil, noSuchModule(name)
	}
	if !dotted {
		return mod, nil
	}
	for _, seg := range strings.Split(rest, ".") {
		if mod, ok = mod.attrs[seg]; !ok {
			return nil, noSuchModule(name)
		}
	}
	return mod, nil
}

func noSuchModule(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrNoSuchModule, fmt.Sprintf("No module named '%s'", name)), "module", name)
}

// GetAttribute returns the attribute name of h. h must come from this runtime.
func (r *Runtime) GetAttribute(h domain.Handle, name string) (domain.Handle, error) {
	obj, ok := h.(*Object)
	if !ok || obj == nil || obj.owner != r {
		err := zerr.Wrap(domain.ErrForeignHandle, "cannot get attribute")
		return nil, zerr.With(err, "handle_type", fmt.Sprintf("%T", h))
	}
	r.record(obj.QualifiedName + "." + name)
	attr, ok := obj.attrs[name]
	if !ok {
		msg := fmt.Sprintf("%s '%s' has no attribute '%s'", obj.Kind, obj.QualifiedName, name)
		return nil, zerr.With(zerr.Wrap(domain.ErrNoSuchAttribute, msg), "attribute", name)
	}
	return attr, nil
}

func (r *Runtime) record(key string) {
	r.calls.Add(1)
	r.mu.Lock()
	r.byKey[key]++
	r.mu.Unlock()
}

// Calls returns the total number of lookups served.
func (r *Runtime) Calls() int64 {
	return r.calls.Load()
}

// CallsFor returns how often key was looked up. A module key is its name; an
// attribute key is the parent's qualified name joined with the attribute.
func (r *Runtime) CallsFor(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byKey[key]
}

// Package config loads the declaration table: the built-in module trees plus
// an optional YAML overlay.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
	"go.trai.ch/importcache/internal/modules"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SchemaLoader.
type Loader struct {
	Logger ports.Logger
	// Base returns the schema the overlay is merged onto.
	Base func() domain.Schema
}

// NewLoader creates a Loader over the built-in module table.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Base: modules.Builtin}
}

// Load merges the overlay at path onto the base schema. An empty path selects
// DefaultFileName in the working directory. A missing file yields the base
// schema and default settings.
func (l *Loader) Load(path string) (domain.Schema, ports.Settings, error) {
	base := l.Base()
	settings := ports.Settings{PreloadConcurrency: 1}

	if path == "" {
		path = DefaultFileName
	}

	var overlay Overlay
	err := readAndUnmarshalYAML(path, &overlay)
	if errors.Is(err, fs.ErrNotExist) {
		l.Logger.Debug("no overlay file", "path", path)
		return base, settings, nil
	}
	if err != nil {
		return domain.Schema{}, ports.Settings{}, zerr.With(err, "path", path)
	}

	if overlay.Version != "" && overlay.Version != SupportedVersion {
		err := zerr.Wrap(domain.ErrUnsupportedVersion, "unsupported overlay")
		return domain.Schema{}, ports.Settings{}, zerr.With(zerr.With(err, "version", overlay.Version), "path", path)
	}

	if overlay.PreloadConcurrency < 0 {
		err := zerr.Wrap(domain.ErrInvalidSetting, "preload_concurrency must not be negative")
		return domain.Schema{}, ports.Settings{}, zerr.With(err, "path", path)
	}
	if overlay.PreloadConcurrency > 0 {
		settings.PreloadConcurrency = overlay.PreloadConcurrency
	}
	settings.EagerAll = overlay.EagerAll

	schema := base.Merge(domain.NewSchema(toDeclarations(overlay.Modules)...))
	if err := schema.Validate(); err != nil {
		return domain.Schema{}, ports.Settings{}, zerr.With(err, "path", path)
	}

	l.Logger.Debug("overlay applied", "path", path, "modules", len(overlay.Modules))
	return schema, settings, nil
}

func toDeclarations(dtos []*DeclarationDTO) []domain.Declaration {
	out := make([]domain.Declaration, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		out = append(out, domain.Declaration{
			Name:      dto.Name,
			Field:     dto.Field,
			Eager:     dto.Eager,
			Optional:  dto.Optional,
			Lazy:      dto.Lazy,
			Submodule: dto.Submodule,
			Children:  toDeclarations(dto.Children),
		})
	}
	return out
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFileReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrFileParseFailed.Error())
	}

	return nil
}

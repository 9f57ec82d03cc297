package manifest

import (
	"os"

	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.RuntimeLoader for manifest files.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses the manifest at path.
func (l *Loader) Load(path string) (ports.Runtime, error) {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileReadFailed.Error()), "path", path)
	}

	rt, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return rt, nil
}

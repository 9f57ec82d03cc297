package config

// DefaultFileName is the overlay file looked up when no path is given.
const DefaultFileName = "importcache.yaml"

// SupportedVersion is the overlay version this build reads.
const SupportedVersion = "1"

// Overlay is the on-disk shape of importcache.yaml.
type Overlay struct {
	Version            string            `yaml:"version"`
	PreloadConcurrency int               `yaml:"preload_concurrency"`
	EagerAll           bool              `yaml:"eager_all"`
	Modules            []*DeclarationDTO `yaml:"modules"`
}

// DeclarationDTO is one declared name in the overlay.
type DeclarationDTO struct {
	Name      string            `yaml:"name"`
	Field     string            `yaml:"field"`
	Eager     bool              `yaml:"eager"`
	Optional  bool              `yaml:"optional"`
	Lazy      bool              `yaml:"lazy"`
	Submodule bool              `yaml:"submodule"`
	Children  []*DeclarationDTO `yaml:"children"`
}

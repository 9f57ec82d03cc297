package manifest

// File is the on-disk shape of a runtime manifest.
type File struct {
	Version string                `yaml:"version"`
	Runtime string                `yaml:"runtime"`
	Modules map[string]*ModuleDTO `yaml:"modules"`
}

// ModuleDTO describes one importable module.
type ModuleDTO struct {
	// Missing lists the module without letting it import.
	Missing bool `yaml:"missing"`
	// Error overrides the import error message of a missing module.
	Error      string                   `yaml:"error"`
	Attributes map[string]*AttributeDTO `yaml:"attributes"`
}

// AttributeDTO describes an attribute and its own attributes.
type AttributeDTO struct {
	Attributes map[string]*AttributeDTO `yaml:"attributes"`
}

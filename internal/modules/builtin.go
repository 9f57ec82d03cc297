// Package modules declares the module trees the host needs from the embedded
// runtime and exposes typed accessors over them.
package modules

import "go.trai.ch/importcache/internal/core/domain"

// Root module names.
const (
	Datetime    = "datetime"
	Decimal     = "decimal"
	UUID        = "uuid"
	Pathlib     = "pathlib"
	Types       = "types"
	Typing      = "typing"
	Collections = "collections"
	Pytz        = "pytz"
	Numpy       = "numpy"
	Pandas      = "pandas"
	Pyarrow     = "pyarrow"
	Polars      = "polars"
	IPython     = "IPython"
	Ipywidgets  = "ipywidgets"
	Fsspec      = "fsspec"
)

// Builtin returns the declaration table the host ships with. Standard library
// modules the host converts values with on every call are eager; third-party
// packages are optional.
func Builtin() domain.Schema {
	return domain.NewSchema(append(stdlib(), thirdParty()...)...)
}

package modules

import "go.trai.ch/importcache/internal/core/domain"

// Getter resolves a declared dotted path to a handle.
type Getter interface {
	// Get returns the handle at path, resolving it on first use.
	Get(path string) (domain.Handle, error)
}

// Accessors gives the host named access to the handles it converts values
// with. Every accessor returns the resolution error of its path when the
// module or attribute is unavailable.
type Accessors struct {
	g Getter
}

// NewAccessors wraps g.
func NewAccessors(g Getter) Accessors {
	return Accessors{g: g}
}

// DatetimeClass returns datetime.datetime.
func (a Accessors) DatetimeClass() (domain.Handle, error) { return a.g.Get("datetime.datetime") }

// DateClass returns datetime.date.
func (a Accessors) DateClass() (domain.Handle, error) { return a.g.Get("datetime.date") }

// TimeClass returns datetime.time.
func (a Accessors) TimeClass() (domain.Handle, error) { return a.g.Get("datetime.time") }

// TimedeltaClass returns datetime.timedelta.
func (a Accessors) TimedeltaClass() (domain.Handle, error) { return a.g.Get("datetime.timedelta") }

// DecimalClass returns decimal.Decimal.
func (a Accessors) DecimalClass() (domain.Handle, error) { return a.g.Get("decimal.Decimal") }

// UUIDClass returns uuid.UUID.
func (a Accessors) UUIDClass() (domain.Handle, error) { return a.g.Get("uuid.UUID") }

// PathClass returns pathlib.Path.
func (a Accessors) PathClass() (domain.Handle, error) { return a.g.Get("pathlib.Path") }

// MappingABC returns collections.abc.Mapping.
func (a Accessors) MappingABC() (domain.Handle, error) { return a.g.Get("collections.abc.Mapping") }

// IterableABC returns collections.abc.Iterable.
func (a Accessors) IterableABC() (domain.Handle, error) { return a.g.Get("collections.abc.Iterable") }

// UnionType returns types.UnionType, the type of X | Y annotations.
func (a Accessors) UnionType() (domain.Handle, error) { return a.g.Get("types.UnionType") }

// NumpyNdarray returns numpy.ndarray.
func (a Accessors) NumpyNdarray() (domain.Handle, error) { return a.g.Get("numpy.ndarray") }

// NumpyMasked returns the numpy.ma.masked constant.
func (a Accessors) NumpyMasked() (domain.Handle, error) { return a.g.Get("numpy.ma.masked") }

// PandasDataFrame returns pandas.DataFrame.
func (a Accessors) PandasDataFrame() (domain.Handle, error) { return a.g.Get("pandas.DataFrame") }

// PandasNA returns the pandas.NA missing-value singleton.
func (a Accessors) PandasNA() (domain.Handle, error) { return a.g.Get("pandas.NA") }

// PandasNAType returns the type of pandas.NA.
func (a Accessors) PandasNAType() (domain.Handle, error) {
	return a.g.Get("pandas._libs.missing.NAType")
}

// ArrowTable returns pyarrow.Table.
func (a Accessors) ArrowTable() (domain.Handle, error) { return a.g.Get("pyarrow.Table") }

// ArrowScanner returns pyarrow.dataset.Scanner.
func (a Accessors) ArrowScanner() (domain.Handle, error) { return a.g.Get("pyarrow.dataset.Scanner") }

// PolarsDataFrame returns polars.DataFrame.
func (a Accessors) PolarsDataFrame() (domain.Handle, error) { return a.g.Get("polars.DataFrame") }

// IPythonDisplay returns the IPython.display.display function.
func (a Accessors) IPythonDisplay() (domain.Handle, error) {
	return a.g.Get("IPython.display.display")
}

// TimezoneFactory returns pytz.timezone.
func (a Accessors) TimezoneFactory() (domain.Handle, error) { return a.g.Get("pytz.timezone") }

// Available reports whether module resolves. An undeclared module reports
// false.
func (a Accessors) Available(module string) bool {
	_, err := a.g.Get(module)
	return err == nil
}

package modules

import "go.trai.ch/importcache/internal/core/domain"

// numpyScalars are the scalar types the host maps to native numeric types.
var numpyScalars = []string{
	"bool_", "byte", "ubyte", "short", "ushort", "intc", "uintc", "int_", "uint",
	"longlong", "ulonglong", "half", "float16", "single", "longdouble",
	"csingle", "cdouble", "clongdouble",
}

func thirdParty() []domain.Declaration {
	numpy := append(
		domain.Attrs("ndarray", "datetime64", "generic", "int64"),
		domain.Attrs(numpyScalars...)...,
	)
	numpy = append(numpy, domain.Attr("ma", domain.Attr("masked")).AsSubmodule())

	pandas := append(
		domain.Attrs("DataFrame", "Series", "Categorical", "CategoricalDtype", "isnull", "NaT", "NA"),
		// ArrowDtype only exists from pandas 1.5 on.
		domain.Attr("ArrowDtype").AsLazy(),
		domain.Attr("_libs", domain.Attr("missing", domain.Attr("NAType"))),
	)

	return []domain.Declaration{
		domain.Module(Pytz, domain.Attr("timezone")).AsOptional(),
		domain.Module(Numpy, numpy...).AsOptional(),
		domain.Module(Pandas, pandas...).AsOptional(),
		domain.Module(Pyarrow,
			domain.Attr("Table"),
			domain.Attr("RecordBatchReader"),
			domain.Attr("dataset", domain.Attrs("Scanner", "Dataset")...).AsSubmodule(),
			domain.Attr("ipc", domain.Attr("MessageReader")).AsSubmodule(),
		).AsOptional(),
		domain.Module(Polars, domain.Attrs("DataFrame", "LazyFrame")...).AsOptional(),
		domain.Module(IPython, domain.Attr("display", domain.Attr("display")).AsSubmodule()).AsOptional(),
		domain.Module(Ipywidgets, domain.Attr("FloatProgress")).AsOptional(),
		domain.Module(Fsspec, domain.Attrs("filesystem", "AbstractFileSystem")...).AsOptional(),
	}
}

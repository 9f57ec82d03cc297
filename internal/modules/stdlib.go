package modules

import "go.trai.ch/importcache/internal/core/domain"

func stdlib() []domain.Declaration {
	return []domain.Declaration{
		domain.Module(Datetime, domain.Attrs("datetime", "date", "time", "timedelta")...).AsEager(),
		domain.Module(Decimal, domain.Attr("Decimal")).AsEager(),
		domain.Module(UUID, domain.Attr("UUID")).AsEager(),
		domain.Module(Pathlib, domain.Attr("Path")),
		domain.Module(Types, domain.Attrs("UnionType", "GenericAlias", "BuiltinFunctionType")...),
		domain.Module(Typing, domain.Attrs("Union", "_UnionGenericAlias")...),
		domain.Module(Collections,
			domain.Attr("abc", domain.Attrs("Iterable", "Mapping")...).AsSubmodule(),
		),
	}
}

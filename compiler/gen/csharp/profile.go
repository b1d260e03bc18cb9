package csharp

import "github.com/syssam/layergen/compiler/gen"

// profileSkeleton renders the mapping profile. Every map is op-gated:
// the DTO map needs the read artifacts and the command maps need their
// write artifacts, so a delete-only profile renders an empty (still
// valid) constructor.
const profileSkeleton = `using AutoMapper;
using {{.Namespace}}.Domain.Entities;
{{- slot "usings" }}

namespace {{.Namespace}}.Application.{{.Plural}};

public class {{.Type}} : Profile
{
    public {{.Type}}()
    {
{{- slot "maps" }}
    }
}
`

func profileFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("usings", gen.HasOp(gen.OpRead),
			`using {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Plural}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpCreate),
			`using {{.Namespace}}.Application.{{.Plural}}.Commands.Create{{.Singular}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpUpdate),
			`using {{.Namespace}}.Application.{{.Plural}}.Commands.Update{{.Singular}};`),
		gen.MustFragment("maps", gen.HasOp(gen.OpRead),
			`        CreateMap<{{.Singular}}, {{.Singular}}Dto>();`),
		gen.MustFragment("maps", gen.HasOp(gen.OpCreate),
			`        CreateMap<Create{{.Singular}}Command, {{.Singular}}>();`),
		gen.MustFragment("maps", gen.HasOp(gen.OpUpdate),
			`        CreateMap<Update{{.Singular}}Command, {{.Singular}}>();`),
	}
}

package csharp

import "github.com/syssam/layergen/compiler/gen"

// listQuerySkeleton renders the list query with the read DTO it
// returns. The DTO lives beside the query so read artifacts never
// depend on write artifacts.
func listQuerySkeleton(banners bool) string {
	header := ""
	if banners {
		header = "/// <summary>\n/// Lists all {{.CamelPlural}}.\n/// </summary>\n"
	}
	return `using MediatR;
using {{.Namespace}}.Domain.Entities;

namespace {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Plural}};

` + header + `public record Get{{.Plural}}Query : IRequest<IReadOnlyList<{{.Singular}}Dto>>;

public record {{.Singular}}Dto
{
{{- slot "dto-members" }}
}

public class Get{{.Plural}}QueryHandler
{
    private readonly I{{.Singular}}Repository _repository;

    public Get{{.Plural}}QueryHandler(I{{.Singular}}Repository repository)
    {
        _repository = repository;
    }

    public async Task<IReadOnlyList<{{.Singular}}Dto>> Handle(Get{{.Plural}}Query request, CancellationToken cancellationToken)
    {
        var entities = await _repository.ListAsync(cancellationToken);
        return entities.Select({{.Camel}} => new {{.Singular}}Dto
        {
{{- slot "dto-assignments" }}
        }).ToList();
    }
}
`
}

func listQueryFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("dto-members", gen.Always,
			`    public Guid Id { get; init; }
    public string Name { get; init; } = string.Empty;`),
		gen.MustFragment("dto-members", gen.TierAtLeast(gen.TierAudited),
			`    public DateTime CreationTime { get; init; }`),
		gen.MustFragment("dto-assignments", gen.Always,
			`            Id = {{.Camel}}.Id,
            Name = {{.Camel}}.Name,`),
		gen.MustFragment("dto-assignments", gen.TierAtLeast(gen.TierAudited),
			`            CreationTime = {{.Camel}}.CreationTime,`),
	}
}

// byIDQuerySkeleton renders the single-record query. It reuses the DTO
// declared by the list query, which the planner always includes
// alongside it.
func byIDQuerySkeleton(banners bool) string {
	header := ""
	if banners {
		header = "/// <summary>\n/// Fetches one {{.Camel}} by its identifier.\n/// </summary>\n"
	}
	return `using MediatR;
using {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Plural}};
using {{.Namespace}}.Domain.Entities;

namespace {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Singular}}ById;

` + header + `public record Get{{.Singular}}ByIdQuery(Guid Id) : IRequest<{{.Singular}}Dto?>;

public class Get{{.Singular}}ByIdQueryHandler
{
    private readonly I{{.Singular}}Repository _repository;

    public Get{{.Singular}}ByIdQueryHandler(I{{.Singular}}Repository repository)
    {
        _repository = repository;
    }

    public async Task<{{.Singular}}Dto?> Handle(Get{{.Singular}}ByIdQuery request, CancellationToken cancellationToken)
    {
        var {{.Camel}} = await _repository.FindAsync(request.Id, cancellationToken);
        if ({{.Camel}} is null)
        {
            return null;
        }
        return new {{.Singular}}Dto
        {
{{- slot "dto-assignments" }}
        };
    }
}
`
}

func byIDQueryFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("dto-assignments", gen.Always,
			`            Id = {{.Camel}}.Id,
            Name = {{.Camel}}.Name,`),
		gen.MustFragment("dto-assignments", gen.TierAtLeast(gen.TierAudited),
			`            CreationTime = {{.Camel}}.CreationTime,`),
	}
}

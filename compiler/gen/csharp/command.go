package csharp

import "github.com/syssam/layergen/compiler/gen"

// commandSkeleton renders one write command together with its handler.
// Op-specific shape (payload members, return type) is resolved from the
// descriptor; plan-gated behavior (event publication) comes in through
// slots.
func commandSkeleton(banners bool) string {
	header := ""
	if banners {
		header = "/// <summary>\n/// {{.Op}}s a {{.Camel}}.\n/// </summary>\n"
	}
	return `using MediatR;
using {{.Namespace}}.Domain.Entities;
{{- slot "usings" }}

namespace {{.Namespace}}.Application.{{.Plural}}.Commands.{{.Op}}{{.Singular}};

` + header + `public record {{.Type}} : IRequest<{{if eq .Op "Create"}}Guid{{else}}Unit{{end}}>
{
{{- slot "command-members" }}
}

public class {{.Op}}{{.Singular}}CommandHandler
{
    private readonly I{{.Singular}}Repository _repository;
{{- slot "handler-fields" }}

    public {{.Op}}{{.Singular}}CommandHandler(I{{.Singular}}Repository repository{{inline "handler-ctor-args"}})
    {
        _repository = repository;
{{- slot "handler-ctor-body" }}
    }

    public async Task<{{if eq .Op "Create"}}Guid{{else}}Unit{{end}}> Handle({{.Type}} request, CancellationToken cancellationToken)
    {
{{- slot "handle-body" }}
    }
}
`
}

func commandFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("command-members", gen.Always,
			`{{if ne .Op "Create"}}    public Guid Id { get; init; }
{{end}}{{if ne .Op "Delete"}}    public string Name { get; init; } = string.Empty;{{end}}`),
		gen.MustFragment("usings", eventsOn,
			`using {{.Namespace}}.Domain.Events;`),
		gen.MustFragment("handler-fields", eventsOn,
			`    private readonly IEventPublisher _publisher;`),
		gen.MustFragment("handler-ctor-args", eventsOn,
			`, IEventPublisher publisher`),
		gen.MustFragment("handler-ctor-body", eventsOn,
			`        _publisher = publisher;`),
		gen.MustFragment("handle-body", gen.Always,
			`{{if eq .Op "Create"}}        var entity = new {{.Singular}} { Id = Guid.NewGuid(), Name = request.Name };
        await _repository.AddAsync(entity, cancellationToken);
{{else if eq .Op "Update"}}        var entity = await _repository.GetAsync(request.Id, cancellationToken);
        entity.Name = request.Name;
        await _repository.UpdateAsync(entity, cancellationToken);
{{else}}        await _repository.DeleteAsync(request.Id, cancellationToken);
{{end}}`),
		gen.MustFragment("handle-body", eventsOn,
			`        await _publisher.PublishAsync(new {{.Singular}}{{.OpPast}}Event { Id = {{if eq .Op "Create"}}entity.Id{{else}}request.Id{{end}} }, cancellationToken);`),
		gen.MustFragment("handle-body", gen.Always,
			`        return {{if eq .Op "Create"}}entity.Id{{else}}Unit.Value{{end}};`),
	}
}

// eventsOn mirrors the planner's event rule so handler wiring and event
// artifacts always agree.
func eventsOn(p *gen.Plan) bool {
	return gen.EventsEnabled(p)
}

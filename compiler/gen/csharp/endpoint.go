package csharp

import "github.com/syssam/layergen/compiler/gen"

// endpointSkeleton renders the controller exposing every requested
// operation. Each action is an op-gated fragment; the authorization
// attribute inside a fragment follows the access-control flag so any
// flag combination stays well-formed.
const endpointSkeleton = `using MediatR;
using Microsoft.AspNetCore.Mvc;
{{- slot "usings" }}

namespace {{.Namespace}}.Api.Controllers;

[ApiController]
[Route("api/{{.CamelPlural}}")]
public class {{.Type}} : ControllerBase
{
    private readonly ISender _sender;

    public {{.Type}}(ISender sender)
    {
        _sender = sender;
    }
{{- slot "actions" }}
}
`

func endpointFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("usings", gen.PermissionsEnabled,
			`using Microsoft.AspNetCore.Authorization;
using {{.Namespace}}.Application.{{.Plural}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpCreate),
			`using {{.Namespace}}.Application.{{.Plural}}.Commands.Create{{.Singular}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpUpdate),
			`using {{.Namespace}}.Application.{{.Plural}}.Commands.Update{{.Singular}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpDelete),
			`using {{.Namespace}}.Application.{{.Plural}}.Commands.Delete{{.Singular}};`),
		gen.MustFragment("usings", gen.HasOp(gen.OpRead),
			`using {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Plural}};
using {{.Namespace}}.Application.{{.Plural}}.Queries.Get{{.Singular}}ById;`),

		gen.MustFragment("actions", gen.HasOp(gen.OpRead), `
{{if .Permissions}}    [Authorize(Policy = {{.Plural}}Permissions.View)]
{{end}}    [HttpGet]
    public async Task<IActionResult> GetAll(CancellationToken cancellationToken)
    {
        var result = await _sender.Send(new Get{{.Plural}}Query(), cancellationToken);
        return Ok(result);
    }

{{if .Permissions}}    [Authorize(Policy = {{.Plural}}Permissions.View)]
{{end}}    [HttpGet("{id:guid}")]
    public async Task<IActionResult> GetById(Guid id, CancellationToken cancellationToken)
    {
        var result = await _sender.Send(new Get{{.Singular}}ByIdQuery(id), cancellationToken);
        return result is null ? NotFound() : Ok(result);
    }`),

		gen.MustFragment("actions", gen.HasOp(gen.OpCreate), `
{{if .Permissions}}    [Authorize(Policy = {{.Plural}}Permissions.Create)]
{{end}}    [HttpPost]
    public async Task<IActionResult> Create(Create{{.Singular}}Command command, CancellationToken cancellationToken)
    {
        var id = await _sender.Send(command, cancellationToken);
        return CreatedAtAction(nameof(Create), new { id }, id);
    }`),

		gen.MustFragment("actions", gen.HasOp(gen.OpUpdate), `
{{if .Permissions}}    [Authorize(Policy = {{.Plural}}Permissions.Update)]
{{end}}    [HttpPut("{id:guid}")]
    public async Task<IActionResult> Update(Guid id, Update{{.Singular}}Command command, CancellationToken cancellationToken)
    {
        await _sender.Send(command with { Id = id }, cancellationToken);
        return NoContent();
    }`),

		gen.MustFragment("actions", gen.HasOp(gen.OpDelete), `
{{if .Permissions}}    [Authorize(Policy = {{.Plural}}Permissions.Delete)]
{{end}}    [HttpDelete("{id:guid}")]
    public async Task<IActionResult> Delete(Guid id, CancellationToken cancellationToken)
    {
        await _sender.Send(new Delete{{.Singular}}Command { Id = id }, cancellationToken);
        return NoContent();
    }`),
	}
}

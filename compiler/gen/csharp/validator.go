package csharp

import "github.com/syssam/layergen/compiler/gen"

// validatorSkeleton renders the FluentValidation rule set for one write
// command. Rules are op-shaped; the identity rule only applies to
// commands addressing an existing record.
const validatorSkeleton = `using FluentValidation;

namespace {{.Namespace}}.Application.{{.Plural}}.Commands.{{.Op}}{{.Singular}};

public class {{.Type}} : AbstractValidator<{{.Op}}{{.Singular}}Command>
{
    public {{.Type}}()
    {
{{- slot "rules" }}
    }
}
`

func validatorFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("rules", gen.Always,
			`{{if ne .Op "Create"}}        RuleFor(x => x.Id).NotEmpty();
{{end}}{{if ne .Op "Delete"}}        RuleFor(x => x.Name).NotEmpty().MaximumLength(256);{{end}}`),
	}
}

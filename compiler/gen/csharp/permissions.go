package csharp

import "github.com/syssam/layergen/compiler/gen"

// permissionsSkeleton renders the access-control constants. Only the
// requested operations get a constant; the group name is always
// present so policies can be registered even for read-only entities.
const permissionsSkeleton = `namespace {{.Namespace}}.Application.{{.Plural}};

public static class {{.Type}}
{
    public const string Group = "{{.Plural}}";
{{- slot "permissions" }}
}
`

func permissionsFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("permissions", gen.HasOp(gen.OpRead),
			`    public const string View = "{{.Plural}}.View";`),
		gen.MustFragment("permissions", gen.HasOp(gen.OpCreate),
			`    public const string Create = "{{.Plural}}.Create";`),
		gen.MustFragment("permissions", gen.HasOp(gen.OpUpdate),
			`    public const string Update = "{{.Plural}}.Update";`),
		gen.MustFragment("permissions", gen.HasOp(gen.OpDelete),
			`    public const string Delete = "{{.Plural}}.Delete";`),
	}
}

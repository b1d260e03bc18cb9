package csharp

import "github.com/syssam/layergen/compiler/gen"

// modelSkeleton renders the domain entity class. The base class and the
// explicit audit members both follow the plan's entity tier, so every
// tier strictly extends the one below it.
func modelSkeleton(banners bool) string {
	header := ""
	if banners {
		header = "/// <summary>\n/// {{.Singular}} aggregate root.\n/// </summary>\n"
	}
	return `using System;

namespace {{.Namespace}}.Domain.Entities;

` + header + `public class {{.Singular}} : {{.BaseClass}}
{
{{- slot "members" }}
}
`
}

func modelFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("members", gen.Always,
			`    public Guid Id { get; set; }
    public string Name { get; set; } = string.Empty;`),
		gen.MustFragment("members", gen.TierAtLeast(gen.TierAudited),
			`    public DateTime CreationTime { get; set; }
    public Guid? CreatorId { get; set; }
    public DateTime? LastModificationTime { get; set; }
    public Guid? LastModifierId { get; set; }`),
		gen.MustFragment("members", gen.TierAtLeast(gen.TierFullyAudited),
			`    public bool IsDeleted { get; set; }
    public DateTime? DeletionTime { get; set; }
    public Guid? DeleterId { get; set; }`),
	}
}

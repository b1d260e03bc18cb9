package csharp

import "github.com/syssam/layergen/compiler/gen"

// persistenceSkeleton renders the persistence mapping between the
// entity and its table. Column mappings follow the tier the model was
// generated with, and fully audited entities get a soft-delete filter.
const persistenceSkeleton = `using Microsoft.EntityFrameworkCore;
using Microsoft.EntityFrameworkCore.Metadata.Builders;
using {{.Namespace}}.Domain.Entities;

namespace {{.Namespace}}.Persistence.Configurations;

public class {{.Type}} : IEntityTypeConfiguration<{{.Singular}}>
{
    public void Configure(EntityTypeBuilder<{{.Singular}}> builder)
    {
        builder.ToTable("{{.Plural}}");
        builder.HasKey(x => x.Id);
{{- slot "columns" }}
    }
}
`

func persistenceFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("columns", gen.Always,
			`        builder.Property(x => x.Name).HasMaxLength(256).IsRequired();`),
		gen.MustFragment("columns", gen.TierAtLeast(gen.TierAudited),
			`        builder.Property(x => x.CreationTime).IsRequired();
        builder.Property(x => x.CreatorId);
        builder.Property(x => x.LastModificationTime);
        builder.Property(x => x.LastModifierId);`),
		gen.MustFragment("columns", gen.TierAtLeast(gen.TierFullyAudited),
			`        builder.Property(x => x.IsDeleted).HasDefaultValue(false);
        builder.Property(x => x.DeletionTime);
        builder.Property(x => x.DeleterId);
        builder.HasQueryFilter(x => !x.IsDeleted);`),
	}
}

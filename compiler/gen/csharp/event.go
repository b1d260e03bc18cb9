package csharp

import "github.com/syssam/layergen/compiler/gen"

// eventSkeleton renders one domain event per write operation. Audited
// tiers carry the acting user on the event payload.
const eventSkeleton = `using System;

namespace {{.Namespace}}.Domain.Events;

public record {{.Type}}
{
    public Guid Id { get; init; }
    public DateTime OccurredAt { get; init; } = DateTime.UtcNow;
{{- slot "event-members" }}
}
`

func eventFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("event-members", gen.TierAtLeast(gen.TierAudited),
			`    public Guid? ActorId { get; init; }`),
	}
}

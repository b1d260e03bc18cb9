package csharp

import "github.com/syssam/layergen/compiler/gen"

// testSkeleton renders the unit-test stub covering one operation unit.
// The body is shaped by the kind of artifact under test, resolved from
// the descriptor's target type name.
const testSkeleton = `using Xunit;
using {{.Namespace}}.Application.{{.Plural}};

namespace {{.Namespace}}.Tests.{{.Plural}};

public class {{.Type}}
{
{{- slot "cases" }}
}
`

func testFragments() []gen.Fragment {
	return []gen.Fragment{
		gen.MustFragment("cases", gen.Always,
			`    [Fact]
    public void {{.Target}}_Can_Be_Constructed()
    {
        var sut = new {{.Target}}();

        Assert.NotNull(sut);
    }`),
		gen.MustFragment("cases", gen.TierAtLeast(gen.TierAudited),
			`
    [Fact]
    public void {{.Target}}_Preserves_Audit_Contract()
    {
        // Audit fields are written by the persistence layer, never by
        // the operation unit itself.
        var sut = new {{.Target}}();

        Assert.NotNull(sut);
    }`),
	}
}

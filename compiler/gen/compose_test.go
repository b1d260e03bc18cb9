package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/layergen/compiler/load"
)

func composeTestSet() *Set {
	return NewSet("test").MustSkeleton(KindModel, `class {{.Singular}}
{
{{- slot "members" }}
}
`,
		MustFragment("members", Always, `    id {{.Camel}}`),
		MustFragment("members", TierAtLeast(TierAudited), `    audit`),
		MustFragment("members", TierAtLeast(TierFullyAudited), `    soft-delete`),
	)
}

func modelDescriptor(t *testing.T, plan *Plan) *Descriptor {
	t.Helper()
	ds, err := PlanArtifacts(plan, nil)
	require.NoError(t, err)
	for _, d := range ds {
		if d.Kind == KindModel {
			return d
		}
	}
	t.Fatal("no model descriptor planned")
	return nil
}

func TestCompose(t *testing.T) {
	set := composeTestSet()

	t.Run("empty slot leaves no marker or blank line", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", Create: true}, &load.Defaults{})
		bare := NewSet("bare").MustSkeleton(KindModel, `class {{.Singular}}
{
{{- slot "members" }}
}
`)
		a, err := bare.Compose(plan, modelDescriptor(t, plan))
		require.NoError(t, err)
		assert.Equal(t, "class Order\n{\n}\n", a.Content)
	})

	t.Run("active fragments fill the slot in order", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, EntityType: "audited"},
			&load.Defaults{})
		a, err := set.Compose(plan, modelDescriptor(t, plan))
		require.NoError(t, err)
		assert.Equal(t, "class Order\n{\n    id order\n    audit\n}\n", a.Content)
	})

	t.Run("tier capabilities are monotonic", func(t *testing.T) {
		var contents []string
		for _, tier := range []string{"basic", "audited", "fullyaudited"} {
			plan := testPlan(t,
				&load.Options{Name: "order", Create: true, EntityType: tier},
				&load.Defaults{})
			a, err := set.Compose(plan, modelDescriptor(t, plan))
			require.NoError(t, err)
			contents = append(contents, a.Content)
		}
		assert.Contains(t, contents[1], "    id order")
		assert.Contains(t, contents[1], "    audit")
		assert.NotContains(t, contents[0], "audit")
		assert.Contains(t, contents[2], "    audit")
		assert.Contains(t, contents[2], "    soft-delete")
		assert.NotContains(t, contents[1], "soft-delete")
	})

	t.Run("identical inputs render identical content", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, EntityType: "fullyaudited"},
			&load.Defaults{})
		d := modelDescriptor(t, plan)
		first, err := set.Compose(plan, d)
		require.NoError(t, err)
		second, err := set.Compose(plan, d)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing skeleton is an error", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", Create: true}, &load.Defaults{})
		_, err := set.Compose(plan, &Descriptor{Kind: KindEndpoint})
		require.Error(t, err)
	})
}

func TestPredicates(t *testing.T) {
	audited := testPlan(t,
		&load.Options{Name: "order", Create: true, Update: true, EntityType: "audited"},
		&load.Defaults{GenerateEvents: true, GeneratePermissions: true, GenerateMappingProfiles: true})
	basic := testPlan(t, &load.Options{Name: "order", Create: true}, &load.Defaults{})

	assert.True(t, Always(basic))
	assert.True(t, TierAtLeast(TierAudited)(audited))
	assert.False(t, TierAtLeast(TierFullyAudited)(audited))
	assert.True(t, HasOp(OpUpdate)(audited))
	assert.False(t, HasOp(OpDelete)(audited))
	assert.True(t, EventsEnabled(audited))
	assert.False(t, EventsEnabled(basic), "single operation never triggers events")
	assert.True(t, PermissionsEnabled(audited))
	assert.False(t, PermissionsEnabled(basic))
	assert.True(t, ProfilesEnabled(audited))
	assert.False(t, ProfilesEnabled(basic))
	assert.True(t, And(HasOp(OpCreate), TierAtLeast(TierAudited))(audited))
	assert.False(t, And(HasOp(OpCreate), HasOp(OpDelete))(audited))
	assert.True(t, Not(HasOp(OpDelete))(audited))
}

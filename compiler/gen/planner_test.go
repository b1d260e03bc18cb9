package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/layergen/compiler/load"
)

func testPlan(t *testing.T, opts *load.Options, defs *load.Defaults) *Plan {
	t.Helper()
	plan, err := ResolvePlan(opts, defs)
	require.NoError(t, err)
	return plan
}

func countByCategory(ds []*Descriptor) map[Category]int {
	counts := make(map[Category]int)
	for _, d := range ds {
		counts[d.Category]++
	}
	return counts
}

func TestPlanArtifacts(t *testing.T) {
	t.Run("create and read on an audited entity", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, Read: true, EntityType: "audited"},
			&load.Defaults{GenerateTests: true, GeneratePermissions: true})

		ds, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)

		counts := countByCategory(ds)
		assert.Equal(t, 1, counts[CategoryModel])
		assert.Equal(t, 2, counts[CategoryWriteOp])
		assert.Equal(t, 2, counts[CategoryReadOp])
		assert.Equal(t, 1, counts[CategoryMapping])
		assert.Equal(t, 1, counts[CategoryEndpoint])
		assert.Equal(t, 1, counts[CategoryAccessControl])
		assert.Equal(t, 4, counts[CategoryTest])
		assert.Len(t, ds, 12)

		byName := make(map[string]*Descriptor)
		for _, d := range ds {
			byName[d.LogicalName] = d
		}
		assert.Equal(t, "Domain/Entities/Order.cs", byName["model"].RelativePath)
		assert.Equal(t, "Application/Orders/Commands/CreateOrder/CreateOrderCommand.cs", byName["create-command"].RelativePath)
		assert.Equal(t, "Application/Orders/Queries/GetOrders/GetOrdersQuery.cs", byName["list-query"].RelativePath)
		assert.Equal(t, "Persistence/Configurations/OrderConfiguration.cs", byName["persistence"].RelativePath)
		assert.Equal(t, "Api/Controllers/OrdersController.cs", byName["endpoint"].RelativePath)
		assert.Equal(t, "Tests/Orders/CreateOrderCommandTests.cs", byName["create-command-tests"].RelativePath)
	})

	t.Run("events need more than one operation", func(t *testing.T) {
		single := testPlan(t, &load.Options{Name: "order", Create: true},
			&load.Defaults{GenerateEvents: true})
		ds, err := PlanArtifacts(single, nil)
		require.NoError(t, err)
		for _, d := range ds {
			assert.NotEqual(t, KindEvent, d.Kind)
		}

		multi := testPlan(t, &load.Options{Name: "order", Create: true, Update: true},
			&load.Defaults{GenerateEvents: true})
		ds, err = PlanArtifacts(multi, nil)
		require.NoError(t, err)
		var events []*Descriptor
		for _, d := range ds {
			if d.Kind == KindEvent {
				events = append(events, d)
			}
		}
		require.Len(t, events, 2)
		assert.Equal(t, "OrderCreatedEvent", events[0].TypeName)
		assert.Equal(t, "OrderUpdatedEvent", events[1].TypeName)
	})

	t.Run("read operations produce no events", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", Create: true, Read: true},
			&load.Defaults{GenerateEvents: true})
		ds, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)
		count := 0
		for _, d := range ds {
			if d.Kind == KindEvent {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("mapping profile descriptor", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", All: true},
			&load.Defaults{GenerateMappingProfiles: true})
		ds, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)
		counts := countByCategory(ds)
		assert.Equal(t, 2, counts[CategoryMapping])
	})

	t.Run("paths are unique", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", All: true}, &load.Defaults{
			GenerateTests: true, GeneratePermissions: true,
			GenerateEvents: true, GenerateMappingProfiles: true,
		})
		ds, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, d := range ds {
			assert.False(t, seen[d.RelativePath], "duplicate path %s", d.RelativePath)
			seen[d.RelativePath] = true
		}
	})

	t.Run("dependencies precede dependents", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", All: true}, &load.Defaults{
			GenerateTests: true, GeneratePermissions: true,
			GenerateEvents: true, GenerateMappingProfiles: true,
		})
		ds, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)

		position := make(map[string]int)
		for i, d := range ds {
			position[d.LogicalName] = i
		}
		for _, d := range ds {
			for _, dep := range d.DependsOn {
				depPos, ok := position[dep]
				if !ok {
					continue
				}
				assert.Less(t, depPos, position[d.LogicalName],
					"%s must be emitted before %s", dep, d.LogicalName)
			}
		}
	})

	t.Run("planning is deterministic", func(t *testing.T) {
		plan := testPlan(t, &load.Options{Name: "order", All: true}, &load.Defaults{
			GenerateTests: true, GeneratePermissions: true,
			GenerateEvents: true, GenerateMappingProfiles: true,
		})
		first, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)
		second, err := PlanArtifacts(plan, nil)
		require.NoError(t, err)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, *first[i], *second[i])
		}
	})

	t.Run("tests flag only adds test descriptors", func(t *testing.T) {
		base := &load.Options{Name: "order", Create: true, Read: true}
		without, err := PlanArtifacts(testPlan(t, base, &load.Defaults{}), nil)
		require.NoError(t, err)
		with, err := PlanArtifacts(testPlan(t, base, &load.Defaults{GenerateTests: true}), nil)
		require.NoError(t, err)

		strip := func(ds []*Descriptor) []string {
			var paths []string
			for _, d := range ds {
				if d.Category != CategoryTest {
					paths = append(paths, d.RelativePath)
				}
			}
			return paths
		}
		assert.Equal(t, strip(without), strip(with))
	})
}

func TestPlanArtifactsInventory(t *testing.T) {
	const modelPath = "Domain/Entities/Order.cs"

	t.Run("existing model with same tier is skipped", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, EntityType: "audited"},
			&load.Defaults{})
		ds, err := PlanArtifacts(plan, ModelInventory{modelPath: TierAudited})
		require.NoError(t, err)
		for _, d := range ds {
			assert.NotEqual(t, KindModel, d.Kind)
		}
	})

	t.Run("existing model with different tier conflicts", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, EntityType: "fullyaudited"},
			&load.Defaults{})
		_, err := PlanArtifacts(plan, ModelInventory{modelPath: TierBasic})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrConflictingArtifact)
		assert.True(t, IsConflictError(err))
	})

	t.Run("events survive a skipped model", func(t *testing.T) {
		plan := testPlan(t,
			&load.Options{Name: "order", Create: true, Update: true},
			&load.Defaults{GenerateEvents: true})
		ds, err := PlanArtifacts(plan, ModelInventory{modelPath: TierBasic})
		require.NoError(t, err)
		count := 0
		for _, d := range ds {
			if d.Kind == KindEvent {
				count++
			}
		}
		assert.Equal(t, 2, count)
	})
}

func TestCheckPathConflicts(t *testing.T) {
	err := checkPathConflicts([]*Descriptor{
		{LogicalName: "a", RelativePath: "X/Y.cs"},
		{LogicalName: "b", RelativePath: "X/Y.cs"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflictingArtifact)
}

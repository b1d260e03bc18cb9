package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/layergen/compiler/load"
)

func TestResolvePlan(t *testing.T) {
	t.Run("merges explicit operations", func(t *testing.T) {
		plan, err := ResolvePlan(&load.Options{Name: "order", Create: true, Read: true}, &load.Defaults{})

		require.NoError(t, err)
		assert.Equal(t, []Op{OpCreate, OpRead}, plan.Operations)
		assert.True(t, plan.Has(OpCreate))
		assert.False(t, plan.Has(OpDelete))
	})

	t.Run("all expands to every operation", func(t *testing.T) {
		plan, err := ResolvePlan(&load.Options{Name: "order", All: true}, &load.Defaults{})

		require.NoError(t, err)
		assert.Equal(t, AllOps, plan.Operations)
	})

	t.Run("no operation selected fails before planning", func(t *testing.T) {
		_, err := ResolvePlan(&load.Options{Name: "order"}, &load.Defaults{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoOperationSelected)
		assert.True(t, IsOptionError(err))
	})

	t.Run("invalid name fails before option validation", func(t *testing.T) {
		_, err := ResolvePlan(&load.Options{Name: ""}, &load.Defaults{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("tier defaults from configuration", func(t *testing.T) {
		plan, err := ResolvePlan(&load.Options{Name: "order", Create: true},
			&load.Defaults{EntityType: "audited"})

		require.NoError(t, err)
		assert.Equal(t, TierAudited, plan.Tier)
	})

	t.Run("explicit tier overrides configuration", func(t *testing.T) {
		plan, err := ResolvePlan(
			&load.Options{Name: "order", Create: true, EntityType: "fullyaudited"},
			&load.Defaults{EntityType: "basic"})

		require.NoError(t, err)
		assert.Equal(t, TierFullyAudited, plan.Tier)
	})

	t.Run("unknown tier fails", func(t *testing.T) {
		_, err := ResolvePlan(
			&load.Options{Name: "order", Create: true, EntityType: "legendary"},
			&load.Defaults{})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidEntityType)
	})

	t.Run("skip flags override configured generators", func(t *testing.T) {
		plan, err := ResolvePlan(
			&load.Options{Name: "order", Create: true, SkipTests: true, SkipPermissions: true},
			&load.Defaults{GenerateTests: true, GeneratePermissions: true, GenerateEvents: true})

		require.NoError(t, err)
		assert.False(t, plan.Flags.Tests)
		assert.False(t, plan.Flags.Permissions)
		assert.True(t, plan.Flags.Events)
	})

	t.Run("template and namespace fall back", func(t *testing.T) {
		plan, err := ResolvePlan(&load.Options{Name: "order", Create: true}, &load.Defaults{})

		require.NoError(t, err)
		assert.Equal(t, "default", plan.Template)
		assert.Equal(t, "App", plan.Namespace)
	})

	t.Run("explicit template wins", func(t *testing.T) {
		plan, err := ResolvePlan(
			&load.Options{Name: "order", Create: true, Template: "minimal"},
			&load.Defaults{Template: "default"})

		require.NoError(t, err)
		assert.Equal(t, "minimal", plan.Template)
	})

	t.Run("roots get conventional fallbacks", func(t *testing.T) {
		plan, err := ResolvePlan(&load.Options{Name: "order", Create: true},
			&load.Defaults{Roots: load.Roots{Domain: "Core"}})

		require.NoError(t, err)
		assert.Equal(t, "Core", plan.Roots.Domain)
		assert.Equal(t, load.DefaultApplicationRoot, plan.Roots.Application)
		assert.Equal(t, load.DefaultTestsRoot, plan.Roots.Tests)
	})
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    Tier
		wantErr bool
	}{
		{"basic", TierBasic, false},
		{"audited", TierAudited, false},
		{"fullyaudited", TierFullyAudited, false},
		{"fully-audited", TierFullyAudited, false},
		{"Audited", TierAudited, false},
		{"tracked", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTier(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEntityType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, TierBasic < TierAudited)
	assert.True(t, TierAudited < TierFullyAudited)
	assert.Equal(t, "Entity", TierBasic.BaseClass())
	assert.Equal(t, "AuditedEntity", TierAudited.BaseClass())
	assert.Equal(t, "FullyAuditedEntity", TierFullyAudited.BaseClass())
}

// Package csharp provides the built-in template sets that render each
// artifact kind as C#-flavored source text. The engine in the gen
// package performs string substitution only and never parses the
// rendered language; these templates are the single place the target
// texture is defined.
package csharp

import "github.com/syssam/layergen/compiler/gen"

// Built-in template set identifiers.
const (
	SetDefault = "default"
	SetMinimal = "minimal"
)

var sets = map[string]*gen.Set{
	SetDefault: buildSet(SetDefault),
	SetMinimal: buildSet(SetMinimal),
}

// Lookup returns the template set registered under id, or nil when the
// id is unknown. Callers pass the result to gen.WithTemplateSet, which
// rejects nil with ErrUnknownTemplate.
func Lookup(id string) *gen.Set {
	return sets[id]
}

// Default returns the default template set.
func Default() *gen.Set {
	return sets[SetDefault]
}

// buildSet assembles one template set. The minimal set shares every
// fragment with the default set and differs only in its skeleton
// headers: no summary banners on generated types.
func buildSet(id string) *gen.Set {
	banners := id != SetMinimal
	s := gen.NewSet(id)
	s.MustSkeleton(gen.KindModel, modelSkeleton(banners), modelFragments()...)
	s.MustSkeleton(gen.KindCommand, commandSkeleton(banners), commandFragments()...)
	s.MustSkeleton(gen.KindValidator, validatorSkeleton, validatorFragments()...)
	s.MustSkeleton(gen.KindListQuery, listQuerySkeleton(banners), listQueryFragments()...)
	s.MustSkeleton(gen.KindByIDQuery, byIDQuerySkeleton(banners), byIDQueryFragments()...)
	s.MustSkeleton(gen.KindPersistence, persistenceSkeleton, persistenceFragments()...)
	s.MustSkeleton(gen.KindEndpoint, endpointSkeleton, endpointFragments()...)
	s.MustSkeleton(gen.KindPermissions, permissionsSkeleton, permissionsFragments()...)
	s.MustSkeleton(gen.KindEvent, eventSkeleton, eventFragments()...)
	s.MustSkeleton(gen.KindProfile, profileSkeleton, profileFragments()...)
	s.MustSkeleton(gen.KindTest, testSkeleton, testFragments()...)
	return s
}

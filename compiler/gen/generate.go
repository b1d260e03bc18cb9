package gen

import "fmt"

// Generator runs the full pipeline for one plan: artifact planning,
// composition, and emission. Construct one per invocation; nothing is
// shared or reused across runs.
//
// Example:
//
//	plan, err := gen.ResolvePlan(opts, defaults)
//	g, err := gen.New(plan, gen.WithTemplateSet(csharp.Lookup(plan.Template)))
//	manifest, err := g.Generate()
type Generator struct {
	plan      *Plan
	set       *Set
	inventory ModelInventory
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator) error

// WithTemplateSet sets the template set used for composition. The set's
// identifier must match the plan's template field.
func WithTemplateSet(s *Set) GeneratorOption {
	return func(g *Generator) error {
		if s == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTemplate, g.plan.Template)
		}
		g.set = s
		return nil
	}
}

// WithInventory supplies the existing-model inventory consulted during
// planning. Without it the planner assumes a clean destination.
func WithInventory(inv ModelInventory) GeneratorOption {
	return func(g *Generator) error {
		g.inventory = inv
		return nil
	}
}

// New creates a Generator for the plan. A template set must be supplied
// via WithTemplateSet before Generate or DryRun is called.
func New(plan *Plan, opts ...GeneratorOption) (*Generator, error) {
	g := &Generator{plan: plan}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Descriptors plans the artifact set without rendering or emitting.
func (g *Generator) Descriptors() ([]*Descriptor, error) {
	return PlanArtifacts(g.plan, g.inventory)
}

// render plans and composes the full artifact sequence. All validation
// and conflict detection happens here, before any side effect.
func (g *Generator) render() ([]RenderedArtifact, error) {
	if g.set == nil {
		return nil, fmt.Errorf("%w: no template set configured, call WithTemplateSet", ErrUnknownTemplate)
	}
	ds, err := PlanArtifacts(g.plan, g.inventory)
	if err != nil {
		return nil, err
	}
	return g.set.ComposeAll(g.plan, ds)
}

// Generate materializes the artifact sequence under the plan's output
// root and returns the write manifest. On an I/O failure the manifest
// still reports the fate of every artifact alongside the error.
func (g *Generator) Generate() (*Manifest, error) {
	seq, err := g.render()
	if err != nil {
		return nil, err
	}
	return NewEmitter(g.plan.OutputRoot).Materialize(seq)
}

// DryRun plans and renders the identical artifact sequence as Generate
// but projects it into an in-memory tree instead of writing.
func (g *Generator) DryRun() (*PreviewTree, *Manifest, error) {
	seq, err := g.render()
	if err != nil {
		return nil, nil, err
	}
	tree, m := NewEmitter(g.plan.OutputRoot).Preview(seq)
	return tree, m, nil
}

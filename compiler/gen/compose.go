package gen

import (
	"fmt"
	"strings"
	"text/template"
)

// Predicate gates a fragment on the resolved plan.
type Predicate func(*Plan) bool

// Always is the predicate of unconditional fragments.
func Always(*Plan) bool { return true }

// TierAtLeast holds when the plan's entity tier is at or above t.
func TierAtLeast(t Tier) Predicate {
	return func(p *Plan) bool { return p.Tier >= t }
}

// HasOp holds when the plan requests the given operation.
func HasOp(op Op) Predicate {
	return func(p *Plan) bool { return p.Has(op) }
}

// EventsEnabled holds when event generation is on and more than one
// operation is requested, mirroring the planner's event rule.
func EventsEnabled(p *Plan) bool {
	return p.Flags.Events && len(p.Operations) > 1
}

// PermissionsEnabled holds when access-control generation is on.
func PermissionsEnabled(p *Plan) bool { return p.Flags.Permissions }

// ProfilesEnabled holds when mapping-profile generation is on.
func ProfilesEnabled(p *Plan) bool { return p.Flags.MappingProfiles }

// And combines predicates conjunctively.
func And(ps ...Predicate) Predicate {
	return func(p *Plan) bool {
		for _, pred := range ps {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Not negates a predicate.
func Not(pred Predicate) Predicate {
	return func(p *Plan) bool { return !pred(p) }
}

// Fragment is one optional piece of content for a named slot. When its
// predicate does not hold for a plan, the fragment contributes nothing
// and the slot joins the remaining fragments without leftover
// separators.
type Fragment struct {
	Slot string
	When Predicate
	tmpl *template.Template
}

// Skeleton is the fixed outer template of one descriptor kind, with
// named slots populated from its fragments.
type Skeleton struct {
	kind      Kind
	root      *template.Template
	fragments []Fragment
}

// Set is a named collection of skeletons covering every descriptor
// kind. Composition over a set is pure: identical (descriptor, plan)
// pairs always render identical content.
type Set struct {
	id        string
	skeletons map[Kind]*Skeleton
}

// NewSet creates an empty template set with the given identifier.
func NewSet(id string) *Set {
	return &Set{id: id, skeletons: make(map[Kind]*Skeleton)}
}

// ID returns the set identifier selected by a plan's template field.
func (s *Set) ID() string { return s.id }

// MustSkeleton parses and registers the skeleton for one descriptor
// kind. It panics on a malformed template and is intended for
// package-level template set construction. The slot function is bound
// with a placeholder here so the name resolves at parse time; Compose
// rebinds it per render.
func (s *Set) MustSkeleton(kind Kind, src string, fragments ...Fragment) *Set {
	root := template.Must(template.New(string(kind)).
		Funcs(template.FuncMap{"slot": unboundSlot, "inline": unboundSlot}).
		Parse(src))
	s.skeletons[kind] = &Skeleton{kind: kind, root: root, fragments: fragments}
	return s
}

// unboundSlot is the parse-time placeholder for the slot functions.
func unboundSlot(name string) (string, error) {
	return "", fmt.Errorf("layergen: slot %q rendered outside Compose", name)
}

// MustFragment parses a fragment body for the named slot, gated by the
// given predicate. It panics on a malformed template.
func MustFragment(slot string, when Predicate, src string) Fragment {
	return Fragment{
		Slot: slot,
		When: when,
		tmpl: template.Must(template.New(slot).Parse(src)),
	}
}

// RenderedArtifact is the rendered content of one descriptor, produced
// one-to-one by composition.
type RenderedArtifact struct {
	Path     string
	Content  string
	Category Category
}

// view is the substitution data handed to skeletons and fragments.
// Every entity name form comes from the plan's single Entity value.
type view struct {
	Singular    string
	Plural      string
	Camel       string
	CamelPlural string
	Namespace   string
	BaseClass   string
	Tier        string
	Op          string
	OpPast      string
	Type        string
	Target      string
	// Resolved flag values, for fragments whose internal shape varies
	// with a flag while their presence is gated by a predicate.
	Tests           bool
	Permissions     bool
	Events          bool
	MappingProfiles bool
}

// Compose renders one descriptor against the plan. The skeleton's slot
// function resolves each named slot to the bodies of every fragment
// whose predicate holds, joined by blank-line-free newlines.
func (s *Set) Compose(p *Plan, d *Descriptor) (RenderedArtifact, error) {
	sk, ok := s.skeletons[d.Kind]
	if !ok {
		return RenderedArtifact{}, fmt.Errorf("layergen: template set %q has no skeleton for kind %q", s.id, d.Kind)
	}
	data := view{
		Singular:    p.Entity.Singular,
		Plural:      p.Entity.Plural,
		Camel:       p.Entity.Camel,
		CamelPlural: lowerFirst(p.Entity.Plural),
		Namespace:   p.Namespace,
		BaseClass:   p.Tier.BaseClass(),
		Tier:        p.Tier.String(),
		Op:          string(d.Op),
		OpPast:      d.Op.Past(),
		Type:        d.TypeName,
		Target:      d.Target,

		Tests:           p.Flags.Tests,
		Permissions:     p.Flags.Permissions,
		Events:          EventsEnabled(p),
		MappingProfiles: p.Flags.MappingProfiles,
	}

	// Rebind the slot function on a clone so fragments see the same
	// data as the skeleton. Function lookup happens at execution time,
	// so no re-parse is needed.
	root, err := sk.root.Clone()
	if err != nil {
		return RenderedArtifact{}, err
	}
	root = root.Funcs(template.FuncMap{
		// slot resolves a block slot. Skeletons write `{{- slot "x" }}`
		// alone on a line: an empty slot erases the line entirely, a
		// populated one re-opens it with a leading newline.
		"slot": func(name string) (string, error) {
			out, err := sk.renderSlot(name, p, data)
			if err != nil || out == "" {
				return out, err
			}
			return "\n" + out, nil
		},
		// inline resolves a slot in the middle of a line, contributing
		// no newlines of its own.
		"inline": func(name string) (string, error) {
			return sk.renderSlot(name, p, data)
		},
	})

	var b strings.Builder
	if err := root.Execute(&b, data); err != nil {
		return RenderedArtifact{}, err
	}
	return RenderedArtifact{
		Path:     d.RelativePath,
		Content:  b.String(),
		Category: d.Category,
	}, nil
}

// renderSlot joins every active fragment of the named slot with
// newlines. An empty slot renders as the empty string, so skeletons
// stay well-formed whether or not any fragment is active.
func (sk *Skeleton) renderSlot(name string, p *Plan, data view) (string, error) {
	var parts []string
	for _, f := range sk.fragments {
		if f.Slot != name {
			continue
		}
		if f.When != nil && !f.When(p) {
			continue
		}
		var b strings.Builder
		if err := f.tmpl.Execute(&b, data); err != nil {
			return "", err
		}
		if s := strings.TrimRight(b.String(), "\n"); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n"), nil
}

// ComposeAll renders every descriptor in order, preserving the
// planner's dependency ordering in the artifact sequence.
func (s *Set) ComposeAll(p *Plan, ds []*Descriptor) ([]RenderedArtifact, error) {
	out := make([]RenderedArtifact, 0, len(ds))
	for _, d := range ds {
		a, err := s.Compose(p, d)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

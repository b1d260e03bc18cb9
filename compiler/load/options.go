// Package load defines the input boundary of the generation pipeline:
// the per-invocation options assembled by the surrounding CLI layer and
// the project-level defaults loaded from configuration. The gen package
// merges both into a single generation plan.
package load

// Options holds the explicit, per-invocation request for one entity.
// It is assembled by the caller (CLI or embedding program) and passed to
// gen.ResolvePlan together with the project Defaults. Explicit values
// always win over defaults.
type Options struct {
	// Name is the raw entity name as typed by the user, e.g. "order".
	Name string

	// Operation selection. All is shorthand for the four flags below.
	Create bool
	Read   bool
	Update bool
	Delete bool
	All    bool

	// EntityType overrides the configured entity tier when non-empty.
	// Recognized values: "basic", "audited", "fullyaudited".
	EntityType string

	// SkipTests and SkipPermissions suppress the corresponding configured
	// generators for this invocation only.
	SkipTests       bool
	SkipPermissions bool

	// Template selects a named template set. Empty means the project
	// default, which itself falls back to "default".
	Template string

	// OutputRoot is the directory all generated paths are joined under.
	// It is treated as opaque and never validated structurally.
	OutputRoot string

	// DryRun requests preview mode: full planning and rendering with no
	// filesystem writes.
	DryRun bool
}

// Defaults carries the project-level generation defaults, typically
// loaded from .layergen.yaml by the config package.
type Defaults struct {
	// Namespace is the root namespace substituted into every artifact.
	Namespace string `yaml:"namespace,omitempty"`

	// EntityType is the default entity tier ("basic", "audited",
	// "fullyaudited") used when no per-invocation override is given.
	EntityType string `yaml:"entityType,omitempty"`

	Template string `yaml:"template,omitempty"`

	GenerateTests           bool `yaml:"generateTests,omitempty"`
	GeneratePermissions     bool `yaml:"generatePermissions,omitempty"`
	GenerateEvents          bool `yaml:"generateEvents,omitempty"`
	GenerateMappingProfiles bool `yaml:"generateMappingProfiles,omitempty"`

	// Roots names the layer-specific directories artifacts are planned
	// under, relative to the output root.
	Roots Roots `yaml:"roots,omitempty"`
}

// Roots holds the per-layer directory names. Zero values fall back to
// the conventional layout below.
type Roots struct {
	Domain      string `yaml:"domain,omitempty"`
	Application string `yaml:"application,omitempty"`
	Persistence string `yaml:"persistence,omitempty"`
	API         string `yaml:"api,omitempty"`
	Tests       string `yaml:"tests,omitempty"`
}

// Conventional layer roots used when a root is not configured.
const (
	DefaultDomainRoot      = "Domain"
	DefaultApplicationRoot = "Application"
	DefaultPersistenceRoot = "Persistence"
	DefaultAPIRoot         = "Api"
	DefaultTestsRoot       = "Tests"
)

// WithFallbacks returns a copy of r with every empty root replaced by
// its conventional default.
func (r Roots) WithFallbacks() Roots {
	if r.Domain == "" {
		r.Domain = DefaultDomainRoot
	}
	if r.Application == "" {
		r.Application = DefaultApplicationRoot
	}
	if r.Persistence == "" {
		r.Persistence = DefaultPersistenceRoot
	}
	if r.API == "" {
		r.API = DefaultAPIRoot
	}
	if r.Tests == "" {
		r.Tests = DefaultTestsRoot
	}
	return r
}

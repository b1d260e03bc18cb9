package gen

import (
	"strings"

	"github.com/syssam/layergen/compiler/load"
)

// Op is one of the four entity operations a plan can request.
type Op string

// Recognized operations, in canonical order.
const (
	OpCreate Op = "Create"
	OpRead   Op = "Read"
	OpUpdate Op = "Update"
	OpDelete Op = "Delete"
)

// AllOps lists every operation in canonical order.
var AllOps = []Op{OpCreate, OpRead, OpUpdate, OpDelete}

// Tier classifies the audit capabilities of a generated model.
// Each tier is a strict superset of the one before it.
type Tier int

const (
	// TierBasic carries only the entity key.
	TierBasic Tier = iota
	// TierAudited adds creation and modification audit fields.
	TierAudited
	// TierFullyAudited adds soft-deletion fields on top of TierAudited.
	TierFullyAudited
)

// String returns the configuration spelling of the tier.
func (t Tier) String() string {
	switch t {
	case TierBasic:
		return "basic"
	case TierAudited:
		return "audited"
	case TierFullyAudited:
		return "fullyaudited"
	default:
		return "unknown"
	}
}

// BaseClass returns the base class the generated model extends.
func (t Tier) BaseClass() string {
	switch t {
	case TierFullyAudited:
		return "FullyAuditedEntity"
	case TierAudited:
		return "AuditedEntity"
	default:
		return "Entity"
	}
}

// ParseTier parses a configuration or flag spelling of a tier.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "basic":
		return TierBasic, nil
	case "audited":
		return TierAudited, nil
	case "fullyaudited", "fully-audited":
		return TierFullyAudited, nil
	default:
		return 0, NewOptionError(ErrInvalidEntityType, "EntityType", s,
			"use basic, audited, or fullyaudited")
	}
}

// Flags holds the boolean generation toggles of a plan.
type Flags struct {
	Tests           bool
	Permissions     bool
	Events          bool
	MappingProfiles bool
}

// Plan is the fully resolved, immutable description of what to generate
// for one invocation. It is recomputed fresh on every invocation and
// never mutated after ResolvePlan returns.
type Plan struct {
	Entity     Entity
	Operations []Op
	Tier       Tier
	Flags      Flags
	Template   string
	Namespace  string
	OutputRoot string
	Roots      load.Roots
}

// Has reports whether the plan requests the given operation.
func (p *Plan) Has(op Op) bool {
	for _, o := range p.Operations {
		if o == op {
			return true
		}
	}
	return false
}

// Writes returns the requested write operations in canonical order.
func (p *Plan) Writes() []Op {
	var ops []Op
	for _, op := range p.Operations {
		if op != OpRead {
			ops = append(ops, op)
		}
	}
	return ops
}

// ResolvePlan merges per-invocation options with project defaults into
// one plan. Explicit options always win over defaults. The merge is
// pure: both inputs are already available and no I/O happens here.
func ResolvePlan(opts *load.Options, defs *load.Defaults) (*Plan, error) {
	entity, err := ResolveEntity(opts.Name)
	if err != nil {
		return nil, err
	}

	var ops []Op
	if opts.All {
		ops = append(ops, AllOps...)
	} else {
		if opts.Create {
			ops = append(ops, OpCreate)
		}
		if opts.Read {
			ops = append(ops, OpRead)
		}
		if opts.Update {
			ops = append(ops, OpUpdate)
		}
		if opts.Delete {
			ops = append(ops, OpDelete)
		}
	}
	if len(ops) == 0 {
		return nil, NewOptionError(ErrNoOperationSelected, "Operations", nil,
			"request at least one of create, read, update, delete, or all")
	}

	tier := TierBasic
	if defs.EntityType != "" {
		if tier, err = ParseTier(defs.EntityType); err != nil {
			return nil, err
		}
	}
	if opts.EntityType != "" {
		if tier, err = ParseTier(opts.EntityType); err != nil {
			return nil, err
		}
	}

	flags := Flags{
		Tests:           defs.GenerateTests,
		Permissions:     defs.GeneratePermissions,
		Events:          defs.GenerateEvents,
		MappingProfiles: defs.GenerateMappingProfiles,
	}
	if opts.SkipTests {
		flags.Tests = false
	}
	if opts.SkipPermissions {
		flags.Permissions = false
	}

	tmpl := defs.Template
	if opts.Template != "" {
		tmpl = opts.Template
	}
	if tmpl == "" {
		tmpl = "default"
	}

	ns := defs.Namespace
	if ns == "" {
		ns = "App"
	}

	return &Plan{
		Entity:     entity,
		Operations: ops,
		Tier:       tier,
		Flags:      flags,
		Template:   tmpl,
		Namespace:  ns,
		OutputRoot: opts.OutputRoot,
		Roots:      defs.Roots.WithFallbacks(),
	}, nil
}

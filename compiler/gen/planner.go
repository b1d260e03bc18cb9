package gen

import (
	"fmt"
	"path"
	"strings"
)

// Category classifies an artifact by the layer it belongs to.
type Category string

// Artifact categories.
const (
	CategoryModel         Category = "model"
	CategoryWriteOp       Category = "write-operation"
	CategoryReadOp        Category = "read-operation"
	CategoryMapping       Category = "mapping"
	CategoryEndpoint      Category = "endpoint"
	CategoryAccessControl Category = "access-control"
	CategoryTest          Category = "test"
)

// Categories lists every category in presentation order.
var Categories = []Category{
	CategoryModel,
	CategoryWriteOp,
	CategoryReadOp,
	CategoryMapping,
	CategoryEndpoint,
	CategoryAccessControl,
	CategoryTest,
}

// Kind identifies which skeleton renders a descriptor.
type Kind string

// Descriptor kinds.
const (
	KindModel       Kind = "model"
	KindCommand     Kind = "command"
	KindValidator   Kind = "validator"
	KindListQuery   Kind = "list-query"
	KindByIDQuery   Kind = "by-id-query"
	KindPersistence Kind = "persistence"
	KindEndpoint    Kind = "endpoint"
	KindPermissions Kind = "permissions"
	KindEvent       Kind = "event"
	KindProfile     Kind = "profile"
	KindTest        Kind = "test"
)

// Descriptor is one planned artifact: where it goes, which skeleton
// renders it, and which other artifacts must be emitted before it.
type Descriptor struct {
	Kind         Kind
	Category     Category
	LogicalName  string
	RelativePath string
	// TypeName is the principal type declared by the artifact,
	// e.g. "CreateOrderCommand".
	TypeName string
	// Op is set on per-operation descriptors (commands, validators,
	// queries, events) and on the tests that cover them.
	Op Op
	// Target is the type name of the artifact a test descriptor covers.
	Target string
	// DependsOn lists logical names that must be emitted first.
	DependsOn []string
}

// ModelInventory records models already present on disk, keyed by
// relative path. The surrounding layer discovers it; the planner only
// consults it, keeping planning pure.
type ModelInventory map[string]Tier

// PlanArtifacts expands a plan into its full descriptor set, ordered so
// that dependencies precede dependents. It fails with a ConflictError
// before any rendering or I/O if two descriptors resolve to the same
// path with different logical content, or if an inventoried model at
// the planned model path was generated with a different tier.
func PlanArtifacts(p *Plan, inv ModelInventory) ([]*Descriptor, error) {
	e := p.Entity
	appDir := path.Join(p.Roots.Application, e.Plural)
	var ds []*Descriptor

	add := func(d *Descriptor) {
		ds = append(ds, d)
	}

	modelPath := path.Join(p.Roots.Domain, "Entities", e.Singular+".cs")
	includeModel := true
	if existing, ok := inv[modelPath]; ok {
		if existing != p.Tier {
			return nil, NewConflictError(modelPath,
				existing.String(), p.Tier.String(),
				"model was generated with a different entity type")
		}
		includeModel = false
	}
	if includeModel {
		add(&Descriptor{
			Kind:         KindModel,
			Category:     CategoryModel,
			LogicalName:  "model",
			RelativePath: modelPath,
			TypeName:     e.Singular,
		})
	}

	var opUnits []*Descriptor
	for _, op := range p.Operations {
		if op == OpRead {
			continue
		}
		lower := strings.ToLower(string(op))
		cmdDir := path.Join(appDir, "Commands", string(op)+e.Singular)
		cmd := &Descriptor{
			Kind:         KindCommand,
			Category:     CategoryWriteOp,
			LogicalName:  lower + "-command",
			RelativePath: path.Join(cmdDir, string(op)+e.Singular+"Command.cs"),
			TypeName:     string(op) + e.Singular + "Command",
			Op:           op,
		}
		val := &Descriptor{
			Kind:         KindValidator,
			Category:     CategoryWriteOp,
			LogicalName:  lower + "-validator",
			RelativePath: path.Join(cmdDir, string(op)+e.Singular+"CommandValidator.cs"),
			TypeName:     string(op) + e.Singular + "CommandValidator",
			Op:           op,
		}
		add(cmd)
		add(val)
		opUnits = append(opUnits, cmd, val)
	}
	if p.Has(OpRead) {
		list := &Descriptor{
			Kind:         KindListQuery,
			Category:     CategoryReadOp,
			LogicalName:  "list-query",
			RelativePath: path.Join(appDir, "Queries", "Get"+e.Plural, "Get"+e.Plural+"Query.cs"),
			TypeName:     "Get" + e.Plural + "Query",
			Op:           OpRead,
		}
		byID := &Descriptor{
			Kind:         KindByIDQuery,
			Category:     CategoryReadOp,
			LogicalName:  "by-id-query",
			RelativePath: path.Join(appDir, "Queries", "Get"+e.Singular+"ById", "Get"+e.Singular+"ByIdQuery.cs"),
			TypeName:     "Get" + e.Singular + "ByIdQuery",
			Op:           OpRead,
		}
		add(list)
		add(byID)
		opUnits = append(opUnits, list, byID)
	}

	add(&Descriptor{
		Kind:         KindPersistence,
		Category:     CategoryMapping,
		LogicalName:  "persistence",
		RelativePath: path.Join(p.Roots.Persistence, "Configurations", e.Singular+"Configuration.cs"),
		TypeName:     e.Singular + "Configuration",
	})

	endpoint := &Descriptor{
		Kind:         KindEndpoint,
		Category:     CategoryEndpoint,
		LogicalName:  "endpoint",
		RelativePath: path.Join(p.Roots.API, "Controllers", e.Plural+"Controller.cs"),
		TypeName:     e.Plural + "Controller",
	}
	for _, u := range opUnits {
		endpoint.DependsOn = append(endpoint.DependsOn, u.LogicalName)
	}
	add(endpoint)

	if p.Flags.Permissions {
		add(&Descriptor{
			Kind:         KindPermissions,
			Category:     CategoryAccessControl,
			LogicalName:  "permissions",
			RelativePath: path.Join(appDir, e.Plural+"Permissions.cs"),
			TypeName:     e.Plural + "Permissions",
		})
	}

	// Domain events fire on state changes, so only write operations
	// produce one, and only when the invocation spans more than one
	// operation.
	if p.Flags.Events && len(p.Operations) > 1 {
		for _, op := range p.Writes() {
			add(&Descriptor{
				Kind:         KindEvent,
				Category:     CategoryModel,
				LogicalName:  strings.ToLower(string(op)) + "-event",
				RelativePath: path.Join(p.Roots.Domain, "Events", e.Singular+op.Past()+"Event.cs"),
				TypeName:     e.Singular + op.Past() + "Event",
				Op:           op,
				DependsOn:    []string{"model"},
			})
		}
	}

	if p.Flags.MappingProfiles {
		add(&Descriptor{
			Kind:         KindProfile,
			Category:     CategoryMapping,
			LogicalName:  "profile",
			RelativePath: path.Join(appDir, e.Singular+"Profile.cs"),
			TypeName:     e.Singular + "Profile",
		})
	}

	if p.Flags.Tests {
		for _, u := range opUnits {
			add(&Descriptor{
				Kind:         KindTest,
				Category:     CategoryTest,
				LogicalName:  u.LogicalName + "-tests",
				RelativePath: path.Join(p.Roots.Tests, e.Plural, u.TypeName+"Tests.cs"),
				TypeName:     u.TypeName + "Tests",
				Op:           u.Op,
				Target:       u.TypeName,
				DependsOn:    []string{u.LogicalName},
			})
		}
	}

	if err := checkPathConflicts(ds); err != nil {
		return nil, err
	}
	return sortByDependency(ds)
}

// Past returns the past-tense form used in event type names.
func (o Op) Past() string {
	switch o {
	case OpCreate:
		return "Created"
	case OpUpdate:
		return "Updated"
	case OpDelete:
		return "Deleted"
	default:
		return string(o)
	}
}

// checkPathConflicts rejects descriptor sets where two descriptors with
// different logical names resolve to the same relative path.
func checkPathConflicts(ds []*Descriptor) error {
	seen := make(map[string]*Descriptor, len(ds))
	for _, d := range ds {
		if prev, ok := seen[d.RelativePath]; ok && prev.LogicalName != d.LogicalName {
			return NewConflictError(d.RelativePath, prev.LogicalName, d.LogicalName,
				"two artifacts resolve to the same path")
		}
		seen[d.RelativePath] = d
	}
	return nil
}

// sortByDependency returns the descriptors in a deterministic
// topological order of DependsOn: dependencies first, ties broken by
// declaration order. Edges to logical names absent from the set (for
// example a model skipped because it already exists) are treated as
// satisfied.
func sortByDependency(ds []*Descriptor) ([]*Descriptor, error) {
	present := make(map[string]bool, len(ds))
	for _, d := range ds {
		present[d.LogicalName] = true
	}
	emitted := make(map[string]bool, len(ds))
	out := make([]*Descriptor, 0, len(ds))
	remaining := append([]*Descriptor(nil), ds...)
	for len(remaining) > 0 {
		progress := false
		next := remaining[:0]
		for _, d := range remaining {
			ready := true
			for _, dep := range d.DependsOn {
				if present[dep] && !emitted[dep] {
					ready = false
					break
				}
			}
			if ready {
				out = append(out, d)
				emitted[d.LogicalName] = true
				progress = true
			} else {
				next = append(next, d)
			}
		}
		if !progress {
			return nil, fmt.Errorf("layergen: dependency cycle among %d artifacts", len(next))
		}
		remaining = next
	}
	return out, nil
}

package gen

import (
	"os"
	"path/filepath"
)

// WriteStatus records how far the emitter got with one artifact.
type WriteStatus string

const (
	// StatusWritten means the artifact was written to disk.
	StatusWritten WriteStatus = "written"
	// StatusFailed means the write or directory creation failed.
	StatusFailed WriteStatus = "failed"
	// StatusPending means emission aborted before this artifact was
	// attempted.
	StatusPending WriteStatus = "pending"
	// StatusPreviewed means the artifact was projected in preview mode
	// and no write was attempted.
	StatusPreviewed WriteStatus = "previewed"
)

// ManifestEntry reports the outcome for one artifact.
type ManifestEntry struct {
	Category     Category
	RelativePath string
	Status       WriteStatus
}

// Manifest is the emitter's report: one entry per artifact in emission
// order, returned as data for the surrounding presentation layer to
// format. The emitter itself never prints.
type Manifest struct {
	Root    string
	Entries []ManifestEntry
}

// Written counts artifacts written to disk.
func (m *Manifest) Written() int {
	n := 0
	for _, e := range m.Entries {
		if e.Status == StatusWritten {
			n++
		}
	}
	return n
}

// Failed returns the first failed entry, if any.
func (m *Manifest) Failed() (ManifestEntry, bool) {
	for _, e := range m.Entries {
		if e.Status == StatusFailed {
			return e, true
		}
	}
	return ManifestEntry{}, false
}

// PreviewTree groups the rendered artifacts by category without
// touching the filesystem. Group iteration follows Categories order;
// artifacts within a group keep emission order.
type PreviewTree struct {
	groups map[Category][]RenderedArtifact
}

// Group returns the artifacts of one category in emission order.
func (t *PreviewTree) Group(c Category) []RenderedArtifact {
	return t.groups[c]
}

// Len returns the total number of artifacts in the tree.
func (t *PreviewTree) Len() int {
	n := 0
	for _, g := range t.groups {
		n += len(g)
	}
	return n
}

// Emitter projects a rendered artifact sequence onto the filesystem or
// into an in-memory preview. Both projections consume the identical
// sequence; they can never disagree on the artifact set.
type Emitter struct {
	root string
}

// NewEmitter creates an emitter rooted at the output directory. The
// root is treated as opaque and only joined with planned relative
// paths.
func NewEmitter(root string) *Emitter {
	return &Emitter{root: root}
}

// Materialize writes every artifact in sequence order, creating missing
// directories as needed and overwriting existing files unconditionally.
// The first I/O failure aborts the remaining sequence; the returned
// manifest then records the failing artifact and marks the rest
// pending. There is no rollback of artifacts already written.
func (e *Emitter) Materialize(seq []RenderedArtifact) (*Manifest, error) {
	m := &Manifest{Root: e.root, Entries: make([]ManifestEntry, 0, len(seq))}
	var emitErr error
	for _, a := range seq {
		entry := ManifestEntry{Category: a.Category, RelativePath: a.Path}
		switch {
		case emitErr != nil:
			entry.Status = StatusPending
		default:
			if err := e.write(a); err != nil {
				entry.Status = StatusFailed
				emitErr = err
			} else {
				entry.Status = StatusWritten
			}
		}
		m.Entries = append(m.Entries, entry)
	}
	return m, emitErr
}

// Preview builds the grouped in-memory projection of the sequence and a
// manifest marking every artifact previewed. No filesystem access
// happens here.
func (e *Emitter) Preview(seq []RenderedArtifact) (*PreviewTree, *Manifest) {
	t := &PreviewTree{groups: make(map[Category][]RenderedArtifact)}
	m := &Manifest{Root: e.root, Entries: make([]ManifestEntry, 0, len(seq))}
	for _, a := range seq {
		t.groups[a.Category] = append(t.groups[a.Category], a)
		m.Entries = append(m.Entries, ManifestEntry{
			Category:     a.Category,
			RelativePath: a.Path,
			Status:       StatusPreviewed,
		})
	}
	return t, m
}

// write creates the artifact's directory and writes its content.
func (e *Emitter) write(a RenderedArtifact) error {
	dst := filepath.Join(e.root, filepath.FromSlash(a.Path))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return NewEmitError(a.Path, err)
	}
	if err := os.WriteFile(dst, []byte(a.Content), 0o644); err != nil {
		return NewEmitError(a.Path, err)
	}
	return nil
}

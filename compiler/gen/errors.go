// Package gen implements entity scaffolding for layered applications:
// it resolves an entity name and an option set into an immutable
// generation plan, expands the plan into a dependency-ordered set of
// artifact descriptors, renders each descriptor from slot-based
// templates, and emits the results to disk or to an in-memory preview.
package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidArgument indicates a malformed entity name.
	ErrInvalidArgument = errors.New("layergen: invalid entity name")
	// ErrNoOperationSelected indicates that neither an operation flag nor
	// the all flag was present.
	ErrNoOperationSelected = errors.New("layergen: no operation selected")
	// ErrInvalidEntityType indicates an unrecognized entity tier.
	ErrInvalidEntityType = errors.New("layergen: invalid entity type")
	// ErrConflictingArtifact indicates two descriptors resolving to the
	// same path with divergent content.
	ErrConflictingArtifact = errors.New("layergen: conflicting artifact")
	// ErrIOFailure indicates a write or directory-creation failure
	// during materialization.
	ErrIOFailure = errors.New("layergen: write failed")
	// ErrUnknownTemplate indicates a template identifier with no
	// registered template set.
	ErrUnknownTemplate = errors.New("layergen: unknown template set")
)

// NameError reports a rejected raw entity name.
type NameError struct {
	Name    string
	Message string
}

// Error implements the error interface.
func (e *NameError) Error() string {
	return fmt.Sprintf("layergen: invalid entity name %q: %s", e.Name, e.Message)
}

// Is reports whether the target matches the sentinel error for NameError.
func (e *NameError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewNameError creates a new NameError.
func NewNameError(name, message string) *NameError {
	return &NameError{Name: name, Message: message}
}

// OptionError reports an invalid or inconsistent option combination.
type OptionError struct {
	Option   string
	Value    any
	Message  string
	sentinel error
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	var b strings.Builder
	b.WriteString("layergen: option error")
	if e.Option != "" {
		fmt.Fprintf(&b, " for %q", e.Option)
	}
	if e.Value != nil {
		fmt.Fprintf(&b, " (value: %v)", e.Value)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches this error's sentinel.
func (e *OptionError) Is(target error) bool {
	return target == e.sentinel
}

// NewOptionError creates an OptionError classified under the given sentinel.
func NewOptionError(sentinel error, option string, value any, message string) *OptionError {
	return &OptionError{Option: option, Value: value, Message: message, sentinel: sentinel}
}

// ConflictError reports two descriptors colliding on the same path while
// representing different logical content.
type ConflictError struct {
	Path     string
	Existing string
	Incoming string
	Message  string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	var b strings.Builder
	b.WriteString("layergen: conflicting artifact at ")
	b.WriteString(e.Path)
	if e.Existing != "" && e.Incoming != "" {
		fmt.Fprintf(&b, " (%s vs %s)", e.Existing, e.Incoming)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ConflictError.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflictingArtifact
}

// NewConflictError creates a new ConflictError.
func NewConflictError(path, existing, incoming, message string) *ConflictError {
	return &ConflictError{Path: path, Existing: existing, Incoming: incoming, Message: message}
}

// EmitError reports a failed filesystem write during materialization.
// The manifest accompanying the error records which artifacts were
// already written and which were never attempted.
type EmitError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	return fmt.Sprintf("layergen: write failed for %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *EmitError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EmitError.
func (e *EmitError) Is(target error) bool {
	return target == ErrIOFailure
}

// NewEmitError creates a new EmitError.
func NewEmitError(path string, cause error) *EmitError {
	return &EmitError{Path: path, Cause: cause}
}

// IsNameError reports whether the error is a NameError.
func IsNameError(err error) bool {
	var nameErr *NameError
	return errors.As(err, &nameErr)
}

// IsOptionError reports whether the error is an OptionError.
func IsOptionError(err error) bool {
	var optErr *OptionError
	return errors.As(err, &optErr)
}

// IsConflictError reports whether the error is a ConflictError.
func IsConflictError(err error) bool {
	var confErr *ConflictError
	return errors.As(err, &confErr)
}

// IsEmitError reports whether the error is an EmitError.
func IsEmitError(err error) bool {
	var emitErr *EmitError
	return errors.As(err, &emitErr)
}

package verify

import (
	"errors"
	"fmt"
	"github.com/saylorsolutions/verifyx/structures/set"
	"slices"
)

var (
	ErrInvalidSpec           = errors.New("invalid verification spec")
	ErrDuplicateVerification = errors.New("duplicate verification name")
)

// Style selects the message template used when a verification's predicate fails.
type Style int

const (
	// StylePredicate reports the offending value: "is not {adjective}.  Provided value is '{value}'."
	StylePredicate Style = iota
	// StyleNullness reports only the adjective, as the value is implied by it: "is not null."
	StyleNullness
)

// NullPolicy states whether a verification accepts nil subjects and elements.
type NullPolicy int

const (
	// NullsForbidden reports a nil subject or element as a null failure before applicability or the predicate are considered.
	NullsForbidden NullPolicy = iota
	// NullsAllowed passes nil values through to the predicate.
	NullsAllowed
)

// ParamCheck validates a single verification parameter.
// A non-nil error means the parameter is malformed, and its text completes the sentence "parameter '{name}' ...".
type ParamCheck func(value any) error

// ParamSpec declares one positional verification parameter.
// Checks are applied in order, and the first failure stops validation.
type ParamSpec struct {
	Name   string
	Checks []ParamCheck
}

// Predicate reports whether a value satisfies a verification.
// Pointers to an applicable type are dereferenced before the predicate is called, and params have already passed their checks.
type Predicate func(value any, params []any) bool

// Spec describes a named verification.
// Once registered with [NewRegistry], a Spec is copied and never changes.
type Spec struct {
	// Name is the unique registry key.
	Name string
	// Applicable lists the types the verification operates on. A nil or empty list means any type.
	// A type T also covers its nullable form *T.
	Applicable []TypeDescriptor
	Predicate  Predicate
	// Adjective completes "is not {adjective}" in failure messages.
	Adjective string
	Style     Style
	Nulls     NullPolicy
	Params    []ParamSpec
}

func (s Spec) validate() error {
	if len(s.Name) == 0 {
		return fmt.Errorf("%w: empty name", ErrInvalidSpec)
	}
	if s.Predicate == nil {
		return fmt.Errorf("%w: '%s' has a nil predicate", ErrInvalidSpec, s.Name)
	}
	if len(s.Adjective) == 0 {
		return fmt.Errorf("%w: '%s' has no adjective", ErrInvalidSpec, s.Name)
	}
	for i, p := range s.Params {
		if len(p.Name) == 0 {
			return fmt.Errorf("%w: '%s' parameter %d has no name", ErrInvalidSpec, s.Name, i)
		}
	}
	return nil
}

// entry is a registered Spec with its applicability set prepared for lookups.
type entry struct {
	spec       Spec
	applicable set.Set[TypeDescriptor]
}

func newEntry(spec Spec) *entry {
	spec.Applicable = slices.Clone(spec.Applicable)
	spec.Params = slices.Clone(spec.Params)
	for i := range spec.Params {
		spec.Params[i].Checks = slices.Clone(spec.Params[i].Checks)
	}
	var applicable set.Set[TypeDescriptor]
	if len(spec.Applicable) > 0 {
		applicable = set.New(spec.Applicable...)
	}
	return &entry{spec: spec, applicable: applicable}
}

// appliesTo reports whether the verification operates on values of type d.
func (e *entry) appliesTo(d TypeDescriptor) bool {
	if e.applicable == nil {
		return true
	}
	return e.applicable.Has(d) || e.applicable.Has(d.Wrapped())
}

package verify

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is an immutable table of verifications keyed by name.
// It's populated once by [NewRegistry] and only read afterward, so it's safe for concurrent use without locking.
type Registry struct {
	entries map[string]*entry
}

// NewRegistry validates and registers the given specs.
// Names must be unique, and each spec needs a name, predicate, and adjective.
func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{entries: make(map[string]*entry, len(specs))}
	for _, spec := range specs {
		if err := spec.validate(); err != nil {
			return nil, err
		}
		if _, ok := r.entries[spec.Name]; ok {
			return nil, fmt.Errorf("%w: '%s'", ErrDuplicateVerification, spec.Name)
		}
		r.entries[spec.Name] = newEntry(spec)
	}
	return r, nil
}

// MustNewRegistry is [NewRegistry] that panics on an invalid spec set.
// This is intended for package level initialization, where a bad spec is a programming mistake.
func MustNewRegistry(specs ...Spec) *Registry {
	r, err := NewRegistry(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the process-wide registry holding the [BuiltinSpecs].
// It's built on first use and never modified.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = MustNewRegistry(BuiltinSpecs()...)
	})
	return defaultRegistry
}

func (r *Registry) lookup(name string) (*entry, bool) {
	if r == nil {
		return nil, false
	}
	e, ok := r.entries[name]
	return e, ok
}

// Lookup returns a copy of the [Spec] registered under name.
func (r *Registry) Lookup(name string) (Spec, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return Spec{}, false
	}
	return newEntry(e.spec).spec, true
}

// Names returns all registered verification names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package verify

import (
	"fmt"
	"github.com/saylorsolutions/verifyx/verify/predicate"
	"iter"
	"reflect"
)

type reason int

const (
	reasonNullSubject reason = iota + 1
	reasonTypeNotApplicable
	reasonPredicateFailed
	reasonParameterInvalid
	reasonMisuse
)

// failure captures what went wrong in a single verification call.
// It's built by the dispatcher, rendered by compose, and classified by classify.
type failure struct {
	subject Subject
	reason  reason
	entry   *entry
	params  []any

	// element is set when the failure is scoped to one element of a sequence subject.
	element      bool
	index        int
	elementValue any

	paramIndex int
	problem    string
}

// dispatch runs a verification against a subject and returns nil if it passes.
//
// Steps run in a fixed order: parameter checks, the null tie-break, applicability, and then the predicate.
// The predicate is never called for a value of an inapplicable type.
func dispatch(subject Subject, e *entry, params []any) *failure {
	if f := checkParams(subject, e, params); f != nil {
		return f
	}
	spec := e.spec
	fail := func(r reason) *failure {
		return &failure{subject: subject, reason: r, entry: e, params: params}
	}

	isNil := predicate.IsNil(subject.value)
	if isNil && (subject.sequence || spec.Nulls == NullsForbidden) {
		// A nil explains the failure better than a type mismatch, even though it has no type to check.
		return fail(reasonNullSubject)
	}
	if !e.appliesTo(subject.declared) {
		return fail(reasonTypeNotApplicable)
	}

	if !subject.sequence {
		if !spec.Predicate(deref(subject.value), params) {
			return fail(reasonPredicateFailed)
		}
		return nil
	}

	for i, el := range elements(reflect.ValueOf(subject.value)) {
		var r reason
		switch {
		case spec.Nulls == NullsForbidden && predicate.IsNil(el):
			r = reasonNullSubject
		case !spec.Predicate(deref(el), params):
			r = reasonPredicateFailed
		default:
			continue
		}
		f := fail(r)
		f.element = true
		f.index = i
		f.elementValue = el
		return f
	}
	return nil
}

func checkParams(subject Subject, e *entry, params []any) *failure {
	for i, p := range e.spec.Params {
		var val any
		if i < len(params) {
			val = params[i]
		}
		for _, check := range p.Checks {
			if err := check(val); err != nil {
				return &failure{
					subject:    subject,
					reason:     reasonParameterInvalid,
					entry:      e,
					params:     params,
					paramIndex: i,
					problem:    err.Error(),
				}
			}
		}
	}
	return nil
}

// normalizeParams pads params to the declared count, so that an omitted trailing parameter reads as absent.
func normalizeParams(e *entry, params []any) ([]any, error) {
	declared := len(e.spec.Params)
	if len(params) > declared {
		return nil, fmt.Errorf("called %s() with %d parameter(s), but it declares %d", e.spec.Name, len(params), declared)
	}
	if len(params) == declared {
		return params, nil
	}
	padded := make([]any, declared)
	copy(padded, params)
	return padded, nil
}

// deref follows a non-nil pointer so predicates see the value of the applicable type.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}

// elements walks a sequence value in order with element positions.
// The value must be of a type accepted by TypeDescriptor.element.
func elements(rv reflect.Value) iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		switch rv.Kind() {
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		case reflect.Func:
			i := 0
			for el := range rv.Seq() {
				if !yield(i, el.Interface()) {
					return
				}
				i++
			}
		}
	}
}

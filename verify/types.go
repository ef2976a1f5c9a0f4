package verify

import (
	"reflect"
)

// TypeDescriptor is the structural identity of a type, used for applicability lookups.
// Two descriptors are equal (with ==) if and only if they denote the same type.
//
// A pointer type *T is treated as the nullable form of T, and [TypeDescriptor.Wrapped] returns T for it.
type TypeDescriptor struct {
	t reflect.Type
}

// TypeFor returns the [TypeDescriptor] for T.
func TypeFor[T any]() TypeDescriptor {
	return TypeDescriptor{t: reflect.TypeFor[T]()}
}

// DescriptorOf returns the [TypeDescriptor] for an already resolved [reflect.Type].
func DescriptorOf(t reflect.Type) TypeDescriptor {
	return TypeDescriptor{t: t}
}

// Type returns the underlying [reflect.Type], which is nil for the zero TypeDescriptor.
func (d TypeDescriptor) Type() reflect.Type {
	return d.t
}

// Nullable reports whether values of this type can be nil.
func (d TypeDescriptor) Nullable() bool {
	if d.t == nil {
		return true
	}
	switch d.t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// Wrapped returns T for the nullable wrapper *T, and the descriptor itself otherwise.
func (d TypeDescriptor) Wrapped() TypeDescriptor {
	if d.t != nil && d.t.Kind() == reflect.Pointer {
		return TypeDescriptor{t: d.t.Elem()}
	}
	return d
}

func (d TypeDescriptor) isInterface() bool {
	return d.t == nil || d.t.Kind() == reflect.Interface
}

// String returns the Go syntax name of the type.
func (d TypeDescriptor) String() string {
	if d.t == nil {
		return "<unknown>"
	}
	return d.t.String()
}

// element returns the element type of a sequence type.
// Slices, arrays, and single-value iterator functions shaped like iter.Seq are sequences.
func (d TypeDescriptor) element() (TypeDescriptor, bool) {
	if d.t == nil {
		return TypeDescriptor{}, false
	}
	switch d.t.Kind() {
	case reflect.Slice, reflect.Array:
		return TypeDescriptor{t: d.t.Elem()}, true
	case reflect.Func:
		if d.t.NumIn() != 1 || d.t.NumOut() != 0 {
			return TypeDescriptor{}, false
		}
		yield := d.t.In(0)
		if yield.Kind() != reflect.Func || yield.NumIn() != 1 || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
			return TypeDescriptor{}, false
		}
		return TypeDescriptor{t: yield.In(0)}, true
	default:
		return TypeDescriptor{}, false
	}
}

// resolve narrows an interface typed declaration to the dynamic type of a non-nil value.
// An interface type says nothing useful about applicability, while the held value does.
func resolve(declared TypeDescriptor, value any) TypeDescriptor {
	if declared.isInterface() && value != nil {
		return TypeDescriptor{t: reflect.TypeOf(value)}
	}
	return declared
}

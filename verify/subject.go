package verify

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Subject is a named value under verification.
// A Subject is immutable once it has been captured.
type Subject struct {
	name     string
	value    any
	declared TypeDescriptor
	sequence bool
}

// Name returns the caller-visible identifier of the subject.
func (s Subject) Name() string {
	return s.name
}

// Value returns the captured value.
func (s Subject) Value() any {
	return s.value
}

// DeclaredType returns the type used for applicability checks.
// For a subject in element mode this is the element type of the sequence.
func (s Subject) DeclaredType() TypeDescriptor {
	return s.declared
}

// IsSequence reports whether the subject is being verified element by element.
func (s Subject) IsSequence() bool {
	return s.sequence
}

// CaptureError is returned when a [Subject] cannot be captured from a container.
// It's a [ProgrammerError], because the shape of the container is fixed at the call site.
type CaptureError struct {
	Reason string
}

func (e *CaptureError) Error() string {
	return "unable to capture subject: " + e.Reason
}

// Kind always returns [ProgrammerError].
func (e *CaptureError) Kind() Kind {
	return ProgrammerError
}

func (e *CaptureError) Unwrap() error {
	return ErrProgrammerError
}

func captureErr(format string, args ...any) *CaptureError {
	return &CaptureError{Reason: fmt.Sprintf(format, args...)}
}

// Named creates a [Subject] from an explicit name.
// The declared type is T, unless T is an interface type holding a non-nil value, in which case the dynamic type is used.
//
// Named panics with a [*CaptureError] if name is empty.
func Named[T any](name string, value T) Subject {
	if len(name) == 0 {
		panic(captureErr("subject name is empty"))
	}
	v := any(value)
	return Subject{
		name:     name,
		value:    v,
		declared: resolve(TypeFor[T](), v),
	}
}

// Capture creates a [Subject] from a container with exactly one named value, so the name doesn't need to be typed twice.
// The container may be a struct with one field, a pointer to one, or a map with string keys and one entry:
//
//	subject1 := "abc"
//	s, err := verify.Capture(struct{ subject1 string }{subject1})
//	s, err = verify.Capture(map[string]string{"subject1": subject1})
//
// The field identifier or map key becomes the subject name, and the field or map value type is the declared type.
func Capture(container any) (Subject, error) {
	rv := reflect.ValueOf(container)
	if !rv.IsValid() {
		return Subject{}, captureErr("container is nil")
	}
	if rv.Kind() == reflect.Pointer && rv.Type().Elem().Kind() == reflect.Struct {
		if rv.IsNil() {
			return Subject{}, captureErr("container is a nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	var (
		name     string
		value    any
		declared reflect.Type
	)
	switch rv.Kind() {
	case reflect.Struct:
		if rv.NumField() != 1 {
			return Subject{}, captureErr("container must have exactly one field, but %s has %d", rv.Type(), rv.NumField())
		}
		field := rv.Type().Field(0)
		name = field.Name
		declared = field.Type
		value = fieldValue(rv, field)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Subject{}, captureErr("map container must have string keys, but %s does not", rv.Type())
		}
		if rv.Len() != 1 {
			return Subject{}, captureErr("container must have exactly one entry, but it has %d", rv.Len())
		}
		iter := rv.MapRange()
		iter.Next()
		name = iter.Key().String()
		declared = rv.Type().Elem()
		value = iter.Value().Interface()
	default:
		return Subject{}, captureErr("container must be a struct or map, but is %s", rv.Type())
	}
	if len(name) == 0 || name == "_" {
		return Subject{}, captureErr("unable to resolve a name for the value of type %s", declared)
	}
	return Subject{
		name:     name,
		value:    value,
		declared: resolve(DescriptorOf(declared), value),
	}, nil
}

// MustCapture is [Capture] that panics with a [*CaptureError] on failure.
func MustCapture(container any) Subject {
	s, err := Capture(container)
	if err != nil {
		panic(err)
	}
	return s
}

func fieldValue(rv reflect.Value, field reflect.StructField) any {
	if field.IsExported() {
		return rv.Field(0).Interface()
	}
	// Unexported fields can't be read through Interface, so read them through an addressable copy.
	cp := reflect.New(rv.Type()).Elem()
	cp.Set(rv)
	fv := cp.Field(0)
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem().Interface()
}

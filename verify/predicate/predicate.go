// Package predicate holds the pass/fail value tests behind the built-in verifications.
//
// Every function here is pure and stateless. None of them know about subject names, messages, or failure kinds;
// that is the job of package verify, which registers these tests under verification names.
package predicate

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"reflect"
	"slices"
	"strings"
	"unicode"
)

// IsNil reports whether v is nil, handling both untyped nil and typed nil values held in an interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

func allRunes(s string, otherAllowed []rune, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) || slices.Contains(otherAllowed, r) {
			continue
		}
		return false
	}
	return true
}

// IsAlphabetic reports whether every rune in s is a letter or one of otherAllowed.
// An empty string is alphabetic.
func IsAlphabetic(s string, otherAllowed []rune) bool {
	return allRunes(s, otherAllowed, unicode.IsLetter)
}

// IsAlphanumeric reports whether every rune in s is a letter, a decimal digit, or one of otherAllowed.
// An empty string is alphanumeric.
func IsAlphanumeric(s string, otherAllowed []rune) bool {
	return allRunes(s, otherAllowed, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// IsASCIIPrintable reports whether every byte of s is in the printable ASCII range (space through tilde).
// Carriage return and line feed also pass when treatNewLineAsPrintable is set.
func IsASCIIPrintable(s string, treatNewLineAsPrintable bool) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= ' ' && c <= '~' {
			continue
		}
		if treatNewLineAsPrintable && (c == '\r' || c == '\n') {
			continue
		}
		return false
	}
	return true
}

// IsWhiteSpace reports whether s is empty or consists only of Unicode white space.
func IsWhiteSpace(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsLowerCase reports whether s is unchanged by full Unicode lower-case mapping.
// A string with no cased letters is both lower and upper case.
func IsLowerCase(s string) bool {
	// Caser carries state and isn't safe for concurrent use, so one is created per call.
	return cases.Lower(language.Und).String(s) == s
}

// IsUpperCase reports whether s is unchanged by full Unicode upper-case mapping.
func IsUpperCase(s string) bool {
	return cases.Upper(language.Und).String(s) == s
}

// IsPositive reports whether v is a number strictly greater than zero.
// Supported types are the built-in integer and floating point types and [decimal.Decimal]; anything else is not positive.
func IsPositive(v any) bool {
	switch n := v.(type) {
	case int:
		return n > 0
	case int8:
		return n > 0
	case int16:
		return n > 0
	case int32:
		return n > 0
	case int64:
		return n > 0
	case uint:
		return n > 0
	case uint8:
		return n > 0
	case uint16:
		return n > 0
	case uint32:
		return n > 0
	case uint64:
		return n > 0
	case float32:
		return n > 0
	case float64:
		return n > 0
	case decimal.Decimal:
		return n.IsPositive()
	default:
		return false
	}
}

// IsEmptyUUID reports whether id is the all-zero UUID.
func IsEmptyUUID(id uuid.UUID) bool {
	return id == uuid.Nil
}

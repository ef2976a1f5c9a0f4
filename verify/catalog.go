package verify

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/saylorsolutions/verifyx/structures/set"
	"github.com/saylorsolutions/verifyx/verify/predicate"
	"github.com/shopspring/decimal"
	"unicode"
)

// Names of the built-in verifications.
const (
	IsNullVerification           = "isNull"
	IsNotNullVerification        = "isNotNull"
	IsAlphabeticVerification     = "isAlphabetic"
	IsAlphanumericVerification   = "isAlphanumeric"
	IsASCIIPrintableVerification = "isAsciiPrintable"
	IsWhiteSpaceVerification     = "isWhiteSpace"
	IsEmptyVerification          = "isEmpty"
	IsLowerCaseVerification      = "isLowerCase"
	IsUpperCaseVerification      = "isUpperCase"
	IsPositiveVerification       = "isPositive"
	IsEmptyUUIDVerification      = "isEmptyUUID"
)

const (
	otherAllowedCharactersParam  = "otherAllowedCharacters"
	treatNewLineAsPrintableParam = "treatNewLineAsPrintable"
)

var (
	stringTypes  = []TypeDescriptor{TypeFor[string]()}
	numericTypes = []TypeDescriptor{
		TypeFor[int](), TypeFor[int8](), TypeFor[int16](), TypeFor[int32](), TypeFor[int64](),
		TypeFor[uint](), TypeFor[uint8](), TypeFor[uint16](), TypeFor[uint32](), TypeFor[uint64](),
		TypeFor[float32](), TypeFor[float64](),
		TypeFor[decimal.Decimal](),
	}
)

// BuiltinSpecs returns the specs registered in the [Default] registry.
// The returned slice is new on each call, so it can be extended to build a custom [Registry].
func BuiltinSpecs() []Spec {
	return []Spec{
		{
			Name:      IsNullVerification,
			Predicate: func(v any, _ []any) bool { return predicate.IsNil(v) },
			Adjective: "null",
			Style:     StyleNullness,
			Nulls:     NullsAllowed,
		},
		{
			// Nil subjects are rejected by the null policy, so every value that reaches the predicate passes.
			Name:      IsNotNullVerification,
			Predicate: func(any, []any) bool { return true },
			Adjective: "not null",
			Style:     StyleNullness,
		},
		{
			Name:       IsAlphabeticVerification,
			Applicable: stringTypes,
			Predicate: func(v any, params []any) bool {
				return predicate.IsAlphabetic(v.(string), runesParam(params, 0))
			},
			Adjective: "alphabetic",
			Params:    []ParamSpec{allowListParam("alphabetic", unicode.IsLetter)},
		},
		{
			Name:       IsAlphanumericVerification,
			Applicable: stringTypes,
			Predicate: func(v any, params []any) bool {
				return predicate.IsAlphanumeric(v.(string), runesParam(params, 0))
			},
			Adjective: "alphanumeric",
			Params: []ParamSpec{allowListParam("alphanumeric", func(r rune) bool {
				return unicode.IsLetter(r) || unicode.IsDigit(r)
			})},
		},
		{
			Name:       IsASCIIPrintableVerification,
			Applicable: stringTypes,
			Predicate: func(v any, params []any) bool {
				return predicate.IsASCIIPrintable(v.(string), params[0].(bool))
			},
			Adjective: "ASCII printable",
			Params: []ParamSpec{{
				Name:   treatNewLineAsPrintableParam,
				Checks: []ParamCheck{notNilParam, paramOfType[bool]("a bool")},
			}},
		},
		{
			Name:       IsWhiteSpaceVerification,
			Applicable: stringTypes,
			Predicate:  stringPredicate(predicate.IsWhiteSpace),
			Adjective:  "white space",
		},
		{
			Name:       IsEmptyVerification,
			Applicable: stringTypes,
			Predicate:  stringPredicate(predicate.IsEmpty),
			Adjective:  "empty",
		},
		{
			Name:       IsLowerCaseVerification,
			Applicable: stringTypes,
			Predicate:  stringPredicate(predicate.IsLowerCase),
			Adjective:  "lower case",
		},
		{
			Name:       IsUpperCaseVerification,
			Applicable: stringTypes,
			Predicate:  stringPredicate(predicate.IsUpperCase),
			Adjective:  "upper case",
		},
		{
			Name:       IsPositiveVerification,
			Applicable: numericTypes,
			Predicate:  func(v any, _ []any) bool { return predicate.IsPositive(v) },
			Adjective:  "positive",
		},
		{
			Name:       IsEmptyUUIDVerification,
			Applicable: []TypeDescriptor{TypeFor[uuid.UUID]()},
			Predicate: func(v any, _ []any) bool {
				return predicate.IsEmptyUUID(v.(uuid.UUID))
			},
			Adjective: "an empty UUID",
		},
	}
}

func stringPredicate(fn func(string) bool) Predicate {
	return func(v any, _ []any) bool {
		return fn(v.(string))
	}
}

// runesParam reads an allow-list that has already passed its checks.
func runesParam(params []any, pos int) []rune {
	runes, _ := params[pos].([]rune)
	return runes
}

func notNilParam(v any) error {
	if predicate.IsNil(v) {
		return errors.New("is required")
	}
	return nil
}

func paramOfType[T any](description string) ParamCheck {
	return func(v any) error {
		if _, ok := v.(T); !ok {
			return fmt.Errorf("is not %s", description)
		}
		return nil
	}
}

// allowListParam declares an optional list of extra characters.
// Characters must be distinct, and can't already satisfy the character class, since that would be meaningless.
func allowListParam(adjective string, class func(rune) bool) ParamSpec {
	optional := func(check ParamCheck) ParamCheck {
		return func(v any) error {
			if predicate.IsNil(v) {
				return nil
			}
			return check(v)
		}
	}
	return ParamSpec{
		Name: otherAllowedCharactersParam,
		Checks: []ParamCheck{
			optional(paramOfType[[]rune]("a list of characters")),
			optional(func(v any) error {
				if dupe, found := set.FirstDuplicate(v.([]rune)); found {
					return fmt.Errorf("contains the character '%c' more than once", dupe)
				}
				return nil
			}),
			optional(func(v any) error {
				for _, r := range v.([]rune) {
					if class(r) {
						return fmt.Errorf("contains the character '%c', which is already %s", r, adjective)
					}
				}
				return nil
			}),
		},
	}
}

// IsNull verifies that the subject, or every element in element mode, is nil.
func (c *Chain) IsNull() error {
	return c.Invoke(IsNullVerification)
}

// IsNotNull verifies that the subject, or every element in element mode, is not nil.
func (c *Chain) IsNotNull() error {
	return c.Invoke(IsNotNullVerification)
}

// IsAlphabetic verifies that a string contains only letters and any otherAllowedCharacters.
// Calling it without otherAllowedCharacters passes an absent allow-list.
func (c *Chain) IsAlphabetic(otherAllowedCharacters ...rune) error {
	return c.Invoke(IsAlphabeticVerification, otherAllowedCharacters)
}

// IsAlphanumeric verifies that a string contains only letters, digits, and any otherAllowedCharacters.
func (c *Chain) IsAlphanumeric(otherAllowedCharacters ...rune) error {
	return c.Invoke(IsAlphanumericVerification, otherAllowedCharacters)
}

// IsASCIIPrintable verifies that a string contains only printable ASCII characters.
func (c *Chain) IsASCIIPrintable(treatNewLineAsPrintable bool) error {
	return c.Invoke(IsASCIIPrintableVerification, treatNewLineAsPrintable)
}

func (c *Chain) IsWhiteSpace() error {
	return c.Invoke(IsWhiteSpaceVerification)
}

func (c *Chain) IsEmpty() error {
	return c.Invoke(IsEmptyVerification)
}

func (c *Chain) IsLowerCase() error {
	return c.Invoke(IsLowerCaseVerification)
}

func (c *Chain) IsUpperCase() error {
	return c.Invoke(IsUpperCaseVerification)
}

// IsPositive verifies that a built-in number or [decimal.Decimal] is greater than zero.
func (c *Chain) IsPositive() error {
	return c.Invoke(IsPositiveVerification)
}

// IsEmptyUUID verifies that a [uuid.UUID] is [uuid.Nil].
func (c *Chain) IsEmptyUUID() error {
	return c.Invoke(IsEmptyUUIDVerification)
}

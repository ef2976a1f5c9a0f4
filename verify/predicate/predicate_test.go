package predicate

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsNil(t *testing.T) {
	var (
		ptr   *string
		slice []string
		mapp  map[string]int
		iface error
	)
	str := "abc"
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(ptr))
	assert.True(t, IsNil(slice))
	assert.True(t, IsNil(mapp))
	assert.True(t, IsNil(iface))
	assert.False(t, IsNil(&str))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil([]string{}))
}

func TestIsAlphabetic(t *testing.T) {
	tests := map[string]struct {
		value    string
		allowed  []rune
		expected bool
	}{
		"Empty":             {value: "", expected: true},
		"Letters":           {value: "abcXYZ", expected: true},
		"Unicode letters":   {value: "ÄöÜß", expected: true},
		"Dash":              {value: "abc-def", expected: false},
		"Dash allowed":      {value: "abc-def", allowed: []rune{'-'}, expected: true},
		"Digit":             {value: "d7f", allowed: []rune{'-', '*'}, expected: false},
		"Space not allowed": {value: "a b", expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsAlphabetic(tc.value, tc.allowed))
		})
	}
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, IsAlphanumeric("d7f", nil))
	assert.False(t, IsAlphanumeric("d7-f", nil))
	assert.True(t, IsAlphanumeric("d7-f", []rune{'-'}))
}

func TestIsASCIIPrintable(t *testing.T) {
	assert.True(t, IsASCIIPrintable("Hello, World! ~", false))
	assert.False(t, IsASCIIPrintable("line\nbreak", false))
	assert.True(t, IsASCIIPrintable("line\r\nbreak", true))
	assert.False(t, IsASCIIPrintable("tab\there", true))
	assert.False(t, IsASCIIPrintable("café", false))
}

func TestIsWhiteSpace(t *testing.T) {
	assert.True(t, IsWhiteSpace(""))
	assert.True(t, IsWhiteSpace(" \t\r\n"))
	assert.False(t, IsWhiteSpace(" a "))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.False(t, IsEmpty(" "))
}

func TestCase(t *testing.T) {
	assert.True(t, IsLowerCase("abc-123"))
	assert.False(t, IsLowerCase("aBc"))
	assert.True(t, IsUpperCase("ABC-123"))
	assert.False(t, IsUpperCase("ABc"))
	assert.True(t, IsLowerCase("123"))
	assert.True(t, IsUpperCase("123"))
}

func TestIsPositive(t *testing.T) {
	tests := map[string]struct {
		value    any
		expected bool
	}{
		"Int":              {value: 1, expected: true},
		"Zero int":         {value: 0, expected: false},
		"Negative int64":   {value: int64(-4), expected: false},
		"Uint8":            {value: uint8(3), expected: true},
		"Float":            {value: 0.5, expected: true},
		"Negative float32": {value: float32(-0.5), expected: false},
		"Decimal":          {value: decimal.RequireFromString("0.01"), expected: true},
		"Zero decimal":     {value: decimal.Zero, expected: false},
		"String":           {value: "5", expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsPositive(tc.value))
		})
	}
}

func TestIsEmptyUUID(t *testing.T) {
	assert.True(t, IsEmptyUUID(uuid.Nil))
	assert.True(t, IsEmptyUUID(uuid.UUID{}))
	assert.False(t, IsEmptyUUID(uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")))
}

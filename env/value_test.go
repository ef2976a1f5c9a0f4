package env

import (
	"github.com/stretchr/testify/assert"
	"log/slog"
	"strings"
	"testing"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "VERIFYX_LOG_LEVEL", Key("log_level"))
}

func TestVal(t *testing.T) {
	const key = "TEST_VERIFYX_VAL"

	tests := []struct {
		name     string
		value    string
		expected string
		unset    bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: "default",
		},
		{
			name:     "Empty",
			value:    "",
			expected: "default",
		},
		{
			name:     "Trimmed",
			value:    "\n\t abc \t\n",
			expected: "abc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Val(key, "default"))
		})
	}
}

func TestBool(t *testing.T) {
	const key = "TEST_VERIFYX_BOOL"
	tests := []struct {
		name     string
		unset    bool
		value    string
		expected bool
	}{
		{
			name:     "Unset",
			unset:    true,
			expected: false,
		},
		{
			name:     "Not a bool",
			value:    "blah",
			expected: false,
		},
		{
			name:     "Truthy",
			value:    DefaultTrue[0],
			expected: true,
		},
		{
			name:     "Truthy Uppercase",
			value:    strings.ToUpper(DefaultTrue[2]),
			expected: true,
		},
		{
			name:     "Falsy",
			value:    DefaultFalse[3],
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.unset {
				t.Setenv(key, tc.value)
			}
			assert.Equal(t, tc.expected, Bool(key, false))
		})
	}
}

func TestLevel(t *testing.T) {
	const key = "TEST_VERIFYX_LEVEL"
	tests := map[string]struct {
		value    string
		expected slog.Level
	}{
		"Empty":     {value: "", expected: slog.LevelWarn},
		"Garbage":   {value: "loud", expected: slog.LevelWarn},
		"Debug":     {value: "debug", expected: slog.LevelDebug},
		"Uppercase": {value: "ERROR", expected: slog.LevelError},
		"Offset":    {value: "info+2", expected: slog.LevelInfo + 2},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv(key, tc.value)
			assert.Equal(t, tc.expected, Level(key, slog.LevelWarn))
		})
	}
}

// Package env reads configuration for verifyx from environment variables.
// Lookups are forgiving: unset, blank, or unparseable values fall back to the caller's default.
package env

import (
	"log/slog"
	"os"
	"strings"
)

// Prefix is prepended to every key read through [Key].
const Prefix = "VERIFYX_"

// Key builds the environment variable name for a configuration setting.
func Key(name string) string {
	return Prefix + strings.ToUpper(name)
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is blank, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool].
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool].
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse] compared case-insensitively.
// The defaultVal will be returned if the variable isn't set, is empty, or can't be a boolean value.
func Bool(key string, defaultVal bool) bool {
	sval := strings.ToLower(Val(key, ""))
	if len(sval) == 0 {
		return defaultVal
	}
	for _, t := range DefaultTrue {
		if sval == t {
			return true
		}
	}
	for _, f := range DefaultFalse {
		if sval == f {
			return false
		}
	}
	return defaultVal
}

// Level interprets an environment variable as a [slog.Level] using [slog.Level.UnmarshalText].
// Names like "debug", "INFO", or "warn+2" are accepted.
func Level(key string, defaultVal slog.Level) slog.Level {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}

//go:build !noassert

package assert_test

import (
	"errors"
	"github.com/saylorsolutions/verifyx/assert"
	"github.com/saylorsolutions/verifyx/verify"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func TestCheck_Panics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Should have panicked")
		violation, ok := r.(*assert.Violation)
		require.True(t, ok)
		require.True(t, errors.Is(violation, verify.ErrMissingArgument))
		require.True(t, strings.HasSuffix(violation.Error(), "Provided value (name: 'name') is null."))
		require.Contains(t, violation.Location, "assert_test.go#")
	}()
	assert.Check(verify.That(verify.Named[*string]("name", nil)).IsNotNull())
}

func TestCheck_Passes(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Error("Should not have panicked:", r)
		}
	}()
	assert.Check(verify.That(verify.Named("name", "abc")).IsAlphabetic())
	assert.CheckFunc(func() error {
		return verify.That(verify.Named("names", []string{"abc", "def"})).Each().IsLowerCase()
	})
}

func TestDisable(t *testing.T) {
	assert.Disable()
	t.Cleanup(func() {
		assert.Enable()
	})
	assert.Check(verify.That(verify.Named("n", -1)).IsPositive())
	called := false
	assert.CheckFunc(func() error {
		called = true
		return errors.New("never evaluated")
	})
	require.False(t, called, "Disabled assertions shouldn't evaluate")
}

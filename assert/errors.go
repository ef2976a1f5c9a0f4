package assert

import (
	"errors"
	"github.com/saylorsolutions/verifyx/verify"
	"strings"
)

// Violation is the panic value used by [Check] and [CheckFunc].
// It wraps the verification error, so a recovered Violation can still be matched with [errors.Is] against the verify sentinels.
type Violation struct {
	Err      error
	Location string
}

func (v *Violation) Error() string {
	return "assertion failed at " + v.Location + ": " + v.Err.Error()
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// Collector collects the results of many verification statements and can join them with the specified join string.
// Each statement still stops at its own first failure; the Collector only gathers the statements' results.
//
// A Collector is itself an error, so it can be returned directly and compared with [errors.Is] or [errors.As].
//
// Note that a Collector is not concurrency safe.
type Collector struct {
	errs    []error
	joinStr string
}

// CollectErrors creates a new Collector, optionally with a join string that differs from the default of "\n".
func CollectErrors(joinString ...string) *Collector {
	joinStr := "\n"
	if len(joinString) > 0 {
		joinStr = joinString[0]
	}
	return &Collector{
		joinStr: joinStr,
	}
}

// Add adds the result of a verification to the Collector.
// Nil errors will not be included.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// Len returns the number of collected errors.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Has reports whether any collected error is of the given [verify.Kind].
func (c *Collector) Has(kind verify.Kind) bool {
	for _, err := range c.errs {
		if errors.Is(err, kind.Sentinel()) {
			return true
		}
	}
	return false
}

// Result will return nil if no errors have been added to the Collector.
// Otherwise, it will return itself.
//
// This is provided because returning an empty Collector is still returning a non-nil error.
func (c *Collector) Result() error {
	if len(c.errs) > 0 {
		return c
	}
	return nil
}

// Error satisfies the error interface.
func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, c.joinStr)
}

// Unwrap allows using [errors.Is] and [errors.As] to identify any error in the Collector.
func (c *Collector) Unwrap() []error {
	return c.errs
}

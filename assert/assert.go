//go:build !noassert

package assert

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

var disabled atomic.Bool

// Disable will disable assertion evaluation globally.
// This is concurrency safe, but can have side effects in other goroutines that use assertions.
func Disable() {
	disabled.Store(true)
}

// Enable can be used to re-enable assertion evaluation if Disable was called previously.
// Note that this is a global setting, and calling Disable or Enable can have unintended side effects in other goroutines that use assertions.
func Enable() {
	disabled.Store(false)
}

func getCallerDetails() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("'%s#%d'", file, line)
}

// Check will panic with a [*Violation] if err is not nil.
// The err is usually the result of a verification:
//
//	assert.Check(verify.That(verify.Named("name", name)).IsAlphabetic())
func Check(err error) {
	if disabled.Load() || err == nil {
		return
	}
	panic(&Violation{Err: err, Location: getCallerDetails()})
}

// CheckFunc is like [Check], but the verification is only evaluated if assertions are enabled.
func CheckFunc(verification func() error) {
	if disabled.Load() {
		return
	}
	if err := verification(); err != nil {
		panic(&Violation{Err: err, Location: getCallerDetails()})
	}
}

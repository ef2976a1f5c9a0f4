//go:build noassert

package assert

func Disable() {
	// No op
}

func Enable() {
	// No op
}

func Check(err error) {
	// No op
}

func CheckFunc(verification func() error) {
	// No op
}

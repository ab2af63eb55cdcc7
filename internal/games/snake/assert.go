//go:build snakedebug

package snake

import "fmt"

const debugAssertions = true

// assertf panics when an internal invariant is broken. Only compiled into
// builds tagged snakedebug.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("snake: invariant violated: " + fmt.Sprintf(format, args...))
	}
}

// Package invariant checks internal consistency conditions.
//
// Checks are engine defects, not user errors. They panic only in builds
// tagged outlinedebug; otherwise [Enabled] is a false constant and the
// compiler drops them.
package invariant

import "fmt"

// Check panics with a formatted message when cond is false in debug builds.
func Check(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}

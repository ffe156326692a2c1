// Package assert provides debug-only invariant checks.
//
// Assertions panic when they fail. They are compiled in by default and compiled
// out entirely with the assertions_disabled build tag, so callers must never
// depend on them for correctness: an assertion only turns a caller's contract
// violation into an early, readable panic.
package assert

import "fmt"

func fail(args []any) {
	if len(args) == 0 {
		panic("assertion failed")
	}

	if format, ok := args[0].(string); ok {
		panic(fmt.Sprintf(format, args[1:]...))
	}

	panic(fmt.Sprintf("assertion failed: %v", args))
}

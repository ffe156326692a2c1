//go:build !assertions_disabled

package assert

// Enabled reports whether assertions are compiled in.
const Enabled = true

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if !value {
		fail(args)
	}
}

// False asserts that the given value is false.
// The optional args follow the same formatting rules as True.
func False(value bool, args ...any) {
	if value {
		fail(args)
	}
}

// InRange asserts that lo <= i <= hi.
func InRange(i, lo, hi int, args ...any) {
	if i < lo || i > hi {
		if len(args) == 0 {
			args = []any{"index %d out of range [%d, %d]", i, lo, hi}
		}

		fail(args)
	}
}

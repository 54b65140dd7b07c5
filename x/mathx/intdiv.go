package mathx

import "golang.org/x/exp/constraints"

// DivRem returns the truncated quotient and the remainder of a/b.
// b == 0 yields (0, a) so callers walking a table never trap on a zero entry.
func DivRem[T constraints.Unsigned](a, b T) (q, r T) {
	if b == 0 {
		return 0, a
	}
	return a / b, a % b
}

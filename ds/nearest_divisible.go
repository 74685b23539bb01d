package ds

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NearestDivisibleByM returns the smallest value that is greater than or equal to n
// and divisible by m.
func NearestDivisibleByM[T constraints.Integer](n T, m T) T {
	if m <= 0 || n < 0 {
		err := fmt.Errorf(
			`NearestDivisibleByM unreachable code with n = %d and m = %d`,
			n, m,
		)
		panic(err)
	}
	if remainder := n % m; remainder != 0 {
		return n + m - remainder
	}
	return n
}

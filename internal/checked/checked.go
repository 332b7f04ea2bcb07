// Package checked hosts overflow-aware unsigned arithmetic shared across packages.
package checked

import "golang.org/x/exp/constraints"

// Add returns a+b along with a boolean that is false when the sum wrapped
// around the width of T.
func Add[T constraints.Unsigned](a, b T) (T, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// Mul returns a*b along with a boolean that is false when the product wrapped
// around the width of T.
func Mul[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	product := a * b
	if product/a != b {
		return 0, false
	}
	return product, true
}

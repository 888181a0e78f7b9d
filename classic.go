package degreez

import "math"

// NewMin creates the classic Zadeh AND: the combined degree at x is the
// smaller of the two operand degrees. Min is idempotent, commutative, and
// associative, and is the standard intersection for fuzzy sets.
//
// Example:
//
//	miserable := degreez.NewMin("miserable", cold, rainy)
func NewMin(name Name, a, b Term) *Operator {
	return newOperator(name, "min", a, b, func(ax, bx float64) (float64, error) {
		return math.Min(ax, bx), nil
	})
}

// NewMax creates the classic Zadeh OR: the combined degree at x is the larger
// of the two operand degrees. Max is idempotent, commutative, and
// associative, and is the standard union for fuzzy sets.
func NewMax(name Name, a, b Term) *Operator {
	return newOperator(name, "max", a, b, func(ax, bx float64) (float64, error) {
		return math.Max(ax, bx), nil
	})
}

package degreez

import "math"

// NewLukasiewiczAnd creates the Łukasiewicz AND: min(1, a(x)+b(x)).
// The sum saturates at 1.
func NewLukasiewiczAnd(name Name, a, b Term) *Operator {
	return newOperator(name, "lukasiewicz-and", a, b, func(ax, bx float64) (float64, error) {
		return math.Min(1, ax+bx), nil
	})
}

// NewLukasiewiczOr creates the Łukasiewicz OR: max(0, a(x)+b(x)-1).
// The difference saturates at 0.
func NewLukasiewiczOr(name Name, a, b Term) *Operator {
	return newOperator(name, "lukasiewicz-or", a, b, func(ax, bx float64) (float64, error) {
		return math.Max(0, ax+bx-1), nil
	})
}

package degreez

// NewEinsteinProduct creates the Einstein AND:
//
//	a(x)·b(x) / (2 - (a(x)+b(x) - a(x)·b(x)))
//
// The denominator is zero only when both operand degrees are exactly 1; at
// that point the evaluation fails with an error wrapping ErrUndefined rather
// than returning Inf or NaN. Callers combining terms that can both reach 1
// at the same domain point must handle that error.
func NewEinsteinProduct(name Name, a, b Term) *Operator {
	return newOperator(name, "einstein-product", a, b, func(ax, bx float64) (float64, error) {
		denom := 2 - (ax + bx - ax*bx)
		if denom == 0 {
			return 0, undefined("einstein product", ax, bx)
		}
		return (ax * bx) / denom, nil
	})
}

// NewEinsteinSum creates the Einstein OR:
//
//	(a(x)+b(x)) / (1 + a(x)·b(x))
//
// For operand degrees in [0,1] the denominator is at least 1, so the sum is
// defined everywhere on the unit square.
func NewEinsteinSum(name Name, a, b Term) *Operator {
	return newOperator(name, "einstein-sum", a, b, func(ax, bx float64) (float64, error) {
		return (ax + bx) / (1 + ax*bx), nil
	})
}

package degreez

// NewHamacherProduct creates the Hamacher AND:
//
//	a(x)·b(x) / (a(x)+b(x) - a(x)·b(x))
//
// The denominator is zero when both operand degrees are 0; the evaluation
// then fails with an error wrapping ErrUndefined instead of silently
// producing 0 or NaN.
func NewHamacherProduct(name Name, a, b Term) *Operator {
	return newOperator(name, "hamacher-product", a, b, func(ax, bx float64) (float64, error) {
		denom := ax + bx - ax*bx
		if denom == 0 {
			return 0, undefined("hamacher product", ax, bx)
		}
		return (ax * bx) / denom, nil
	})
}

// NewHamacherSum creates the Hamacher OR:
//
//	(a(x)+b(x) - 2·a(x)·b(x)) / (1 - a(x)·b(x))
//
// Undefined when both operand degrees are 1 (zero denominator); the
// evaluation fails with an error wrapping ErrUndefined at that point.
func NewHamacherSum(name Name, a, b Term) *Operator {
	return newOperator(name, "hamacher-sum", a, b, func(ax, bx float64) (float64, error) {
		denom := 1 - ax*bx
		if denom == 0 {
			return 0, undefined("hamacher sum", ax, bx)
		}
		return (ax + bx - 2*ax*bx) / denom, nil
	})
}

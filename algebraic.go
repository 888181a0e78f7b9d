package degreez

// NewProduct creates the algebraic-product AND: a(x)·b(x). For operands in
// (0,1) the result is strictly below Min, making Product the stricter of the
// two standard intersections. Commutative and associative.
func NewProduct(name Name, a, b Term) *Operator {
	return newOperator(name, "product", a, b, func(ax, bx float64) (float64, error) {
		return ax * bx, nil
	})
}

// NewBoundedSum creates the probabilistic OR: a(x)+b(x)-a(x)·b(x).
// BoundedSum is the De Morgan dual of Product under the standard negation:
//
//	boundedSum(a, b) == 1 - product(inv(a), inv(b))
//
// Commutative and associative.
func NewBoundedSum(name Name, a, b Term) *Operator {
	return newOperator(name, "bounded-sum", a, b, func(ax, bx float64) (float64, error) {
		return ax + bx - ax*bx, nil
	})
}

package degreez

import (
	"fmt"
	"math"
)

// NewLambda creates the lambda compensatory operator, blending AND with OR by
// the weight l:
//
//	l·(a(x)·b(x)) + (1-l)·(a(x)+b(x) - a(x)·b(x))
//
// l=1 behaves like Product, l=0 like BoundedSum, values between interpolate.
// The weight is deliberately NOT validated: l outside [0,1] extrapolates and
// can yield degrees outside the unit interval. Keeping the weight in range is
// the caller's responsibility, matching the classic permissive formulation.
func NewLambda(name Name, a, b Term, l float64) *Operator {
	return newOperator(name, "lambda", a, b, func(ax, bx float64) (float64, error) {
		return l*(ax*bx) + (1-l)*(ax+bx-ax*bx), nil
	})
}

// NewGamma creates the gamma compensatory operator:
//
//	(a(x)·b(x))^(1-g) · ((1-a(x))·(1-b(x)))^g
//
// g=0 behaves AND-like, g=1 OR-like. Unlike NewLambda, the weight has a hard
// contract: g must lie in the closed interval [0,1], and construction fails
// fast with an error wrapping ErrInvalidParameter otherwise. Nothing is
// validated again at evaluation time.
func NewGamma(name Name, a, b Term, g float64) (*Operator, error) {
	if g < 0 || g > 1 {
		return nil, fmt.Errorf("gamma weight %v outside [0,1]: %w", g, ErrInvalidParameter)
	}
	return newOperator(name, "gamma", a, b, func(ax, bx float64) (float64, error) {
		return math.Pow(ax*bx, 1-g) * math.Pow((1-ax)*(1-bx), g), nil
	}), nil
}

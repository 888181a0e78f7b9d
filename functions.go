package degreez

// Noop creates the identity term: the degree at x is x itself. The output is
// not clamped — Noop is a pass-through, useful as a probe when testing
// operators or as the inner term of Alpha and Inv.
func Noop(name Name) Func {
	return Shape(name, func(x float64) float64 {
		return x
	})
}

// Constant creates a term returning c at every domain point. The value is
// deliberately unrestricted so it can represent fully-true (1), fully-false
// (0), or act as a raw scalar; supplying c in [0,1] for fuzzy semantics is
// the caller's responsibility.
func Constant(name Name, c float64) Func {
	return Shape(name, func(float64) float64 {
		return c
	})
}

// Linear creates the clamped linear shape m·x+b. Unlike Noop and Constant,
// the output contract here is strict: the raw line is clamped into [0,1], so
// the returned degree is always a valid membership regardless of m, b, or x.
func Linear(name Name, m, b float64) Func {
	return Shape(name, func(x float64) float64 {
		y := m*x + b
		switch {
		case y <= 0:
			return 0
		case y >= 1:
			return 1
		default:
			return y
		}
	})
}

// Singleton creates a term that is pm exactly at the point p and nonPM
// everywhere else. The comparison is exact float equality with no tolerance.
// Both memberships are expected in [0,1].
func Singleton(name Name, p, nonPM, pm float64) Func {
	return Shape(name, func(x float64) float64 {
		if x == p {
			return pm
		}
		return nonPM
	})
}

// Package degreez provides a composable algebra of fuzzy-set membership
// functions in Go.
//
// # Overview
//
// degreez models a membership function as a first-class value: something that
// maps a domain point to a degree of membership, conventionally in [0,1].
// Canonical shapes (constant, identity, linear, singleton) are built with
// factory adapters, and fuzzy AND/OR/compensatory operators combine existing
// terms into new ones. Nothing is evaluated at construction time; a composed
// expression is just a tree of terms that computes on demand.
//
// # Core Concepts
//
// The library is built around a single, uniform interface:
//
//	type Term interface {
//	    Evaluate(context.Context, float64) (float64, error)
//	    Name() Name
//	}
//
// Key components:
//   - Shapes: leaf terms created with adapter functions (Shape, Apply) or the
//     canonical factories (Noop, Constant, Linear, Singleton)
//   - Connectors: named nodes that own inner terms and combine them
//     (NewMin, NewProduct, NewGamma, NewInv, NewAlpha, ...)
//
// Design philosophy, inherited from the rest of the zoobzio libraries:
//   - Shapes are immutable values (simple functions wrapped with a name)
//   - Connectors are pointers (containers with observability attached)
//
// Everything implements Term, so an operator's output feeds directly into
// another operator. Evaluation is lazy, synchronous, and side-effect free;
// the context carries only the tracez span chain and is never consulted for
// cancellation.
//
// # Quick Start
//
//	cold := degreez.Linear("cold", -0.1, 2)   // 1 below 10°, 0 above 20°
//	rainy := degreez.Constant("rainy", 0.7)
//
//	miserable := degreez.NewMin("miserable", cold, rainy)
//	degree, err := miserable.Evaluate(context.Background(), 12.5)
//
// # Degrees and Ranges
//
// Most terms return degrees in [0,1]. Constant and Noop are deliberately
// unrestricted so they can act as probes or represent raw values; Linear
// clamps its output. Operators assume their operands stay in [0,1] — feeding
// out-of-range degrees into an operator is the caller's responsibility and
// yields out-of-range results rather than errors.
//
// # Error Handling
//
// Failures are structured:
//
//	degree, err := op.Evaluate(ctx, x)
//	if err != nil {
//	    var evalErr *degreez.Error
//	    if errors.As(err, &evalErr) {
//	        log.Printf("failed at: %s", strings.Join(evalErr.Path, " → "))
//	    }
//	    if errors.Is(err, degreez.ErrUndefined) {
//	        // singular point of a rational operator (e.g. Hamacher at 0,0)
//	    }
//	}
//
// Construction fails fast where a parameter has a hard contract (NewGamma's
// weight, NewAlpha's bounds) and is deliberately permissive everywhere the
// classic formulations are permissive (Constant, NewLambda's weight).
//
// # Observability
//
// Every connector owns a metricz registry, a tracez tracer, and typed hookz
// events, exposed through Metrics(), Tracer(), and the On* registration
// methods. Leaf shapes carry none; they are plain values.
package degreez

import (
	"context"
	"fmt"
	"time"
)

// Name is a type alias for term and connector names.
// Using this type encourages storing names as constants rather than
// using inline strings throughout your code.
//
// Example:
//
//	const (
//	    ColdName  degreez.Name = "cold"
//	    RainyName degreez.Name = "rainy"
//	)
type Name = string

// Term is the interface implemented by every membership function, shape, and
// operator in the package. Evaluate maps a single domain point to a degree of
// membership. Implementations must be pure: the same input always yields the
// same degree, and evaluating never mutates the term.
//
// The context exists to carry the tracez span chain through composed
// expressions. Evaluation completes in bounded time and does not check for
// cancellation.
type Term interface {
	Evaluate(context.Context, float64) (float64, error)
	Name() Name
}

// Func is a named leaf term wrapping an evaluation function. It is the basic
// building block created by the adapter functions Shape and Apply and by the
// canonical factories in this package.
//
// The fn field is intentionally private so that leaf terms are only created
// through the provided adapters, keeping error wrapping and path tracking
// consistent.
type Func struct {
	fn   func(context.Context, float64) (float64, error)
	name Name
}

// Evaluate implements the Term interface.
func (f Func) Evaluate(ctx context.Context, x float64) (float64, error) {
	return f.fn(ctx, x)
}

// Name returns the name of the term for debugging and error reporting.
func (f Func) Name() Name {
	return f.name
}

// Shape creates a leaf Term from a pure shape function. Shape is the adapter
// for membership curves that cannot fail — use it for any closed-form curve
// over the domain.
//
// Example:
//
//	triangle := degreez.Shape("around-5", func(x float64) float64 {
//	    return max(0, 1-math.Abs(x-5)/2)
//	})
func Shape(name Name, fn func(float64) float64) Func {
	return Func{
		name: name,
		fn: func(_ context.Context, x float64) (float64, error) {
			return fn(x), nil
		},
	}
}

// Apply creates a leaf Term from a function that may fail — a lookup against
// sampled data, a shape with a restricted domain, or anything else whose
// degree is not always defined. On failure the error is wrapped into *Error
// with this term's name as the path root, so composed expressions report
// where the failure originated.
//
// For shapes that cannot fail, use Shape instead.
func Apply(name Name, fn func(context.Context, float64) (float64, error)) Func {
	return Func{
		name: name,
		fn: func(ctx context.Context, x float64) (float64, error) {
			start := time.Now()
			result, err := fn(ctx, x)
			if err != nil {
				return 0, &Error{
					Path:      []Name{name},
					Input:     x,
					Err:       err,
					Timestamp: time.Now(),
					Duration:  time.Since(start),
				}
			}
			return result, nil
		},
	}
}

// recoverFromPanic converts a panic inside an evaluation into a structured
// *Error so that a misbehaving user shape cannot crash the caller.
func recoverFromPanic(result *float64, err *error, name Name, input float64) {
	if r := recover(); r != nil {
		*result = 0
		*err = &Error{
			Path:      []Name{name},
			Input:     input,
			Err:       fmt.Errorf("panic during evaluation: %v", r),
			Timestamp: time.Now(),
		}
	}
}

package degreez

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for the two failure classes in the algebra.
var (
	// ErrUndefined reports that an operator's formula is undefined for the
	// operand degrees at hand — a zero denominator in one of the rational
	// operators (Einstein product at both operands 1, Hamacher product at
	// both operands 0, Hamacher sum at both operands 1). It is never masked:
	// the evaluation fails and the caller decides what to do.
	ErrUndefined = errors.New("operation undefined for operand degrees")

	// ErrInvalidParameter reports a construction-time contract violation,
	// such as a gamma weight outside [0,1] or alpha bounds with
	// lower >= upper. Constructors return it immediately; nothing is
	// deferred to evaluation time.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Error provides structured context about a failed evaluation.
// It records where in the composed expression the failure occurred,
// the domain point being evaluated, and the underlying cause.
//
// Path is ordered outermost-first: ["miserable", "hamacher", "cold"] means
// the failure originated in "cold", evaluated as an operand of "hamacher",
// itself an operand of "miserable". Each connector prepends its own name as
// the error propagates outward.
type Error struct {
	Timestamp time.Time
	Err       error
	Path      []Name
	Input     float64
	Duration  time.Duration
}

// Error implements the error interface, providing a detailed error message.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("evaluation at %v failed: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("%s evaluating %v: %v", strings.Join(e.Path, " -> "), e.Input, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// prependPath adds a connector's name to the front of an error path as the
// error propagates outward. Non-structured errors are wrapped first so the
// path exists.
func prependPath(name Name, x float64, err error) error {
	var evalErr *Error
	if errors.As(err, &evalErr) {
		evalErr.Path = append([]Name{name}, evalErr.Path...)
		return evalErr
	}
	return &Error{
		Path:      []Name{name},
		Input:     x,
		Err:       err,
		Timestamp: time.Now(),
	}
}

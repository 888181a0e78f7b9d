package degreez

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/clockz"
	"github.com/zoobzio/hookz"
	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Operator observability.
const (
	OperatorEvaluatedTotal    = metricz.Key("operator.evaluated.total")
	OperatorUndefinedTotal    = metricz.Key("operator.undefined.total")
	OperatorOperandErrorTotal = metricz.Key("operator.operand_errors.total")
)

// Span names for Operator.
const (
	OperatorEvaluateSpan = tracez.Key("operator.evaluate")
)

// Span tags for Operator.
const (
	OperatorTagConnector = tracez.Tag("operator.connector")
	OperatorTagKind      = tracez.Tag("operator.kind")
	OperatorTagSuccess   = tracez.Tag("operator.success")
	OperatorTagError     = tracez.Tag("operator.error")

	// Hook event keys.
	OperatorEventEvaluated = hookz.Key("operator.evaluated")
	OperatorEventUndefined = hookz.Key("operator.undefined")
)

// EvalEvent describes one evaluation of an operator, emitted via hookz after
// the formula has been applied (or found undefined). External systems can
// subscribe to track degrees flowing through an expression without touching
// the evaluation path itself.
type EvalEvent struct {
	Name      Name          // Operator name
	Kind      string        // Operator kind ("min", "hamacher-product", ...)
	Input     float64       // Domain point being evaluated
	Left      float64       // Degree from the first operand
	Right     float64       // Degree from the second operand
	Result    float64       // Combined degree (zero when undefined)
	Err       error         // Undefined-operation error, if any
	Success   bool          // Whether the formula was defined
	Duration  time.Duration // Time spent evaluating operands and formula
	Timestamp time.Time     // When the evaluation completed
}

// formula combines two operand degrees into one. It returns ErrUndefined
// (wrapped) at a singular point and performs no other validation.
type formula func(ax, bx float64) (float64, error)

// Operator is a binary fuzzy combinator: a Term that owns two operand Terms
// and combines their degrees pointwise with a fixed formula. Operators are
// built with the New* constructors (NewMin, NewProduct, NewGamma, ...) and
// are immutable after construction — operands and the formula never change,
// so an Operator is observationally pure and safe for concurrent use without
// locking.
//
// Both operands are evaluated independently on every call, in order, with no
// caching across calls. An operand failure aborts the evaluation before the
// formula runs; a singular point of the formula itself surfaces as an error
// wrapping ErrUndefined.
//
// Because an Operator is itself a Term, expressions nest freely:
//
//	cold := degreez.Linear("cold", -0.1, 2)
//	windy := degreez.Shape("windy", gustCurve)
//	rainy := degreez.Constant("rainy", 0.7)
//
//	harsh := degreez.NewMax("harsh", windy, rainy)
//	miserable := degreez.NewProduct("miserable", cold, harsh)
//
// # Observability
//
// Metrics:
//   - operator.evaluated.total: counter of evaluations started
//   - operator.undefined.total: counter of singular-point failures
//   - operator.operand_errors.total: counter of operand failures
//
// Traces:
//   - operator.evaluate: span covering operand evaluation and the formula
//
// Events (via hooks):
//   - operator.evaluated: fired after each defined evaluation
//   - operator.undefined: fired when the formula hits a singular point
//
// Example with hooks:
//
//	op := degreez.NewHamacherProduct("overlap", a, b)
//	op.OnUndefined(func(ctx context.Context, e degreez.EvalEvent) error {
//	    log.Printf("undefined at x=%v (operands %v, %v)", e.Input, e.Left, e.Right)
//	    return nil
//	})
type Operator struct {
	a    Term
	b    Term
	eval formula
	name Name
	kind string

	// Observability
	clock   clockz.Clock
	metrics *metricz.Registry
	tracer  *tracez.Tracer
	hooks   *hookz.Hooks[EvalEvent]
}

// newOperator wires up a combinator with its observability components.
// All exported constructors funnel through here.
func newOperator(name Name, kind string, a, b Term, eval formula) *Operator {
	registry := metricz.New()
	registry.Counter(OperatorEvaluatedTotal)
	registry.Counter(OperatorUndefinedTotal)
	registry.Counter(OperatorOperandErrorTotal)

	return &Operator{
		name:    name,
		kind:    kind,
		a:       a,
		b:       b,
		eval:    eval,
		metrics: registry,
		tracer:  tracez.New(),
		hooks:   hookz.New[EvalEvent](),
	}
}

// Evaluate implements the Term interface. It evaluates both operands at x,
// applies the operator's formula, and returns the combined degree.
func (o *Operator) Evaluate(ctx context.Context, x float64) (result float64, err error) {
	defer recoverFromPanic(&result, &err, o.name, x)

	ctx, span := o.tracer.StartSpan(ctx, OperatorEvaluateSpan)
	defer span.Finish()
	span.SetTag(OperatorTagConnector, string(o.name))
	span.SetTag(OperatorTagKind, o.kind)

	o.metrics.Counter(OperatorEvaluatedTotal).Inc()

	clock := o.getClock()
	start := clock.Now()

	ax, err := o.a.Evaluate(ctx, x)
	if err != nil {
		o.metrics.Counter(OperatorOperandErrorTotal).Inc()
		span.SetTag(OperatorTagSuccess, "false")
		span.SetTag(OperatorTagError, err.Error())
		return 0, prependPath(o.name, x, err)
	}

	bx, err := o.b.Evaluate(ctx, x)
	if err != nil {
		o.metrics.Counter(OperatorOperandErrorTotal).Inc()
		span.SetTag(OperatorTagSuccess, "false")
		span.SetTag(OperatorTagError, err.Error())
		return 0, prependPath(o.name, x, err)
	}

	result, evalErr := o.eval(ax, bx)
	duration := clock.Now().Sub(start)

	if evalErr != nil {
		o.metrics.Counter(OperatorUndefinedTotal).Inc()
		span.SetTag(OperatorTagSuccess, "false")
		span.SetTag(OperatorTagError, evalErr.Error())

		_ = o.hooks.Emit(ctx, OperatorEventUndefined, EvalEvent{ //nolint:errcheck
			Name:      o.name,
			Kind:      o.kind,
			Input:     x,
			Left:      ax,
			Right:     bx,
			Err:       evalErr,
			Success:   false,
			Duration:  duration,
			Timestamp: clock.Now(),
		})

		return 0, &Error{
			Path:      []Name{o.name},
			Input:     x,
			Err:       evalErr,
			Timestamp: clock.Now(),
			Duration:  duration,
		}
	}

	span.SetTag(OperatorTagSuccess, "true")

	_ = o.hooks.Emit(ctx, OperatorEventEvaluated, EvalEvent{ //nolint:errcheck
		Name:      o.name,
		Kind:      o.kind,
		Input:     x,
		Left:      ax,
		Right:     bx,
		Result:    result,
		Success:   true,
		Duration:  duration,
		Timestamp: clock.Now(),
	})

	return result, nil
}

// Name returns the name of this operator.
func (o *Operator) Name() Name {
	return o.name
}

// Kind returns the operator family ("min", "product", "gamma", ...).
func (o *Operator) Kind() string {
	return o.kind
}

// Operands returns the two inner terms.
func (o *Operator) Operands() (Term, Term) {
	return o.a, o.b
}

// Metrics returns the metrics registry for this operator.
func (o *Operator) Metrics() *metricz.Registry {
	return o.metrics
}

// Tracer returns the tracer for this operator.
func (o *Operator) Tracer() *tracez.Tracer {
	return o.tracer
}

// WithClock sets a custom clock for event timestamps and durations.
// Tests use this with clockz.NewFakeClock for deterministic events.
func (o *Operator) WithClock(clock clockz.Clock) *Operator {
	o.clock = clock
	return o
}

func (o *Operator) getClock() clockz.Clock {
	if o.clock == nil {
		return clockz.RealClock
	}
	return o.clock
}

// OnEvaluated registers a handler fired after every defined evaluation.
// The handler is called asynchronously with the completed EvalEvent.
func (o *Operator) OnEvaluated(handler func(context.Context, EvalEvent) error) error {
	_, err := o.hooks.Hook(OperatorEventEvaluated, handler)
	return err
}

// OnUndefined registers a handler fired when the formula hits a singular
// point. The handler is called asynchronously with the failing EvalEvent.
func (o *Operator) OnUndefined(handler func(context.Context, EvalEvent) error) error {
	_, err := o.hooks.Hook(OperatorEventUndefined, handler)
	return err
}

// Close gracefully shuts down observability components.
func (o *Operator) Close() error {
	if o.tracer != nil {
		o.tracer.Close()
	}
	o.hooks.Close()
	return nil
}

// undefined builds the singular-point error for a rational operator.
func undefined(kind string, ax, bx float64) error {
	return fmt.Errorf("%s at operands (%v, %v): %w", kind, ax, bx, ErrUndefined)
}

package degreez

import (
	"context"

	"github.com/zoobzio/tracez"
)

// Span names for Inv.
const (
	InvEvaluateSpan = tracez.Key("inv.evaluate")
)

// Span tags for Inv.
const (
	InvTagConnector = tracez.Tag("inv.connector")
)

// Inv is the standard fuzzy negation: the degree at x is 1 - t(x) for the
// wrapped term t. For terms with range in [0,1], negation is involutive:
// wrapping twice recovers the original degrees (within floating-point
// tolerance). Inner errors propagate unmodified apart from path prepending.
type Inv struct {
	inner  Term
	name   Name
	tracer *tracez.Tracer
}

// NewInv creates an Inv connector negating the given term.
func NewInv(name Name, t Term) *Inv {
	return &Inv{
		name:   name,
		inner:  t,
		tracer: tracez.New(),
	}
}

// Evaluate implements the Term interface.
func (i *Inv) Evaluate(ctx context.Context, x float64) (result float64, err error) {
	defer recoverFromPanic(&result, &err, i.name, x)

	ctx, span := i.tracer.StartSpan(ctx, InvEvaluateSpan)
	defer span.Finish()
	span.SetTag(InvTagConnector, string(i.name))

	v, err := i.inner.Evaluate(ctx, x)
	if err != nil {
		return 0, prependPath(i.name, x, err)
	}
	return 1 - v, nil
}

// Name returns the name of this connector.
func (i *Inv) Name() Name {
	return i.name
}

// Inner returns the wrapped term.
func (i *Inv) Inner() Term {
	return i.inner
}

// Tracer returns the tracer for this connector.
func (i *Inv) Tracer() *tracez.Tracer {
	return i.tracer
}

// Close gracefully shuts down observability components.
func (i *Inv) Close() error {
	if i.tracer != nil {
		i.tracer.Close()
	}
	return nil
}

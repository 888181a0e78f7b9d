package degreez

import (
	"context"
	"fmt"

	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
)

// Metric keys for Alpha observability.
const (
	AlphaEvaluatedTotal   = metricz.Key("alpha.evaluated.total")
	AlphaClampedLowTotal  = metricz.Key("alpha.clamped_low.total")
	AlphaClampedHighTotal = metricz.Key("alpha.clamped_high.total")
	AlphaPassthroughTotal = metricz.Key("alpha.passthrough.total")
)

// Span names for Alpha.
const (
	AlphaEvaluateSpan = tracez.Key("alpha.evaluate")
)

// Span tags for Alpha.
const (
	AlphaTagConnector = tracez.Tag("alpha.connector")
	AlphaTagClamped   = tracez.Tag("alpha.clamped")
)

// Alpha is the alpha-cut connector: it clamps the degree of the wrapped term
// into the closed interval [lower, upper]. Degrees at or below lower become
// lower, degrees at or above upper become upper, everything in between passes
// through unchanged.
//
// Clamp decisions are counted so callers can see how often a cut actually
// bites:
//   - alpha.evaluated.total: counter of evaluations
//   - alpha.clamped_low.total: degrees raised to lower
//   - alpha.clamped_high.total: degrees lowered to upper
//   - alpha.passthrough.total: degrees passed through unchanged
type Alpha struct {
	inner   Term
	name    Name
	lower   float64
	upper   float64
	metrics *metricz.Registry
	tracer  *tracez.Tracer
}

// NewAlpha creates an Alpha connector clamping t into [lower, upper].
// The bounds have a hard contract: lower must be strictly less than upper,
// and construction fails fast with an error wrapping ErrInvalidParameter
// otherwise.
func NewAlpha(name Name, lower, upper float64, t Term) (*Alpha, error) {
	if lower >= upper {
		return nil, fmt.Errorf("alpha bounds lower %v >= upper %v: %w", lower, upper, ErrInvalidParameter)
	}

	registry := metricz.New()
	registry.Counter(AlphaEvaluatedTotal)
	registry.Counter(AlphaClampedLowTotal)
	registry.Counter(AlphaClampedHighTotal)
	registry.Counter(AlphaPassthroughTotal)

	return &Alpha{
		name:    name,
		inner:   t,
		lower:   lower,
		upper:   upper,
		metrics: registry,
		tracer:  tracez.New(),
	}, nil
}

// Evaluate implements the Term interface.
func (a *Alpha) Evaluate(ctx context.Context, x float64) (result float64, err error) {
	defer recoverFromPanic(&result, &err, a.name, x)

	ctx, span := a.tracer.StartSpan(ctx, AlphaEvaluateSpan)
	defer span.Finish()
	span.SetTag(AlphaTagConnector, string(a.name))

	a.metrics.Counter(AlphaEvaluatedTotal).Inc()

	v, err := a.inner.Evaluate(ctx, x)
	if err != nil {
		return 0, prependPath(a.name, x, err)
	}

	switch {
	case v <= a.lower:
		a.metrics.Counter(AlphaClampedLowTotal).Inc()
		span.SetTag(AlphaTagClamped, "low")
		return a.lower, nil
	case v >= a.upper:
		a.metrics.Counter(AlphaClampedHighTotal).Inc()
		span.SetTag(AlphaTagClamped, "high")
		return a.upper, nil
	default:
		a.metrics.Counter(AlphaPassthroughTotal).Inc()
		span.SetTag(AlphaTagClamped, "none")
		return v, nil
	}
}

// Name returns the name of this connector.
func (a *Alpha) Name() Name {
	return a.name
}

// Bounds returns the clamp interval.
func (a *Alpha) Bounds() (lower, upper float64) {
	return a.lower, a.upper
}

// Inner returns the wrapped term.
func (a *Alpha) Inner() Term {
	return a.inner
}

// Metrics returns the metrics registry for this connector.
func (a *Alpha) Metrics() *metricz.Registry {
	return a.metrics
}

// Tracer returns the tracer for this connector.
func (a *Alpha) Tracer() *tracez.Tracer {
	return a.tracer
}

// Close gracefully shuts down observability components.
func (a *Alpha) Close() error {
	if a.tracer != nil {
		a.tracer.Close()
	}
	return nil
}

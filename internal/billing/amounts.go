// Package billing holds the pure billing core: the response mapper, the
// metrics calculator, the vendor aggregation engine, and the discount math.
// Nothing in this package performs I/O; every function is deterministic over
// its inputs.
package billing

import "math"

// finite reports whether v is a usable number. NaN and infinities are treated
// as absent everywhere in the core; they contribute zero, never an error.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// deref returns the value of an optional amount, defaulting absent or
// non-finite values to zero.
func deref(p *float64) float64 {
	if p == nil || !finite(*p) {
		return 0
	}
	return *p
}

// pick returns the first present, finite amount of (primary, fallback),
// defaulting to zero when neither is usable.
func pick(primary, fallback *float64) float64 {
	if primary != nil && finite(*primary) {
		return *primary
	}
	return deref(fallback)
}

// ptr boxes a float64 for the optional-amount fields.
func ptr(v float64) *float64 {
	return &v
}

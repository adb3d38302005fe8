package canvas

import "math"

// finite reports whether every value is neither NaN nor ±Inf.
// All numeric setters go through it before mutating state.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// unitInterval reports whether v is finite and within [0, 1].
func unitInterval(v float64) bool {
	return finite(v) && v >= 0 && v <= 1
}

// positive reports whether v is finite and strictly greater than zero.
func positive(v float64) bool {
	return finite(v) && v > 0
}

// nonNegative reports whether v is finite and not below zero.
func nonNegative(v float64) bool {
	return finite(v) && v >= 0
}

// enumMember is implemented by every closed enumeration the context accepts.
type enumMember interface {
	valid() bool
}

// known reports whether e is one of its type's declared values.
func known(e enumMember) bool {
	return e.valid()
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package canvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the Canvas keyword for c.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	default:
		return "unknown"
	}
}

func (c LineCap) valid() bool {
	return c >= LineCapButt && c <= LineCapSquare
}

// ParseLineCap converts "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, bool) {
	for c := LineCapButt; c <= LineCapSquare; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return LineCapButt, false
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the Canvas keyword for j.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	default:
		return "unknown"
	}
}

func (j LineJoin) valid() bool {
	return j >= LineJoinMiter && j <= LineJoinBevel
}

// ParseLineJoin converts "miter", "round" or "bevel".
func ParseLineJoin(s string) (LineJoin, bool) {
	for j := LineJoinMiter; j <= LineJoinBevel; j++ {
		if j.String() == s {
			return j, true
		}
	}
	return LineJoinMiter, false
}

// normalizeDash validates a dash list and returns the stored form.
// Any negative or non-finite segment rejects the whole list. An odd number
// of segments is concatenated with itself, so [5] is stored as [5, 5].
func normalizeDash(segments []float64) ([]float64, bool) {
	for _, l := range segments {
		if !nonNegative(l) {
			return nil, false
		}
	}
	if len(segments) == 0 {
		return nil, true
	}

	n := len(segments)
	if n%2 != 0 {
		n *= 2
	}
	out := make([]float64, n)
	copy(out, segments)
	if n != len(segments) {
		copy(out[len(segments):], segments)
	}
	return out, true
}

// cloneDash returns an independent copy of a dash list.
func cloneDash(d []float64) []float64 {
	if d == nil {
		return nil
	}
	out := make([]float64, len(d))
	copy(out, d)
	return out
}

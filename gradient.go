package canvas

import (
	"fmt"
	"math"
	"sort"
)

// GradientKind distinguishes the two gradient geometries.
type GradientKind int

const (
	// GradientLinear paints along the line between two points.
	GradientLinear GradientKind = iota
	// GradientRadial paints along the cone between two circles.
	GradientRadial
)

// String returns a short name for the kind.
func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	default:
		return "unknown"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient is a linear or radial color ramp usable as a fill or stroke style.
//
// The geometry is fixed at creation and interpreted in the user space that
// is active when a shape is drawn, not when the gradient is created. It is
// stored unchecked: NaN coordinates or negative radii are kept as given and
// left to the rasterizer.
//
// A *Gradient is a shared handle. Every drawing state holding it observes
// stops added later.
type Gradient struct {
	kind   GradientKind
	x0, y0 float64
	r0     float64
	x1, y1 float64
	r1     float64
	stops  []ColorStop
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1)
// with an empty stop list.
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{kind: GradientLinear, x0: x0, y0: y0, x1: x1, y1: y1}
}

// NewRadialGradient creates a radial gradient from the circle at (x0, y0)
// with radius r0 to the circle at (x1, y1) with radius r1.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	return &Gradient{kind: GradientRadial, x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}
}

// Kind returns the gradient geometry.
func (g *Gradient) Kind() GradientKind {
	return g.kind
}

// Start returns the start point (center of the start circle for radial gradients).
func (g *Gradient) Start() Point {
	return Point{X: g.x0, Y: g.y0}
}

// End returns the end point (center of the end circle for radial gradients).
func (g *Gradient) End() Point {
	return Point{X: g.x1, Y: g.y1}
}

// Radii returns the start and end radii. Both are zero for linear gradients.
func (g *Gradient) Radii() (r0, r1 float64) {
	return g.r0, g.r1
}

// AddColorStop appends a color stop. Stops keep their insertion order;
// they are neither sorted nor deduplicated.
// It returns an error wrapping ErrRange if offset is outside [0, 1] or not
// finite, in which case the stop list is left unchanged.
func (g *Gradient) AddColorStop(offset float64, c RGBA) error {
	if !unitInterval(offset) {
		return fmt.Errorf("canvas: color stop offset %v: %w", offset, ErrRange)
	}
	g.stops = append(g.stops, ColorStop{Offset: offset, Color: c})
	return nil
}

// ColorStops returns a copy of the stops in insertion order.
func (g *Gradient) ColorStops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// SortedStops returns a copy of the stops ordered by offset, the order in
// which they are resolved. Stops sharing an offset keep insertion order.
func (g *Gradient) SortedStops() []ColorStop {
	return sortStops(g.stops)
}

// NumStops returns the number of color stops.
func (g *Gradient) NumStops() int {
	return len(g.stops)
}

// ColorAt returns the gradient color at (x, y) in gradient space.
// Degenerate geometry and points outside a radial cone yield Transparent.
func (g *Gradient) ColorAt(x, y float64) RGBA {
	var (
		t  float64
		ok bool
	)
	switch g.kind {
	case GradientRadial:
		t, ok = g.radialParam(x, y)
	default:
		t, ok = g.linearParam(x, y)
	}
	if !ok {
		return Transparent
	}
	return colorAtOffset(g.stops, t)
}

// linearParam projects p onto the gradient axis.
func (g *Gradient) linearParam(x, y float64) (float64, bool) {
	dx := g.x1 - g.x0
	dy := g.y1 - g.y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 || !finite(lengthSq) {
		return 0, false
	}
	// t = dot(P - Start, End - Start) / |End - Start|^2
	return ((x-g.x0)*dx + (y-g.y0)*dy) / lengthSq, true
}

// radialParam finds the largest ω for which the circle
// c(ω) = c0 + ω(c1-c0), r(ω) = r0 + ω(r1-r0) passes through p with r(ω) >= 0.
func (g *Gradient) radialParam(x, y float64) (float64, bool) {
	if g.x0 == g.x1 && g.y0 == g.y1 && g.r0 == g.r1 {
		return 0, false
	}

	cdx, cdy := g.x1-g.x0, g.y1-g.y0
	pdx, pdy := x-g.x0, y-g.y0
	dr := g.r1 - g.r0

	// |pd - ω·cd|² = (r0 + ω·dr)²  ⇒  aω² - 2bω + c = 0
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.r0*dr
	c := pdx*pdx + pdy*pdy - g.r0*g.r0

	radiusOK := func(w float64) bool { return g.r0+w*dr >= 0 }

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		w := c / (2 * b)
		return w, radiusOK(w)
	}

	disc := b*b - a*c
	if disc < 0 || !finite(disc) {
		return 0, false
	}
	sq := math.Sqrt(disc)
	hi, lo := (b+sq)/a, (b-sq)/a
	if hi < lo {
		hi, lo = lo, hi
	}
	switch {
	case radiusOK(hi):
		return hi, true
	case radiusOK(lo):
		return lo, true
	default:
		return 0, false
	}
}

// sortStops orders stops by offset. The sort is stable so stops sharing an
// offset stay in insertion order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the interpolated color at offset t, padding
// outside [0, 1]. At an offset shared by several stops the last one added
// wins, producing a hard edge.
func colorAtOffset(stops []ColorStop, t float64) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = clamp01(t)

	// First stop strictly past t.
	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset > t
	})
	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolatePremultiplied(stop1.Color, stop2.Color, localT)
}

// interpolatePremultiplied blends two colors in premultiplied sRGB space,
// so a fully transparent stop does not tint its neighbor.
func interpolatePremultiplied(c1, c2 RGBA, t float64) RGBA {
	return c1.Premultiply().Lerp(c2.Premultiply(), t).Unpremultiply()
}

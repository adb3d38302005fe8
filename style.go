package canvas

// StyleKind identifies which paint a Style carries.
type StyleKind int

const (
	// StyleColor is a solid color.
	StyleColor StyleKind = iota
	// StyleGradient is a linear or radial gradient.
	StyleGradient
	// StylePattern is an image pattern.
	StylePattern
)

// String returns a short name for the kind.
func (k StyleKind) String() string {
	switch k {
	case StyleColor:
		return "color"
	case StyleGradient:
		return "gradient"
	case StylePattern:
		return "pattern"
	default:
		return "unknown"
	}
}

// Style is what a fill or stroke paints with: exactly one of a solid color,
// a gradient or a pattern. The zero Style is transparent black.
//
// Gradients and patterns are held by reference. Copying a Style shares the
// underlying *Gradient or *Pattern, never clones it.
type Style struct {
	kind     StyleKind
	color    RGBA
	gradient *Gradient
	pattern  *Pattern
}

// ColorStyle creates a solid color style.
func ColorStyle(c RGBA) Style {
	return Style{kind: StyleColor, color: c}
}

// GradientStyle creates a style painting with g.
func GradientStyle(g *Gradient) Style {
	return Style{kind: StyleGradient, gradient: g}
}

// PatternStyle creates a style painting with p.
func PatternStyle(p *Pattern) Style {
	return Style{kind: StylePattern, pattern: p}
}

// Kind returns the active variant.
func (s Style) Kind() StyleKind {
	return s.kind
}

// Color returns the solid color and true if s is a color style.
func (s Style) Color() (RGBA, bool) {
	if s.kind != StyleColor {
		return RGBA{}, false
	}
	return s.color, true
}

// Gradient returns the gradient handle and true if s is a gradient style.
func (s Style) Gradient() (*Gradient, bool) {
	if s.kind != StyleGradient || s.gradient == nil {
		return nil, false
	}
	return s.gradient, true
}

// Pattern returns the pattern handle and true if s is a pattern style.
func (s Style) Pattern() (*Pattern, bool) {
	if s.kind != StylePattern || s.pattern == nil {
		return nil, false
	}
	return s.pattern, true
}

// IsValid reports whether the active variant carries its payload.
// A gradient or pattern style built from a nil handle is invalid.
func (s Style) IsValid() bool {
	switch s.kind {
	case StyleColor:
		return true
	case StyleGradient:
		return s.gradient != nil
	case StylePattern:
		return s.pattern != nil
	default:
		return false
	}
}

// ColorAt resolves the paint at (x, y) in style space.
// Invalid styles resolve to Transparent.
func (s Style) ColorAt(x, y float64) RGBA {
	switch s.kind {
	case StyleColor:
		return s.color
	case StyleGradient:
		if s.gradient != nil {
			return s.gradient.ColorAt(x, y)
		}
	case StylePattern:
		if s.pattern != nil {
			return s.pattern.ColorAt(x, y)
		}
	}
	return Transparent
}

// Equal reports whether s and other paint with the same color or the same
// gradient/pattern handle.
func (s Style) Equal(other Style) bool {
	return s == other
}

// String describes the style for logs.
func (s Style) String() string {
	switch s.kind {
	case StyleColor:
		return "color(" + formatColor(s.color) + ")"
	case StyleGradient:
		if s.gradient != nil {
			return s.gradient.kind.String() + "-gradient"
		}
	case StylePattern:
		if s.pattern != nil {
			return "pattern(" + s.pattern.repetition.String() + ")"
		}
	}
	return "invalid"
}

package canvas

import (
	"fmt"
	"image"
	"math"

	"github.com/gogpu/gputypes"
)

// Repetition controls how a pattern image tiles the plane.
type Repetition int

const (
	// RepeatBoth tiles in both directions.
	RepeatBoth Repetition = iota
	// RepeatX tiles horizontally only.
	RepeatX
	// RepeatY tiles vertically only.
	RepeatY
	// NoRepeat paints the image once.
	NoRepeat
)

// String returns the Canvas keyword for r.
func (r Repetition) String() string {
	switch r {
	case RepeatBoth:
		return "repeat"
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case NoRepeat:
		return "no-repeat"
	default:
		return "unknown"
	}
}

func (r Repetition) valid() bool {
	return r >= RepeatBoth && r <= NoRepeat
}

// ParseRepetition converts a Canvas repetition keyword. The empty string
// means "repeat". Unknown keywords return an error wrapping ErrInvalidArgument.
func ParseRepetition(s string) (Repetition, error) {
	if s == "" {
		return RepeatBoth, nil
	}
	for r := RepeatBoth; r <= NoRepeat; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return RepeatBoth, fmt.Errorf("canvas: pattern repetition %q: %w", s, ErrInvalidArgument)
}

// Pattern is an image tiled according to a Repetition, with its own
// transform applied on top of the drawing transform.
//
// The source image is borrowed; the pattern never copies or releases it.
// A *Pattern is a shared handle, so a transform replaced through one holder
// is seen by every drawing state that references the pattern.
type Pattern struct {
	image      image.Image
	repetition Repetition
	matrix     Matrix
}

// NewPattern creates a pattern over img. It returns an error wrapping
// ErrInvalidArgument if img is nil or repetition is not a known value;
// no pattern is returned in that case.
func NewPattern(img image.Image, repetition Repetition) (*Pattern, error) {
	if img == nil {
		return nil, fmt.Errorf("canvas: pattern image is nil: %w", ErrInvalidArgument)
	}
	if !known(repetition) {
		return nil, fmt.Errorf("canvas: pattern repetition %d: %w", int(repetition), ErrInvalidArgument)
	}
	return &Pattern{image: img, repetition: repetition, matrix: Identity()}, nil
}

// Image returns the borrowed source image.
func (p *Pattern) Image() image.Image {
	return p.image
}

// Repetition returns the tiling mode.
func (p *Pattern) Repetition() Repetition {
	return p.repetition
}

// Transform returns a copy of the pattern matrix.
func (p *Pattern) Transform() Matrix {
	return p.matrix
}

// SetTransform replaces the pattern matrix. A matrix with any NaN or
// infinite component is ignored.
func (p *Pattern) SetTransform(m Matrix) {
	if !m.IsFinite() {
		Logger().Debug("canvas: ignoring non-finite pattern transform", "matrix", m)
		return
	}
	p.matrix = m
}

// ColorAt samples the pattern at (x, y) in pattern space (user space before
// the pattern matrix is applied), using the nearest texel. Points outside a
// non-repeating axis, or a singular pattern matrix, yield Transparent.
func (p *Pattern) ColorAt(x, y float64) RGBA {
	inv, ok := p.matrix.Invert()
	if !ok {
		return Transparent
	}
	src := inv.TransformPoint(Pt(x, y))

	b := p.image.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return Transparent
	}

	ix := int(math.Floor(src.X))
	iy := int(math.Floor(src.Y))

	switch p.repetition {
	case RepeatBoth:
		ix, iy = wrap(ix, w), wrap(iy, h)
	case RepeatX:
		ix = wrap(ix, w)
	case RepeatY:
		iy = wrap(iy, h)
	}
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return Transparent
	}
	return FromColor(p.image.At(b.Min.X+ix, b.Min.Y+iy))
}

// AddressModes returns the horizontal and vertical sampler address modes a
// GPU collaborator should use. Non-repeating axes clamp to the edge; the
// collaborator is expected to mask texels outside the image.
func (p *Pattern) AddressModes() (u, v gputypes.AddressMode) {
	u, v = gputypes.AddressModeClampToEdge, gputypes.AddressModeClampToEdge
	if p.repetition == RepeatBoth || p.repetition == RepeatX {
		u = gputypes.AddressModeRepeat
	}
	if p.repetition == RepeatBoth || p.repetition == RepeatY {
		v = gputypes.AddressModeRepeat
	}
	return u, v
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

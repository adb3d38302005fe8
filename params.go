package canvas

import (
	"github.com/go-text/typesetting/di"
	gtlanguage "github.com/go-text/typesetting/language"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// DrawParams is a read-only snapshot of everything a drawing collaborator
// needs at draw time. Slices are copies; gradient and pattern styles still
// share their handles with the context.
type DrawParams struct {
	Transform Matrix

	Fill   Style
	Stroke Style

	GlobalAlpha float64
	Composite   CompositeOperation
	Blend       gputypes.BlendState

	SmoothingEnabled bool
	SmoothingQuality ImageSmoothingQuality
	Interpolator     draw.Interpolator
	FilterMode       gputypes.FilterMode

	LineWidth  float64
	LineCap    LineCap
	LineJoin   LineJoin
	MiterLimit float64
	Dash       []float64
	DashOffset float64

	Shadow Shadow

	Filter        string
	Font          FontSpec
	TextAlign     TextAlign
	TextBaseline  TextBaseline
	Direction     Direction
	Language      gtlanguage.Language
	LetterSpacing float64
	WordSpacing   float64

	Clip any
	Path any
}

// Resolved returns a snapshot of the current drawing state and default path.
func (c *Context) Resolved() DrawParams {
	s := &c.state
	return DrawParams{
		Transform:        s.transform,
		Fill:             s.fill,
		Stroke:           s.stroke,
		GlobalAlpha:      s.alpha,
		Composite:        s.composite,
		Blend:            s.composite.BlendState(),
		SmoothingEnabled: s.smoothing,
		SmoothingQuality: s.smoothingQuality,
		Interpolator:     Interpolator(s.smoothing, s.smoothingQuality),
		FilterMode:       FilterMode(s.smoothing),
		LineWidth:        s.lineWidth,
		LineCap:          s.lineCap,
		LineJoin:         s.lineJoin,
		MiterLimit:       s.miterLimit,
		Dash:             cloneDash(s.dash),
		DashOffset:       s.dashOffset,
		Shadow:           s.shadow,
		Filter:           s.filter,
		Font:             c.FontSpec(),
		TextAlign:        s.textAlign,
		TextBaseline:     s.textBaseline,
		Direction:        s.direction,
		Language:         shapingLanguage(s.lang),
		LetterSpacing:    s.letterSpacing,
		WordSpacing:      s.wordSpacing,
		Clip:             s.clip,
		Path:             c.path,
	}
}

// FillAt returns the fill paint at device pixel (x, y) with global alpha
// applied. A singular transform paints nothing.
func (p DrawParams) FillAt(x, y float64) RGBA {
	return p.paintAt(p.Fill, x, y)
}

// StrokeAt returns the stroke paint at device pixel (x, y) with global
// alpha applied.
func (p DrawParams) StrokeAt(x, y float64) RGBA {
	return p.paintAt(p.Stroke, x, y)
}

func (p DrawParams) paintAt(s Style, x, y float64) RGBA {
	col, ok := s.Color()
	if !ok {
		inv, invertible := p.Transform.Invert()
		if !invertible {
			return Transparent
		}
		u := inv.TransformPoint(Pt(x, y))
		col = s.ColorAt(u.X, u.Y)
	}
	col.A *= p.GlobalAlpha
	return col
}

// DeviceLineWidth approximates the stroke width in device pixels.
func (p DrawParams) DeviceLineWidth() float64 {
	return p.LineWidth * p.Transform.ScaleFactor()
}

// ResolveDirection resolves Direction for text.
func (p DrawParams) ResolveDirection(text string) di.Direction {
	return p.Direction.Resolve(text)
}

package canvas

import "image"

// SetFillStyle replaces the fill style. Invalid styles (a gradient or
// pattern variant without a handle) are ignored.
func (c *Context) SetFillStyle(s Style) {
	if !c.usable("fillStyle") {
		return
	}
	if !s.IsValid() {
		c.reject("fillStyle", "style", s)
		return
	}
	c.state.fill = s
}

// FillStyle returns the current fill style. Gradient and pattern styles
// share their handle with the context.
func (c *Context) FillStyle() Style {
	return c.state.fill
}

// SetStrokeStyle replaces the stroke style. Invalid styles are ignored.
func (c *Context) SetStrokeStyle(s Style) {
	if !c.usable("strokeStyle") {
		return
	}
	if !s.IsValid() {
		c.reject("strokeStyle", "style", s)
		return
	}
	c.state.stroke = s
}

// StrokeStyle returns the current stroke style.
func (c *Context) StrokeStyle() Style {
	return c.state.stroke
}

// SetFillColor is shorthand for SetFillStyle(ColorStyle(col)).
func (c *Context) SetFillColor(col RGBA) {
	c.SetFillStyle(ColorStyle(col))
}

// SetStrokeColor is shorthand for SetStrokeStyle(ColorStyle(col)).
func (c *Context) SetStrokeColor(col RGBA) {
	c.SetStrokeStyle(ColorStyle(col))
}

// CreateLinearGradient returns a new linear gradient along (x0, y0)-(x1, y1)
// with no color stops. The coordinates are interpreted in the user space in
// effect when the gradient is painted.
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return NewLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient returns a new radial gradient between the circles
// (x0, y0, r0) and (x1, y1, r1) with no color stops. Radii are not checked.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	return NewRadialGradient(x0, y0, r0, x1, y1, r1)
}

// CreatePattern returns a pattern over img. See NewPattern for the errors.
func (c *Context) CreatePattern(img image.Image, repetition Repetition) (*Pattern, error) {
	p, err := NewPattern(img, repetition)
	if err != nil {
		c.log().Debug("canvas: createPattern failed", "err", err)
		return nil, err
	}
	return p, nil
}

// SetGlobalAlpha sets the alpha applied to everything drawn. Values that
// are not finite or lie outside [0, 1] are ignored; they are not clamped.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if !c.usable("globalAlpha") {
		return
	}
	if !unitInterval(alpha) {
		c.reject("globalAlpha", "alpha", alpha)
		return
	}
	c.state.alpha = alpha
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.state.alpha
}

// SetGlobalCompositeOperation sets the compositing rule. Values outside the
// defined operations are ignored.
func (c *Context) SetGlobalCompositeOperation(op CompositeOperation) {
	if !c.usable("globalCompositeOperation") {
		return
	}
	if !known(op) {
		c.reject("globalCompositeOperation", "op", int(op))
		return
	}
	c.state.composite = op
}

// GlobalCompositeOperation returns the current compositing rule.
func (c *Context) GlobalCompositeOperation() CompositeOperation {
	return c.state.composite
}

// SetImageSmoothingEnabled turns image smoothing on or off.
func (c *Context) SetImageSmoothingEnabled(enabled bool) {
	if !c.usable("imageSmoothingEnabled") {
		return
	}
	c.state.smoothing = enabled
}

// ImageSmoothingEnabled reports whether image smoothing is on.
func (c *Context) ImageSmoothingEnabled() bool {
	return c.state.smoothing
}

// SetImageSmoothingQuality sets the smoothing quality preference. Unknown
// values are ignored.
func (c *Context) SetImageSmoothingQuality(q ImageSmoothingQuality) {
	if !c.usable("imageSmoothingQuality") {
		return
	}
	if !known(q) {
		c.reject("imageSmoothingQuality", "quality", int(q))
		return
	}
	c.state.smoothingQuality = q
}

// ImageSmoothingQuality returns the smoothing quality preference.
func (c *Context) ImageSmoothingQuality() ImageSmoothingQuality {
	return c.state.smoothingQuality
}

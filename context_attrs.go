package canvas

import (
	"strings"

	"github.com/go-text/typesetting/di"
	gtlanguage "github.com/go-text/typesetting/language"
)

// SetLineWidth sets the stroke width. Zero, negative and non-finite values
// are ignored.
func (c *Context) SetLineWidth(width float64) {
	if !c.usable("lineWidth") {
		return
	}
	if !positive(width) {
		c.reject("lineWidth", "width", width)
		return
	}
	c.state.lineWidth = width
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 {
	return c.state.lineWidth
}

// SetLineCap sets the shape of stroke ends.
func (c *Context) SetLineCap(lineCap LineCap) {
	if !c.usable("lineCap") {
		return
	}
	if !known(lineCap) {
		c.reject("lineCap", "cap", int(lineCap))
		return
	}
	c.state.lineCap = lineCap
}

// LineCap returns the shape of stroke ends.
func (c *Context) LineCap() LineCap {
	return c.state.lineCap
}

// SetLineJoin sets the shape of stroke corners.
func (c *Context) SetLineJoin(join LineJoin) {
	if !c.usable("lineJoin") {
		return
	}
	if !known(join) {
		c.reject("lineJoin", "join", int(join))
		return
	}
	c.state.lineJoin = join
}

// LineJoin returns the shape of stroke corners.
func (c *Context) LineJoin() LineJoin {
	return c.state.lineJoin
}

// SetMiterLimit sets the miter limit ratio. Zero, negative and non-finite
// values are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !c.usable("miterLimit") {
		return
	}
	if !positive(limit) {
		c.reject("miterLimit", "limit", limit)
		return
	}
	c.state.miterLimit = limit
}

// MiterLimit returns the miter limit ratio.
func (c *Context) MiterLimit() float64 {
	return c.state.miterLimit
}

// SetLineDash sets the dash pattern. The list is copied. A list with a
// negative or non-finite entry is ignored; an odd-length list is repeated
// to make it even. An empty list turns dashing off.
func (c *Context) SetLineDash(segments []float64) {
	if !c.usable("setLineDash") {
		return
	}
	dash, ok := normalizeDash(segments)
	if !ok {
		c.reject("setLineDash", "segments", segments)
		return
	}
	c.state.dash = dash
}

// LineDash returns a copy of the dash pattern, or nil when not dashing.
func (c *Context) LineDash() []float64 {
	return cloneDash(c.state.dash)
}

// SetLineDashOffset sets the phase of the dash pattern.
func (c *Context) SetLineDashOffset(offset float64) {
	if !c.usable("lineDashOffset") {
		return
	}
	if !finite(offset) {
		c.reject("lineDashOffset", "offset", offset)
		return
	}
	c.state.dashOffset = offset
}

// LineDashOffset returns the phase of the dash pattern.
func (c *Context) LineDashOffset() float64 {
	return c.state.dashOffset
}

// SetShadowOffset sets both shadow offsets. Non-finite values are ignored.
func (c *Context) SetShadowOffset(x, y float64) {
	if !c.usable("shadowOffset") {
		return
	}
	if !finite(x, y) {
		c.reject("shadowOffset", "x", x, "y", y)
		return
	}
	c.state.shadow.OffsetX, c.state.shadow.OffsetY = x, y
}

// SetShadowOffsetX sets the horizontal shadow offset.
func (c *Context) SetShadowOffsetX(x float64) {
	c.SetShadowOffset(x, c.state.shadow.OffsetY)
}

// SetShadowOffsetY sets the vertical shadow offset.
func (c *Context) SetShadowOffsetY(y float64) {
	c.SetShadowOffset(c.state.shadow.OffsetX, y)
}

// SetShadowBlur sets the shadow blur level. Negative and non-finite values
// are ignored.
func (c *Context) SetShadowBlur(blur float64) {
	if !c.usable("shadowBlur") {
		return
	}
	if !nonNegative(blur) {
		c.reject("shadowBlur", "blur", blur)
		return
	}
	c.state.shadow.Blur = blur
}

// SetShadowColor sets the shadow color. Colors with non-finite components
// are ignored.
func (c *Context) SetShadowColor(col RGBA) {
	if !c.usable("shadowColor") {
		return
	}
	if !finite(col.R, col.G, col.B, col.A) {
		c.reject("shadowColor", "color", col)
		return
	}
	c.state.shadow.Color = col
}

// Shadow returns the shadow attributes.
func (c *Context) Shadow() Shadow {
	return c.state.shadow
}

// SetFilter stores a CSS filter value such as "blur(2px)". The value is not
// interpreted; an empty string is ignored.
func (c *Context) SetFilter(filter string) {
	if !c.usable("filter") {
		return
	}
	filter = strings.TrimSpace(filter)
	if filter == "" {
		c.reject("filter", "filter", filter)
		return
	}
	c.state.filter = filter
}

// Filter returns the CSS filter value.
func (c *Context) Filter() string {
	return c.state.filter
}

// SetFont sets the font from a CSS font shorthand. Values that do not parse
// are ignored.
func (c *Context) SetFont(font string) {
	if !c.usable("font") {
		return
	}
	font = strings.TrimSpace(font)
	spec, err := ParseFont(font)
	if err != nil {
		c.reject("font", "err", err)
		return
	}
	c.state.font = font
	c.state.fontSpec = spec
}

// Font returns the font shorthand as it was set.
func (c *Context) Font() string {
	return c.state.font
}

// FontSpec returns the parsed form of Font.
func (c *Context) FontSpec() FontSpec {
	spec := c.state.fontSpec
	spec.Families = append([]string(nil), spec.Families...)
	return spec
}

// SetTextAlign sets the horizontal text anchor.
func (c *Context) SetTextAlign(align TextAlign) {
	if !c.usable("textAlign") {
		return
	}
	if !known(align) {
		c.reject("textAlign", "align", int(align))
		return
	}
	c.state.textAlign = align
}

// TextAlign returns the horizontal text anchor.
func (c *Context) TextAlign() TextAlign {
	return c.state.textAlign
}

// SetTextBaseline sets the vertical text anchor.
func (c *Context) SetTextBaseline(baseline TextBaseline) {
	if !c.usable("textBaseline") {
		return
	}
	if !known(baseline) {
		c.reject("textBaseline", "baseline", int(baseline))
		return
	}
	c.state.textBaseline = baseline
}

// TextBaseline returns the vertical text anchor.
func (c *Context) TextBaseline() TextBaseline {
	return c.state.textBaseline
}

// SetDirection sets the text direction attribute.
func (c *Context) SetDirection(d Direction) {
	if !c.usable("direction") {
		return
	}
	if !known(d) {
		c.reject("direction", "direction", int(d))
		return
	}
	c.state.direction = d
}

// Direction returns the text direction attribute.
func (c *Context) Direction() Direction {
	return c.state.direction
}

// TextDirection resolves the direction text would be shaped with.
func (c *Context) TextDirection(text string) di.Direction {
	return c.state.direction.Resolve(text)
}

// SetLang sets the text language to LangInherit or a BCP 47 tag.
// Malformed tags are ignored. Tags are stored in canonical form.
func (c *Context) SetLang(lang string) {
	if !c.usable("lang") {
		return
	}
	canon, ok := parseLang(lang)
	if !ok {
		c.reject("lang", "lang", lang)
		return
	}
	c.state.lang = canon
}

// Lang returns the text language.
func (c *Context) Lang() string {
	return c.state.lang
}

// ShapingLanguage returns Lang in the form a go-text shaper takes.
func (c *Context) ShapingLanguage() gtlanguage.Language {
	return shapingLanguage(c.state.lang)
}

// SetLetterSpacing sets the extra space between characters, in CSS pixels.
func (c *Context) SetLetterSpacing(px float64) {
	if !c.usable("letterSpacing") {
		return
	}
	if !finite(px) {
		c.reject("letterSpacing", "px", px)
		return
	}
	c.state.letterSpacing = px
}

// LetterSpacing returns the extra space between characters.
func (c *Context) LetterSpacing() float64 {
	return c.state.letterSpacing
}

// SetWordSpacing sets the extra space between words, in CSS pixels.
func (c *Context) SetWordSpacing(px float64) {
	if !c.usable("wordSpacing") {
		return
	}
	if !finite(px) {
		c.reject("wordSpacing", "px", px)
		return
	}
	c.state.wordSpacing = px
}

// WordSpacing returns the extra space between words.
func (c *Context) WordSpacing() float64 {
	return c.state.wordSpacing
}

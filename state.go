package canvas

// drawingState is one snapshot of every context attribute that save and
// restore manage. The default path is deliberately absent.
type drawingState struct {
	transform Matrix
	clip      any

	fill   Style
	stroke Style

	alpha     float64
	composite CompositeOperation

	smoothing        bool
	smoothingQuality ImageSmoothingQuality

	lineWidth  float64
	lineCap    LineCap
	lineJoin   LineJoin
	miterLimit float64
	dash       []float64
	dashOffset float64

	shadow Shadow

	filter        string
	font          string
	fontSpec      FontSpec
	textAlign     TextAlign
	textBaseline  TextBaseline
	direction     Direction
	lang          string
	letterSpacing float64
	wordSpacing   float64
}

// defaultState returns the initial drawing state. It is the only place the
// initial attribute values are written down.
func defaultState() drawingState {
	return drawingState{
		transform:        Identity(),
		fill:             ColorStyle(Black),
		stroke:           ColorStyle(Black),
		alpha:            1,
		composite:        CompositeSourceOver,
		smoothing:        true,
		smoothingQuality: SmoothingLow,
		lineWidth:        1,
		lineCap:          LineCapButt,
		lineJoin:         LineJoinMiter,
		miterLimit:       10,
		shadow:           Shadow{Color: Transparent},
		filter:           "none",
		font:             DefaultFont,
		fontSpec:         defaultFontSpec,
		textAlign:        TextAlignStart,
		textBaseline:     TextBaselineAlphabetic,
		direction:        DirectionInherit,
		lang:             LangInherit,
	}
}

var defaultFontSpec = mustParseFont(DefaultFont)

func mustParseFont(s string) FontSpec {
	f, err := ParseFont(s)
	if err != nil {
		panic(err)
	}
	return f
}

// clone returns a copy that shares gradient and pattern handles but owns
// its dash list and font family list.
func (s *drawingState) clone() drawingState {
	out := *s
	out.dash = cloneDash(s.dash)
	out.fontSpec.Families = append([]string(nil), s.fontSpec.Families...)
	return out
}

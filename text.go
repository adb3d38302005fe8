package canvas

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	gtlanguage "github.com/go-text/typesetting/language"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// DefaultFont is the font every context starts with.
const DefaultFont = "10px sans-serif"

// LangInherit is the lang value meaning "use the host document language".
const LangInherit = "inherit"

// TextAlign is the horizontal text anchor.
type TextAlign int

const (
	// TextAlignStart anchors at the start edge for the current direction.
	TextAlignStart TextAlign = iota
	// TextAlignEnd anchors at the end edge for the current direction.
	TextAlignEnd
	// TextAlignLeft anchors at the left edge.
	TextAlignLeft
	// TextAlignRight anchors at the right edge.
	TextAlignRight
	// TextAlignCenter anchors at the center.
	TextAlignCenter
)

var textAlignNames = [...]string{
	TextAlignStart:  "start",
	TextAlignEnd:    "end",
	TextAlignLeft:   "left",
	TextAlignRight:  "right",
	TextAlignCenter: "center",
}

func (a TextAlign) String() string {
	if !a.valid() {
		return "unknown"
	}
	return textAlignNames[a]
}

func (a TextAlign) valid() bool {
	return a >= TextAlignStart && a <= TextAlignCenter
}

// ParseTextAlign converts a Canvas textAlign keyword.
func ParseTextAlign(s string) (TextAlign, bool) {
	for i, name := range textAlignNames {
		if name == s {
			return TextAlign(i), true
		}
	}
	return TextAlignStart, false
}

// TextBaseline is the vertical text anchor.
type TextBaseline int

const (
	TextBaselineAlphabetic TextBaseline = iota
	TextBaselineTop
	TextBaselineHanging
	TextBaselineMiddle
	TextBaselineIdeographic
	TextBaselineBottom
)

var textBaselineNames = [...]string{
	TextBaselineAlphabetic:  "alphabetic",
	TextBaselineTop:         "top",
	TextBaselineHanging:     "hanging",
	TextBaselineMiddle:      "middle",
	TextBaselineIdeographic: "ideographic",
	TextBaselineBottom:      "bottom",
}

func (b TextBaseline) String() string {
	if !b.valid() {
		return "unknown"
	}
	return textBaselineNames[b]
}

func (b TextBaseline) valid() bool {
	return b >= TextBaselineAlphabetic && b <= TextBaselineBottom
}

// ParseTextBaseline converts a Canvas textBaseline keyword.
func ParseTextBaseline(s string) (TextBaseline, bool) {
	for i, name := range textBaselineNames {
		if name == s {
			return TextBaseline(i), true
		}
	}
	return TextBaselineAlphabetic, false
}

// Direction is the text direction attribute.
type Direction int

const (
	// DirectionInherit takes the direction from the text itself.
	DirectionInherit Direction = iota
	// DirectionLTR is left-to-right.
	DirectionLTR
	// DirectionRTL is right-to-left.
	DirectionRTL
)

func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "unknown"
	}
}

func (d Direction) valid() bool {
	return d >= DirectionInherit && d <= DirectionRTL
}

// ParseDirection converts "inherit", "ltr" or "rtl".
func ParseDirection(s string) (Direction, bool) {
	for d := DirectionInherit; d <= DirectionRTL; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DirectionInherit, false
}

// Resolve returns the shaping direction for text. DirectionInherit uses the
// first strong character (UAX #9 rule P2) and falls back to left-to-right.
func (d Direction) Resolve(text string) di.Direction {
	switch d {
	case DirectionLTR:
		return di.DirectionLTR
	case DirectionRTL:
		return di.DirectionRTL
	}
	for len(text) > 0 {
		p, size := bidi.LookupString(text)
		switch p.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
		if size == 0 {
			_, size = utf8.DecodeRuneInString(text)
		}
		text = text[size:]
	}
	return di.DirectionLTR
}

// FontSpec is a parsed CSS font shorthand, as handed to a text collaborator.
type FontSpec struct {
	// Aspect carries style, weight and stretch.
	Aspect font.Aspect
	// SmallCaps is set by the small-caps variant keyword.
	SmallCaps bool
	// Size is the font size in CSS pixels.
	Size float64
	// Families lists the font families in order of preference, unquoted.
	Families []string
}

var fontSizeKeywords = map[string]float64{
	"xx-small": 9,
	"x-small":  10,
	"small":    13,
	"medium":   16,
	"large":    18,
	"x-large":  24,
	"xx-large": 32,
}

var fontUnits = map[string]float64{
	"px":  1,
	"pt":  4.0 / 3.0,
	"pc":  16,
	"in":  96,
	"cm":  96 / 2.54,
	"mm":  96 / 25.4,
	"em":  10, // relative to the 10px default font
	"rem": 10,
	"%":   0.1,
}

var fontStretchKeywords = map[string]font.Stretch{
	"ultra-condensed": 0.5,
	"extra-condensed": 0.625,
	"condensed":       0.75,
	"semi-condensed":  0.875,
	"semi-expanded":   1.125,
	"expanded":        1.25,
	"extra-expanded":  1.5,
	"ultra-expanded":  2,
}

// ParseFont parses a CSS font shorthand such as "italic bold 12px serif".
// It returns an error wrapping ErrInvalidArgument when the value is not a
// valid shorthand; a context keeps its previous font in that case.
func ParseFont(s string) (FontSpec, error) {
	spec := FontSpec{
		Aspect: font.Aspect{
			Style:   font.StyleNormal,
			Weight:  font.WeightNormal,
			Stretch: font.StretchNormal,
		},
	}
	fail := func(why string) (FontSpec, error) {
		return FontSpec{}, fmt.Errorf("canvas: font %q: %s: %w", s, why, ErrInvalidArgument)
	}

	rest := strings.TrimSpace(s)
	for {
		word, tail, _ := strings.Cut(rest, " ")
		if word == "" {
			return fail("missing size")
		}
		if size, ok := parseFontSize(word); ok {
			spec.Size = size
			rest = strings.TrimSpace(tail)
			break
		}
		if !applyFontKeyword(&spec, word) {
			return fail("unknown keyword " + strconv.Quote(word))
		}
		rest = strings.TrimSpace(tail)
	}

	for _, fam := range strings.Split(rest, ",") {
		fam = strings.TrimSpace(fam)
		if len(fam) >= 2 && (fam[0] == '"' || fam[0] == '\'') && fam[len(fam)-1] == fam[0] {
			fam = fam[1 : len(fam)-1]
		}
		if fam == "" {
			return fail("empty family")
		}
		spec.Families = append(spec.Families, fam)
	}
	return spec, nil
}

// parseFontSize parses "<size>" or "<size>/<line-height>"; the line height
// is accepted and dropped.
func parseFontSize(word string) (float64, bool) {
	sizePart, _, _ := strings.Cut(word, "/")
	if v, ok := fontSizeKeywords[sizePart]; ok {
		return v, true
	}
	for unit, scale := range fontUnits {
		num, found := strings.CutSuffix(sizePart, unit)
		if !found || num == "" {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue // "2rem" also ends in "em"
		}
		if !nonNegative(v) {
			return 0, false
		}
		return v * scale, true
	}
	return 0, false
}

func applyFontKeyword(spec *FontSpec, word string) bool {
	switch word {
	case "normal":
		return true
	case "italic", "oblique":
		spec.Aspect.Style = font.StyleItalic
	case "small-caps":
		spec.SmallCaps = true
	case "bold":
		spec.Aspect.Weight = font.WeightBold
	case "bolder":
		spec.Aspect.Weight = font.WeightBold
	case "lighter":
		spec.Aspect.Weight = font.Weight(100)
	default:
		if st, ok := fontStretchKeywords[word]; ok {
			spec.Aspect.Stretch = st
			return true
		}
		w, err := strconv.Atoi(word)
		if err != nil || w < 1 || w > 1000 {
			return false
		}
		spec.Aspect.Weight = font.Weight(w)
	}
	return true
}

// parseLang validates a lang value: LangInherit or a BCP 47 tag.
// It returns the canonical form of the tag.
func parseLang(s string) (string, bool) {
	if s == LangInherit {
		return s, true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

// shapingLanguage converts a stored lang value to the go-text language a
// shaper expects. LangInherit maps to the empty language, which shapers
// treat as "unspecified".
func shapingLanguage(lang string) gtlanguage.Language {
	if lang == LangInherit {
		return ""
	}
	return gtlanguage.NewLanguage(lang)
}

package canvas

import (
	"errors"
	"math"
	"testing"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
)

func TestParseFont(t *testing.T) {
	tests := []struct {
		in       string
		size     float64
		families []string
		style    font.Style
		weight   font.Weight
		caps     bool
	}{
		{"10px sans-serif", 10, []string{"sans-serif"}, font.StyleNormal, font.WeightNormal, false},
		{"italic bold 12pt serif", 16, []string{"serif"}, font.StyleItalic, font.WeightBold, false},
		{`small-caps 300 2em "Helvetica Neue", Arial`, 20, []string{"Helvetica Neue", "Arial"}, font.StyleNormal, font.Weight(300), true},
		{"16px/1.5 'Fira Code'", 16, []string{"Fira Code"}, font.StyleNormal, font.WeightNormal, false},
		{"normal normal large monospace", 18, []string{"monospace"}, font.StyleNormal, font.WeightNormal, false},
		{"oblique 1rem cursive", 10, []string{"cursive"}, font.StyleItalic, font.WeightNormal, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFont(tt.in)
			if err != nil {
				t.Fatalf("ParseFont() error = %v", err)
			}
			if !near(f.Size, tt.size) {
				t.Errorf("Size = %v, want %v", f.Size, tt.size)
			}
			if len(f.Families) != len(tt.families) {
				t.Fatalf("Families = %q, want %q", f.Families, tt.families)
			}
			for i := range f.Families {
				if f.Families[i] != tt.families[i] {
					t.Errorf("Families[%d] = %q, want %q", i, f.Families[i], tt.families[i])
				}
			}
			if f.Aspect.Style != tt.style || f.Aspect.Weight != tt.weight {
				t.Errorf("Aspect = %+v", f.Aspect)
			}
			if f.SmallCaps != tt.caps {
				t.Errorf("SmallCaps = %v, want %v", f.SmallCaps, tt.caps)
			}
		})
	}
}

func TestParseFontStretch(t *testing.T) {
	f, err := ParseFont("condensed 10px serif")
	if err != nil {
		t.Fatal(err)
	}
	if f.Aspect.Stretch != font.Stretch(0.75) {
		t.Errorf("Stretch = %v, want 0.75", f.Aspect.Stretch)
	}
}

func TestParseFontInvalid(t *testing.T) {
	for _, in := range []string{"", "sans-serif", "bold", "12px", "12px ,serif", "-3px serif", "heavy 12px serif", "1200 12px serif"} {
		if _, err := ParseFont(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseFont(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestDirectionResolve(t *testing.T) {
	tests := []struct {
		name string
		d    Direction
		text string
		want di.Direction
	}{
		{"ltr forced", DirectionLTR, "שלום", di.DirectionLTR},
		{"rtl forced", DirectionRTL, "hello", di.DirectionRTL},
		{"inherit latin", DirectionInherit, "hello", di.DirectionLTR},
		{"inherit hebrew", DirectionInherit, "שלום", di.DirectionRTL},
		{"inherit arabic after digits", DirectionInherit, "123 مرحبا", di.DirectionRTL},
		{"inherit neutral only", DirectionInherit, "123 !?", di.DirectionLTR},
		{"inherit empty", DirectionInherit, "", di.DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Resolve(tt.text); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"inherit", "inherit", true},
		{"en", "en", true},
		{"en-us", "en-US", true},
		{"zh-Hant-TW", "zh-Hant-TW", true},
		{"", "", false},
		{"!!", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLang(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("parseLang(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}

	if shapingLanguage(LangInherit) != "" {
		t.Error("inherit should map to the unspecified language")
	}
	if shapingLanguage("en-US") != "en-us" {
		t.Errorf("shapingLanguage(en-US) = %q, want en-us", shapingLanguage("en-US"))
	}
}

func TestTextEnums(t *testing.T) {
	for _, name := range []string{"start", "end", "left", "right", "center"} {
		a, ok := ParseTextAlign(name)
		if !ok || a.String() != name {
			t.Errorf("ParseTextAlign(%q) = %v, %v", name, a, ok)
		}
	}
	for _, name := range []string{"top", "hanging", "middle", "alphabetic", "ideographic", "bottom"} {
		b, ok := ParseTextBaseline(name)
		if !ok || b.String() != name {
			t.Errorf("ParseTextBaseline(%q) = %v, %v", name, b, ok)
		}
	}
	for _, name := range []string{"inherit", "ltr", "rtl"} {
		d, ok := ParseDirection(name)
		if !ok || d.String() != name {
			t.Errorf("ParseDirection(%q) = %v, %v", name, d, ok)
		}
	}
	if _, ok := ParseTextAlign("justify"); ok {
		t.Error(`ParseTextAlign("justify") accepted`)
	}
	if TextBaseline(99).valid() || TextAlign(-1).valid() || Direction(3).valid() {
		t.Error("out-of-range text enum reported valid")
	}
}

func TestLineEnums(t *testing.T) {
	for _, name := range []string{"butt", "round", "square"} {
		c, ok := ParseLineCap(name)
		if !ok || c.String() != name {
			t.Errorf("ParseLineCap(%q) = %v, %v", name, c, ok)
		}
	}
	for _, name := range []string{"miter", "round", "bevel"} {
		j, ok := ParseLineJoin(name)
		if !ok || j.String() != name {
			t.Errorf("ParseLineJoin(%q) = %v, %v", name, j, ok)
		}
	}
}

func TestNormalizeDash(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
		ok   bool
	}{
		{"empty", nil, nil, true},
		{"even", []float64{4, 2}, []float64{4, 2}, true},
		{"odd doubled", []float64{5, 3, 1}, []float64{5, 3, 1, 5, 3, 1}, true},
		{"zeros allowed", []float64{0, 0}, []float64{0, 0}, true},
		{"negative", []float64{1, -1}, nil, false},
		{"nan", []float64{1, math.NaN()}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := normalizeDash(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("normalizeDash(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("normalizeDash(%v) = %v, want %v", tt.in, got, tt.want)
					break
				}
			}
		})
	}
}

func TestShadowVisible(t *testing.T) {
	tests := []struct {
		name string
		s    Shadow
		want bool
	}{
		{"default", Shadow{Color: Transparent}, false},
		{"offset transparent", Shadow{OffsetX: 3, Color: Transparent}, false},
		{"color no offset", Shadow{Color: Black}, false},
		{"offset", Shadow{OffsetY: -2, Color: Black}, true},
		{"blur", Shadow{Blur: 4, Color: Black}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Visible(); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
	if (Shadow{Blur: 4}).Sigma() != 2 {
		t.Error("Sigma() is not half the blur")
	}
}

package canvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestRGBA_ColorInterface(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"black", Black, color.NRGBA{0, 0, 0, 255}},
		{"white", White, color.NRGBA{255, 255, 255, 255}},
		{"half red", RGBA2(1, 0, 0, 0.5), color.NRGBA{255, 0, 0, 128}},
		{"out of range clamps", RGBA2(2, -1, 0, 1), color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA_Roundtrip(t *testing.T) {
	orig := RGBA2(0.2, 0.4, 0.6, 0.8)
	got := FromColor(orig.Color())
	for _, pair := range [][2]float64{{got.R, orig.R}, {got.G, orig.G}, {got.B, orig.B}, {got.A, orig.A}} {
		if d := pair[0] - pair[1]; d > 0.003 || d < -0.003 {
			t.Errorf("round trip %v -> %v", orig, got)
			break
		}
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#f00", Red},
		{"00ff00", Green},
		{"#0000ffff", Blue},
		{"#0000", Transparent},
		{"#xyz", Black},
		{"#12345", Black},
		{"", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#FF0000", Red},
		{"  red ", Red},
		{"Blue", Blue},
		{"transparent", Transparent},
		{"rgb(0, 255, 0)", Green},
		{"rgba(255,0,0,0.25)", RGBA2(1, 0, 0, 0.25)},
		{"rgb(300, 0, 0)", Red},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "rgb(1,2)", "rgb(a,b,c)", "rgba(0,0,0,NaN)", "rgb(1,2,3"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestPremultiply(t *testing.T) {
	c := RGBA2(1, 0.5, 0, 0.5)
	p := c.Premultiply()
	if p != RGBA2(0.5, 0.25, 0, 0.5) {
		t.Errorf("Premultiply() = %v", p)
	}
	if back := p.Unpremultiply(); back != c {
		t.Errorf("Unpremultiply() = %v, want %v", back, c)
	}
	if z := RGBA2(1, 1, 1, 0).Unpremultiply(); z != Transparent {
		t.Errorf("Unpremultiply() of zero alpha = %v, want transparent", z)
	}
}

func TestFormatColor(t *testing.T) {
	if got := formatColor(RGBA2(1, 0, 0, 0.5)); got != "rgba(255, 0, 0, 0.5)" {
		t.Errorf("formatColor() = %q", got)
	}
}

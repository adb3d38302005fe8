package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// RGBA implements color.Color so an RGBA can be handed to image code directly.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 65535,
		G: float64(n.G) / 65535,
		B: float64(n.B) / 65535,
		A: float64(n.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
// Malformed input yields opaque black.
func Hex(hex string) RGBA {
	c, ok := parseHexColor(hex)
	if !ok {
		return Black
	}
	return c
}

func parseHexColor(hex string) (RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")

	var digits [8]uint32
	for i := 0; i < len(hex); i++ {
		if i >= len(digits) {
			return RGBA{}, false
		}
		v, ok := hexDigit(hex[i])
		if !ok {
			return RGBA{}, false
		}
		digits[i] = v
	}

	var r, g, b, a uint32
	a = 255
	switch len(hex) {
	case 3:
		r, g, b = digits[0]*17, digits[1]*17, digits[2]*17
	case 4:
		r, g, b, a = digits[0]*17, digits[1]*17, digits[2]*17, digits[3]*17
	case 6:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
	case 8:
		r, g, b = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		a = digits[6]<<4 | digits[7]
	default:
		return RGBA{}, false
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, true
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// ParseColor parses a CSS color value: a hex form prefixed with '#',
// rgb()/rgba() with 0-255 channels and a 0-1 alpha, "transparent", or any
// CSS named color. Keywords are matched case-insensitively.
func ParseColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch {
	case strings.HasPrefix(s, "#"):
		if c, ok := parseHexColor(s); ok {
			return c, nil
		}
	case strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba("):
		if c, ok := parseRGBFunc(s); ok {
			return c, nil
		}
	case s == "transparent":
		return Transparent, nil
	default:
		if nc, ok := colornames.Map[s]; ok {
			return FromColor(nc), nil
		}
	}
	return RGBA{}, fmt.Errorf("canvas: parse color %q: %w", s, ErrInvalidArgument)
}

func parseRGBFunc(s string) (RGBA, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGBA{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, false
	}

	var ch [4]float64
	ch[3] = 1
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || !finite(v) {
			return RGBA{}, false
		}
		if i < 3 {
			v = clamp255(v) / 255
		} else {
			v = clamp01(v)
		}
		ch[i] = v
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
}

// formatColor renders c as a CSS rgba() value.
func formatColor(c RGBA) string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(clamp01(c.A), 'g', 3, 64))
}

// Premultiply returns a premultiplied color.
func (c RGBA) Premultiply() RGBA {
	return RGBA{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c RGBA) Unpremultiply() RGBA {
	if c.A == 0 {
		return RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return RGBA{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Transparent = RGBA2(0, 0, 0, 0)
)

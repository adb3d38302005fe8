package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/canvas"
)

func run(t *testing.T, src string) (*canvas.Context, string, error) {
	t.Helper()
	ctx := canvas.NewContext()
	var out bytes.Buffer
	err := New(ctx, &out).Run(strings.NewReader(src))
	return ctx, out.String(), err
}

func TestRunTransformSequence(t *testing.T) {
	ctx, out, err := run(t, `
# translate, then scale inside a saved state
translate 10 0
save
scale 2 2
print
restore
`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.Contains(out, "transform: matrix(2, 0, 0, 2, 10, 0)") {
		t.Errorf("print output missing scaled transform:\n%s", out)
	}
	if !strings.Contains(out, "saved: 1") {
		t.Errorf("print output missing saved count:\n%s", out)
	}
	if got, want := ctx.GetTransform(), canvas.NewMatrix(1, 0, 0, 1, 10, 0); got != want {
		t.Errorf("GetTransform() = %v, want %v", got, want)
	}
}

func TestRunStyles(t *testing.T) {
	ctx, _, err := run(t, `
fill #f00   # red
stroke purple
gradient linear 0 0 100 0
stop 0 red
stop 1 blue
stroke gradient
`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if c, ok := ctx.FillStyle().Color(); !ok || c != canvas.Red {
		t.Errorf("FillStyle() = %v, want red", ctx.FillStyle())
	}
	g, ok := ctx.StrokeStyle().Gradient()
	if !ok {
		t.Fatalf("StrokeStyle() = %v, want gradient", ctx.StrokeStyle())
	}
	if g.NumStops() != 2 {
		t.Errorf("NumStops() = %d, want 2", g.NumStops())
	}
}

func TestRunPattern(t *testing.T) {
	ctx, _, err := run(t, `
pattern repeat-x 2 2 lime
patterntransform 2 0 0 2 0 0
fill pattern
`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	p, ok := ctx.FillStyle().Pattern()
	if !ok {
		t.Fatalf("FillStyle() = %v, want pattern", ctx.FillStyle())
	}
	if p.Repetition() != canvas.RepeatX {
		t.Errorf("Repetition() = %v, want repeat-x", p.Repetition())
	}
	if got := p.Transform(); got != canvas.Scale(2, 2) {
		t.Errorf("Transform() = %v, want scale(2, 2)", got)
	}
}

func TestRunIgnoredValues(t *testing.T) {
	ctx, _, err := run(t, `
alpha 0.42
alpha 1.5
scale NaN 1
linewidth -3
dash 1 -1
font not a font
lang !!
`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ctx.GlobalAlpha() != 0.42 {
		t.Errorf("GlobalAlpha() = %v, want 0.42", ctx.GlobalAlpha())
	}
	if !ctx.GetTransform().IsIdentity() {
		t.Errorf("GetTransform() = %v, want identity", ctx.GetTransform())
	}
	if ctx.LineWidth() != 1 {
		t.Errorf("LineWidth() = %v, want 1", ctx.LineWidth())
	}
	if ctx.LineDash() != nil {
		t.Errorf("LineDash() = %v, want nil", ctx.LineDash())
	}
	if ctx.Font() != canvas.DefaultFont {
		t.Errorf("Font() = %q, want %q", ctx.Font(), canvas.DefaultFont)
	}
	if ctx.Lang() != canvas.LangInherit {
		t.Errorf("Lang() = %q, want inherit", ctx.Lang())
	}
}

func TestRunAttributes(t *testing.T) {
	ctx, _, err := run(t, `
composite xor
smoothing off
quality high
linecap round
linejoin bevel
miterlimit 4
dash 5
dashoffset 2
shadow 1 2 3 rgba(0,0,0,0.5)
font italic bold 12px "Open Sans", serif
align center
baseline top
direction rtl
lang en-us
filter blur(2px)
letterspacing 1.5
wordspacing 2
rotate 90deg
`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if ctx.GlobalCompositeOperation() != canvas.CompositeXor {
		t.Errorf("composite = %v", ctx.GlobalCompositeOperation())
	}
	if ctx.ImageSmoothingEnabled() || ctx.ImageSmoothingQuality() != canvas.SmoothingHigh {
		t.Errorf("smoothing = %v %v", ctx.ImageSmoothingEnabled(), ctx.ImageSmoothingQuality())
	}
	if ctx.LineCap() != canvas.LineCapRound || ctx.LineJoin() != canvas.LineJoinBevel || ctx.MiterLimit() != 4 {
		t.Errorf("line = %v %v %v", ctx.LineCap(), ctx.LineJoin(), ctx.MiterLimit())
	}
	if d := ctx.LineDash(); len(d) != 2 || d[0] != 5 || d[1] != 5 {
		t.Errorf("LineDash() = %v, want [5 5]", d)
	}
	if s := ctx.Shadow(); s.OffsetX != 1 || s.OffsetY != 2 || s.Blur != 3 || s.Color.A != 0.5 {
		t.Errorf("Shadow() = %+v", s)
	}
	if fs := ctx.FontSpec(); fs.Size != 12 || len(fs.Families) != 2 || fs.Families[0] != "Open Sans" {
		t.Errorf("FontSpec() = %+v", fs)
	}
	if ctx.TextAlign() != canvas.TextAlignCenter || ctx.TextBaseline() != canvas.TextBaselineTop {
		t.Errorf("text anchors = %v %v", ctx.TextAlign(), ctx.TextBaseline())
	}
	if ctx.Direction() != canvas.DirectionRTL {
		t.Errorf("Direction() = %v", ctx.Direction())
	}
	if ctx.Lang() != "en-US" {
		t.Errorf("Lang() = %q, want en-US", ctx.Lang())
	}
	if ctx.Filter() != "blur(2px)" {
		t.Errorf("Filter() = %q", ctx.Filter())
	}
	if ctx.LetterSpacing() != 1.5 || ctx.WordSpacing() != 2 {
		t.Errorf("spacing = %v %v", ctx.LetterSpacing(), ctx.WordSpacing())
	}
	m := ctx.GetTransform()
	if abs(m.A) > 1e-12 || abs(m.B-1) > 1e-12 {
		t.Errorf("rotate 90deg gave %v", m)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		wantErr error
	}{
		{"unknown command", "save\nfrobnicate", 2, nil},
		{"wrong arity", "translate 1", 1, nil},
		{"bad number", "scale 1 x", 1, nil},
		{"stop out of range", "gradient linear 0 0 1 0\nstop 1.2 red", 2, canvas.ErrRange},
		{"stop without gradient", "stop 0 red", 1, nil},
		{"bad repetition", "pattern tile 1 1 red", 1, canvas.ErrInvalidArgument},
		{"bad color", "fill notacolor", 1, canvas.ErrInvalidArgument},
		{"unknown keyword", "composite multiply", 1, nil},
		{"after close", "close\nsave", 2, ErrContextClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.src)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Run() error = %v, want *SyntaxError", err)
			}
			if se.Line != tt.line {
				t.Errorf("Line = %d, want %d", se.Line, tt.line)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.wantErr)
			}
		})
	}
}

func TestStripComment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"# whole line", ""},
		{"   #indented", ""},
		{"fill #abc", "fill #abc"},
		{"fill red # trailing", "fill red "},
		{"fill red #", "fill red "},
		{"translate 1 2", "translate 1 2"},
	}
	for _, tt := range tests {
		if got := stripComment(tt.in); got != tt.want {
			t.Errorf("stripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

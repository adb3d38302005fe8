// Package script runs line-oriented drawing-state scripts against a
// canvas.Context. It backs the canvasctl command.
//
// Each non-empty line is a command followed by space-separated arguments.
// Text after '#' is a comment.
//
//	translate 10 0
//	save
//	scale 2 2
//	gradient linear 0 0 100 0
//	stop 0 red
//	stop 1 #00f
//	fill gradient
//	print
//	restore
package script

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/canvas"
)

// SyntaxError reports a script line that could not be run.
type SyntaxError struct {
	Line int
	Msg  string
	Err  error // underlying canvas error, if any
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ErrContextClosed is returned for commands after a "close" command.
var ErrContextClosed = errors.New("script: context is closed")

// Interpreter runs script lines against one context. It remembers the
// most recently created gradient and pattern so later lines can add stops
// to them or install them as styles.
type Interpreter struct {
	ctx      *canvas.Context
	out      io.Writer
	gradient *canvas.Gradient
	pattern  *canvas.Pattern
}

// New creates an interpreter that drives ctx and writes print output to out.
func New(ctx *canvas.Context, out io.Writer) *Interpreter {
	return &Interpreter{ctx: ctx, out: out}
}

// Run executes every line read from r, stopping at the first error.
func (in *Interpreter) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if err := in.Exec(line, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Exec runs a single script line. line is only used in errors.
func (in *Interpreter) Exec(line int, text string) error {
	fields := strings.Fields(stripComment(text))
	if len(fields) == 0 {
		return nil
	}
	name, args := fields[0], fields[1:]

	cmd, ok := commands[name]
	if !ok {
		return &SyntaxError{Line: line, Msg: fmt.Sprintf("unknown command %q", name)}
	}
	if cmd.nargs >= 0 && len(args) != cmd.nargs {
		return &SyntaxError{Line: line, Msg: fmt.Sprintf("%s takes %d arguments, got %d", name, cmd.nargs, len(args))}
	}
	if in.ctx.Closed() && name != "print" {
		return &SyntaxError{Line: line, Msg: name + ": context is closed", Err: ErrContextClosed}
	}
	if err := cmd.run(in, args); err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			se.Line = line
			return se
		}
		return &SyntaxError{Line: line, Msg: name + ": " + err.Error(), Err: err}
	}
	return nil
}

// stripComment removes a comment. A comment starts with '#' at the
// beginning of the line, or with a '#' that stands alone as a word; "#f00"
// after a command is a color.
func stripComment(text string) string {
	trimmed := strings.TrimLeft(text, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	for i := 1; i < len(text); i++ {
		if text[i] != '#' || !isSpace(text[i-1]) {
			continue
		}
		if i+1 == len(text) || isSpace(text[i+1]) {
			return text[:i]
		}
	}
	return text
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

type command struct {
	nargs int // -1 for any number
	run   func(in *Interpreter, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"save":    {0, func(in *Interpreter, _ []string) error { in.ctx.Save(); return nil }},
		"restore": {0, func(in *Interpreter, _ []string) error { in.ctx.Restore(); return nil }},
		"reset":   {0, func(in *Interpreter, _ []string) error { in.ctx.Reset(); return nil }},
		"close":   {0, func(in *Interpreter, _ []string) error { return in.ctx.Close() }},
		"print":   {0, (*Interpreter).print},

		"translate":      {2, numbers(func(in *Interpreter, v []float64) { in.ctx.Translate(v[0], v[1]) })},
		"scale":          {2, numbers(func(in *Interpreter, v []float64) { in.ctx.Scale(v[0], v[1]) })},
		"rotate":         {1, rotate},
		"transform":      {6, numbers(func(in *Interpreter, v []float64) { in.ctx.Transform(v[0], v[1], v[2], v[3], v[4], v[5]) })},
		"settransform":   {6, numbers(func(in *Interpreter, v []float64) { in.ctx.SetTransform(v[0], v[1], v[2], v[3], v[4], v[5]) })},
		"resettransform": {0, func(in *Interpreter, _ []string) error { in.ctx.ResetTransform(); return nil }},

		"alpha":     {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetGlobalAlpha(v[0]) })},
		"composite": {1, composite},
		"smoothing": {1, smoothing},
		"quality":   {1, quality},

		"fill":             {1, func(in *Interpreter, a []string) error { return in.style(a[0], in.ctx.SetFillStyle) }},
		"stroke":           {1, func(in *Interpreter, a []string) error { return in.style(a[0], in.ctx.SetStrokeStyle) }},
		"gradient":         {-1, gradient},
		"stop":             {2, stop},
		"pattern":          {4, pattern},
		"patterntransform": {6, patternTransform},

		"linewidth":  {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetLineWidth(v[0]) })},
		"linecap":    {1, lineCap},
		"linejoin":   {1, lineJoin},
		"miterlimit": {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetMiterLimit(v[0]) })},
		"dash":       {-1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetLineDash(v) })},
		"dashoffset": {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetLineDashOffset(v[0]) })},

		"shadow": {4, shadow},

		"filter":        {-1, func(in *Interpreter, a []string) error { in.ctx.SetFilter(strings.Join(a, " ")); return nil }},
		"font":          {-1, func(in *Interpreter, a []string) error { in.ctx.SetFont(strings.Join(a, " ")); return nil }},
		"align":         {1, textAlign},
		"baseline":      {1, textBaseline},
		"direction":     {1, direction},
		"lang":          {1, func(in *Interpreter, a []string) error { in.ctx.SetLang(a[0]); return nil }},
		"letterspacing": {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetLetterSpacing(v[0]) })},
		"wordspacing":   {1, numbers(func(in *Interpreter, v []float64) { in.ctx.SetWordSpacing(v[0]) })},
	}
}

// numbers adapts f to string arguments. NaN and Inf parse successfully and
// reach the context, which ignores them.
func numbers(f func(in *Interpreter, v []float64)) func(*Interpreter, []string) error {
	return func(in *Interpreter, args []string) error {
		v, err := parseNumbers(args)
		if err != nil {
			return err
		}
		f(in, v)
		return nil
	}
}

func parseNumbers(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, &SyntaxError{Msg: fmt.Sprintf("bad number %q", a)}
		}
		v[i] = f
	}
	return v, nil
}

// rotate accepts radians, or degrees with a "deg" suffix.
func rotate(in *Interpreter, args []string) error {
	s, deg := strings.CutSuffix(args[0], "deg")
	v, err := parseNumbers([]string{s})
	if err != nil {
		return err
	}
	angle := v[0]
	if deg {
		angle *= math.Pi / 180
	}
	in.ctx.Rotate(angle)
	return nil
}

func keyword[T any](parse func(string) (T, bool), set func(T)) func(*Interpreter, []string) error {
	return func(_ *Interpreter, args []string) error {
		v, ok := parse(args[0])
		if !ok {
			return &SyntaxError{Msg: fmt.Sprintf("unknown keyword %q", args[0])}
		}
		set(v)
		return nil
	}
}

func composite(in *Interpreter, args []string) error {
	return keyword(canvas.ParseCompositeOperation, in.ctx.SetGlobalCompositeOperation)(in, args)
}

func quality(in *Interpreter, args []string) error {
	return keyword(canvas.ParseImageSmoothingQuality, in.ctx.SetImageSmoothingQuality)(in, args)
}

func lineCap(in *Interpreter, args []string) error {
	return keyword(canvas.ParseLineCap, in.ctx.SetLineCap)(in, args)
}

func lineJoin(in *Interpreter, args []string) error {
	return keyword(canvas.ParseLineJoin, in.ctx.SetLineJoin)(in, args)
}

func textAlign(in *Interpreter, args []string) error {
	return keyword(canvas.ParseTextAlign, in.ctx.SetTextAlign)(in, args)
}

func textBaseline(in *Interpreter, args []string) error {
	return keyword(canvas.ParseTextBaseline, in.ctx.SetTextBaseline)(in, args)
}

func direction(in *Interpreter, args []string) error {
	return keyword(canvas.ParseDirection, in.ctx.SetDirection)(in, args)
}

func smoothing(in *Interpreter, args []string) error {
	switch args[0] {
	case "on", "true":
		in.ctx.SetImageSmoothingEnabled(true)
	case "off", "false":
		in.ctx.SetImageSmoothingEnabled(false)
	default:
		return &SyntaxError{Msg: fmt.Sprintf("smoothing wants on or off, got %q", args[0])}
	}
	return nil
}

// style installs the last gradient, the last pattern, or a parsed color.
func (in *Interpreter) style(arg string, set func(canvas.Style)) error {
	switch arg {
	case "gradient":
		if in.gradient == nil {
			return &SyntaxError{Msg: "no gradient defined"}
		}
		set(canvas.GradientStyle(in.gradient))
	case "pattern":
		if in.pattern == nil {
			return &SyntaxError{Msg: "no pattern defined"}
		}
		set(canvas.PatternStyle(in.pattern))
	default:
		c, err := canvas.ParseColor(arg)
		if err != nil {
			return err
		}
		set(canvas.ColorStyle(c))
	}
	return nil
}

// gradient handles "gradient linear x0 y0 x1 y1" and
// "gradient radial x0 y0 r0 x1 y1 r1".
func gradient(in *Interpreter, args []string) error {
	if len(args) == 0 {
		return &SyntaxError{Msg: "gradient wants linear or radial"}
	}
	v, err := parseNumbers(args[1:])
	if err != nil {
		return err
	}
	switch args[0] {
	case "linear":
		if len(v) != 4 {
			return &SyntaxError{Msg: "gradient linear takes 4 numbers"}
		}
		in.gradient = in.ctx.CreateLinearGradient(v[0], v[1], v[2], v[3])
	case "radial":
		if len(v) != 6 {
			return &SyntaxError{Msg: "gradient radial takes 6 numbers"}
		}
		in.gradient = in.ctx.CreateRadialGradient(v[0], v[1], v[2], v[3], v[4], v[5])
	default:
		return &SyntaxError{Msg: fmt.Sprintf("unknown gradient kind %q", args[0])}
	}
	return nil
}

func stop(in *Interpreter, args []string) error {
	if in.gradient == nil {
		return &SyntaxError{Msg: "no gradient defined"}
	}
	v, err := parseNumbers(args[:1])
	if err != nil {
		return err
	}
	c, err := canvas.ParseColor(args[1])
	if err != nil {
		return err
	}
	return in.gradient.AddColorStop(v[0], c)
}

// pattern handles "pattern <repetition> <width> <height> <color>", building
// a solid image of the given size.
func pattern(in *Interpreter, args []string) error {
	rep, err := canvas.ParseRepetition(args[0])
	if err != nil {
		return err
	}
	w, err := strconv.Atoi(args[1])
	if err != nil || w <= 0 {
		return &SyntaxError{Msg: fmt.Sprintf("bad width %q", args[1])}
	}
	h, err := strconv.Atoi(args[2])
	if err != nil || h <= 0 {
		return &SyntaxError{Msg: fmt.Sprintf("bad height %q", args[2])}
	}
	c, err := canvas.ParseColor(args[3])
	if err != nil {
		return err
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c.Color()), image.Point{}, draw.Src)

	p, err := in.ctx.CreatePattern(img, rep)
	if err != nil {
		return err
	}
	in.pattern = p
	return nil
}

func patternTransform(in *Interpreter, args []string) error {
	if in.pattern == nil {
		return &SyntaxError{Msg: "no pattern defined"}
	}
	v, err := parseNumbers(args)
	if err != nil {
		return err
	}
	in.pattern.SetTransform(canvas.NewMatrix(v[0], v[1], v[2], v[3], v[4], v[5]))
	return nil
}

func shadow(in *Interpreter, args []string) error {
	v, err := parseNumbers(args[:3])
	if err != nil {
		return err
	}
	c, err := canvas.ParseColor(args[3])
	if err != nil {
		return err
	}
	in.ctx.SetShadowOffset(v[0], v[1])
	in.ctx.SetShadowBlur(v[2])
	in.ctx.SetShadowColor(c)
	return nil
}

func (in *Interpreter) print(_ []string) error {
	p := in.ctx.Resolved()
	w := &errWriter{w: in.out}
	w.printf("transform: %v\n", p.Transform)
	w.printf("fill: %v\n", p.Fill)
	w.printf("stroke: %v\n", p.Stroke)
	w.printf("alpha: %g\n", p.GlobalAlpha)
	w.printf("composite: %v\n", p.Composite)
	w.printf("smoothing: %t %v\n", p.SmoothingEnabled, p.SmoothingQuality)
	w.printf("line: width=%g cap=%v join=%v miter=%g dash=%v offset=%g\n",
		p.LineWidth, p.LineCap, p.LineJoin, p.MiterLimit, p.Dash, p.DashOffset)
	w.printf("shadow: offset=(%g, %g) blur=%g color=%v\n",
		p.Shadow.OffsetX, p.Shadow.OffsetY, p.Shadow.Blur, canvas.ColorStyle(p.Shadow.Color))
	w.printf("text: font=%q align=%v baseline=%v direction=%v lang=%s\n",
		in.ctx.Font(), p.TextAlign, p.TextBaseline, p.Direction, in.ctx.Lang())
	w.printf("filter: %s\n", p.Filter)
	w.printf("saved: %d\n", in.ctx.SaveCount())
	return w.err
}

// errWriter keeps the first write error so print can report it once.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

package canvas

import (
	"io"
	"log/slog"
)

// Context is a Canvas-style 2D rendering context without a rasterizer.
// It maintains the live drawing state, a stack of saved states, and an
// opaque default path. Drawing collaborators read a snapshot of it through
// Resolved at draw time.
//
// A Context is not safe for concurrent use. Context implements io.Closer.
type Context struct {
	state drawingState
	stack []drawingState

	// path is the current default path. It is owned by a path collaborator
	// and is not part of the drawing state, so save and restore leave it alone.
	path any

	logger *slog.Logger
	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a context in the default drawing state with an empty
// stack and no default path.
//
//	ctx := canvas.NewContext()
//	defer ctx.Close()
func NewContext(opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Context{
		state:  defaultState(),
		stack:  make([]drawingState, 0, options.stackCapacity),
		logger: options.logger,
	}
}

// Close releases the saved states, the default path, the clip handle and
// every gradient or pattern the live state references. After Close every
// mutator is a no-op and getters report default values.
// Close is idempotent and always returns nil.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.log().Debug("canvas: context closed", "saved", len(c.stack))
	c.closed = true
	c.stack = nil
	c.path = nil
	c.state = defaultState()
	return nil
}

// Closed reports whether Close has been called.
func (c *Context) Closed() bool {
	return c.closed
}

// Reset returns the context to its freshly created condition: the stack is
// emptied, the default path is dropped, and the live state is replaced by
// the default state.
func (c *Context) Reset() {
	if !c.usable("reset") {
		return
	}
	clear(c.stack)
	c.stack = c.stack[:0]
	c.path = nil
	c.state = defaultState()
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// usable reports whether the context still accepts mutations.
func (c *Context) usable(op string) bool {
	if c.closed {
		c.log().Debug("canvas: call on closed context", "op", op)
		return false
	}
	return true
}

// reject logs an ignored setter call.
func (c *Context) reject(op string, args ...any) {
	c.log().Debug("canvas: ignoring invalid argument", append([]any{"op", op}, args...)...)
}

// Save pushes a copy of the current drawing state onto the stack.
// Gradients and patterns are shared with the copy, not cloned.
func (c *Context) Save() {
	if !c.usable("save") {
		return
	}
	c.stack = append(c.stack, c.state.clone())
}

// Restore pops the most recently saved state and makes it current.
// With an empty stack Restore does nothing. The default path is unaffected.
func (c *Context) Restore() {
	if !c.usable("restore") {
		return
	}
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack[n-1] = drawingState{} // drop style references held by the slot
	c.stack = c.stack[:n-1]
}

// SaveCount returns the number of saved states on the stack.
func (c *Context) SaveCount() int {
	return len(c.stack)
}

// Scale composes a scaling by (x, y) onto the current transform.
func (c *Context) Scale(x, y float64) {
	if !c.usable("scale") {
		return
	}
	if !finite(x, y) {
		c.reject("scale", "x", x, "y", y)
		return
	}
	c.compose("scale", Scale(x, y))
}

// Rotate composes a clockwise rotation by angle radians onto the current
// transform.
func (c *Context) Rotate(angle float64) {
	if !c.usable("rotate") {
		return
	}
	if !finite(angle) {
		c.reject("rotate", "angle", angle)
		return
	}
	c.compose("rotate", Rotate(angle))
}

// Translate composes a translation by (x, y) onto the current transform.
func (c *Context) Translate(x, y float64) {
	if !c.usable("translate") {
		return
	}
	if !finite(x, y) {
		c.reject("translate", "x", x, "y", y)
		return
	}
	c.compose("translate", Translate(x, y))
}

// Transform composes the matrix [[a c e] [b d f] [0 0 1]] onto the current
// transform.
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	if !c.usable("transform") {
		return
	}
	if !finite(a, b, cc, d, e, f) {
		c.reject("transform", "matrix", NewMatrix(a, b, cc, d, e, f))
		return
	}
	c.compose("transform", NewMatrix(a, b, cc, d, e, f))
}

// compose right-multiplies the current transform by t. A product that
// overflows is rejected like a non-finite argument.
func (c *Context) compose(op string, t Matrix) {
	m := c.state.transform.Multiply(t)
	if !m.IsFinite() {
		c.reject(op, "reason", "overflow", "matrix", t)
		return
	}
	c.state.transform = m
}

// SetTransform replaces the current transform with [[a c e] [b d f] [0 0 1]].
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	c.SetTransformMatrix(NewMatrix(a, b, cc, d, e, f))
}

// SetTransformMatrix replaces the current transform with m.
func (c *Context) SetTransformMatrix(m Matrix) {
	if !c.usable("setTransform") {
		return
	}
	if !m.IsFinite() {
		c.reject("setTransform", "matrix", m)
		return
	}
	c.state.transform = m
}

// GetTransform returns a copy of the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state.transform
}

// ResetTransform sets the current transform to the identity.
func (c *Context) ResetTransform() {
	if !c.usable("resetTransform") {
		return
	}
	c.state.transform = Identity()
}

// TransformPoint maps a user-space point to device space.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	p := c.state.transform.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// SetClip stores the clip region handle produced by a path-clipping
// collaborator. The handle is part of the drawing state and is never
// inspected here.
func (c *Context) SetClip(clip any) {
	if !c.usable("clip") {
		return
	}
	c.state.clip = clip
}

// Clip returns the clip region handle of the current state, or nil.
func (c *Context) Clip() any {
	return c.state.clip
}

// DefaultPath returns the current default path handle, or nil.
func (c *Context) DefaultPath() any {
	return c.path
}

// SetDefaultPath stores the default path handle owned by a path collaborator.
func (c *Context) SetDefaultPath(p any) {
	if !c.usable("setDefaultPath") {
		return
	}
	c.path = p
}

// BeginPath drops the current default path.
func (c *Context) BeginPath() {
	if !c.usable("beginPath") {
		return
	}
	c.path = nil
}

// Package canvas provides the state core of a Canvas-style 2D rendering
// context: the transform pipeline, the save/restore stack and paint style
// resolution. It does not rasterize anything.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	ctx := canvas.NewContext()
//	defer ctx.Close()
//
//	ctx.Translate(10, 0)
//	ctx.Save()
//	ctx.Scale(2, 2)
//	ctx.GetTransform() // {2 0 0 2 10 0}
//	ctx.Restore()
//
//	g := ctx.CreateLinearGradient(0, 0, 100, 0)
//	_ = g.AddColorStop(0, canvas.Red)
//	_ = g.AddColorStop(1, canvas.Blue)
//	ctx.SetFillStyle(canvas.GradientStyle(g))
//
//	params := ctx.Resolved() // handed to a rasterizer at draw time
//
// # Validation
//
// Setters never return errors. A setter given a NaN or infinite number, a
// value outside its range, or an unknown enumeration value leaves the
// previous value in place. Only constructive operations, such as
// Gradient.AddColorStop and Context.CreatePattern, report errors, wrapping
// ErrRange or ErrInvalidArgument.
//
// # Sharing
//
// Gradients and patterns are shared handles. Stops added to a gradient, or
// a transform set on a pattern, are visible through every Style, saved
// state and context that holds it.
//
// # Coordinate System
//
// Origin at top-left, X increases right, Y increases down. Rotate turns
// clockwise on screen for positive angles.
//
// # Collaborators
//
// Path geometry, the clip region and the default path are opaque handles
// (type any) owned by collaborators. Resolved returns everything a
// collaborator needs, including a gputypes.BlendState for the composite
// operation and an x/image/draw interpolator for image smoothing. The
// interop sub-package converts matrices and gradients for the rasterx and
// seehuhn.de/go/geom ecosystems.
package canvas

// Version is the current version of the library.
const Version = "0.1.0"

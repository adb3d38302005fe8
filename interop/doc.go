// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package interop converts resolved canvas values for rasterizers from
// other ecosystems.
//
// seehuhn.de/go/render takes its current transformation matrix as a
// seehuhn.de/go/geom/matrix.Matrix; GeomMatrix produces one from a canvas
// transform. github.com/srwiley/rasterx paints gradients described by
// rasterx.Gradient; RasterxGradient builds one from a canvas gradient and
// the transform in effect at draw time.
//
//	params := ctx.Resolved()
//	if g, ok := params.Fill.Gradient(); ok {
//	    rg := interop.RasterxGradient(g, params.Transform)
//	    scanner.SetColor(rg.GetColorFunction(params.GlobalAlpha))
//	}
package interop

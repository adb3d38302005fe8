// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interop

import (
	"github.com/srwiley/rasterx"

	"github.com/gogpu/canvas"
)

// RasterxMatrix converts m to a rasterx matrix.
func RasterxMatrix(m canvas.Matrix) rasterx.Matrix2D {
	return rasterx.Matrix2D{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F}
}

// FromRasterxMatrix converts a rasterx matrix to a canvas matrix.
func FromRasterxMatrix(m rasterx.Matrix2D) canvas.Matrix {
	return canvas.NewMatrix(m.A, m.B, m.C, m.D, m.E, m.F)
}

// RasterxGradient describes g as a rasterx gradient in user space, mapped
// to device space by ctm.
//
// Stops are passed in resolution order with the pad spread method, as
// Canvas gradients never repeat. rasterx models a radial gradient as an
// outer circle plus a focal point, so the second circle becomes the outer
// circle, the first center becomes the focus, and the first radius is
// dropped.
func RasterxGradient(g *canvas.Gradient, ctm canvas.Matrix) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	start, end := g.Start(), g.End()
	switch g.Kind() {
	case canvas.GradientRadial:
		_, r1 := g.Radii()
		points = [5]float64{end.X, end.Y, start.X, start.Y, r1}
		isRadial = true
	default:
		points[0], points[1], points[2], points[3] = start.X, start.Y, end.X, end.Y
	}

	sorted := g.SortedStops()
	stops := make([]rasterx.GradStop, len(sorted))
	for i, s := range sorted {
		opaque := s.Color
		opaque.A = 1
		stops[i] = rasterx.GradStop{
			StopColor: opaque.Color(),
			Offset:    s.Offset,
			Opacity:   s.Color.A,
		}
	}

	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Matrix:   RasterxMatrix(ctm),
		Spread:   rasterx.PadSpread,
		Units:    rasterx.UserSpaceOnUse,
		IsRadial: isRadial,
	}
}

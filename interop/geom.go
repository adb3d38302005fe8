// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package interop

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/gogpu/canvas"
)

// GeomMatrix converts m to a geom matrix. Both use the (a, b, c, d, e, f)
// order, so the conversion is exact.
func GeomMatrix(m canvas.Matrix) matrix.Matrix {
	return matrix.Matrix{m.A, m.B, m.C, m.D, m.E, m.F}
}

// FromGeomMatrix converts a geom matrix to a canvas matrix. The second
// result is false if any component is NaN or infinite; such a matrix would
// be ignored by every canvas setter.
func FromGeomMatrix(m matrix.Matrix) (canvas.Matrix, bool) {
	cm := canvas.NewMatrix(m[0], m[1], m[2], m[3], m[4], m[5])
	return cm, cm.IsFinite()
}

package canvas

import (
	"fmt"
	"math"
)

// Matrix represents a 2D affine transformation matrix.
// It uses the Canvas (and PDF) column layout:
//
//	| a  c  e |
//	| b  d  f |
//	| 0  0  1 |
//
// This represents the transformation:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Matrix struct {
	A, B, C, D, E, F float64
}

// NewMatrix creates a matrix from its six components in Canvas order.
func NewMatrix(a, b, c, d, e, f float64) Matrix {
	return Matrix{A: a, B: b, C: c, D: d, E: e, F: f}
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: x, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, B: 0, C: 0, D: y, E: 0, F: 0}
}

// Rotate creates a rotation matrix (angle in radians).
// With the y axis pointing down, positive angles rotate clockwise.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos, E: 0, F: 0}
}

// Multiply multiplies two matrices (m * other).
// Points mapped by the result go through other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
// The second result is false (and the matrix is the identity) when m is
// singular or not finite.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 || !finite(det) {
		return Identity(), false
	}

	invDet := 1.0 / det
	inv := Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}
	if !inv.IsFinite() {
		return Identity(), false
	}
	return inv, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (m Matrix) IsFinite() bool {
	return finite(m.A, m.B, m.C, m.D, m.E, m.F)
}

// ScaleFactor returns the geometric mean of the axis scale factors.
// Stroke collaborators use it to map user-space widths to device pixels.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// String formats m like the CSS matrix() function.
func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}

package canvas

// Shadow holds the shadow attributes of a drawing state.
type Shadow struct {
	OffsetX, OffsetY float64
	Blur             float64
	Color            RGBA
}

// Visible reports whether a draw-time collaborator should paint a shadow:
// the color must not be fully transparent and the shadow must be offset or
// blurred.
func (s Shadow) Visible() bool {
	if s.Color.A == 0 {
		return false
	}
	return s.Blur != 0 || s.OffsetX != 0 || s.OffsetY != 0
}

// Sigma returns the Gaussian standard deviation for the blur, which Canvas
// defines as half the blur value.
func (s Shadow) Sigma() float64 {
	return s.Blur / 2
}

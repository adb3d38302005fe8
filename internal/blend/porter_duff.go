// Package blend implements Porter-Duff compositing for premultiplied colors.
//
// Operators are expressed as gputypes.BlendState values, the fixed-function
// factors a GPU pipeline consumes. Apply evaluates such a state on the CPU
// so software collaborators produce the same result as the GPU path.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import "github.com/gogpu/gputypes"

// Color is a premultiplied color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Apply evaluates bs for a single premultiplied source and destination.
// Color channels use bs.Color, the alpha channel uses bs.Alpha. The result
// is clamped to [0, 1], which is what a unorm render target does.
func Apply(bs gputypes.BlendState, src, dst Color) Color {
	return Color{
		R: component(bs.Color, src.R, dst.R, src.A, dst.A),
		G: component(bs.Color, src.G, dst.G, src.A, dst.A),
		B: component(bs.Color, src.B, dst.B, src.A, dst.A),
		A: component(bs.Alpha, src.A, dst.A, src.A, dst.A),
	}
}

func component(c gputypes.BlendComponent, s, d, sa, da float64) float64 {
	fs := factor(c.SrcFactor, sa, da)
	fd := factor(c.DstFactor, sa, da)

	// Porter-Duff operators only ever add the weighted terms.
	return clamp01(s*fs + d*fd)
}

// factor resolves an alpha-based blend factor.
// Color-based factors never occur in Porter-Duff operators and resolve to 1.
func factor(f gputypes.BlendFactor, sa, da float64) float64 {
	switch f {
	case gputypes.BlendFactorZero:
		return 0
	case gputypes.BlendFactorOne:
		return 1
	case gputypes.BlendFactorSrcAlpha:
		return sa
	case gputypes.BlendFactorOneMinusSrcAlpha:
		return 1 - sa
	case gputypes.BlendFactorDstAlpha:
		return da
	case gputypes.BlendFactorOneMinusDstAlpha:
		return 1 - da
	default:
		return 1
	}
}

// State builds a BlendState that uses the same factors for color and alpha,
// which is how every Porter-Duff operator is expressed.
func State(src, dst gputypes.BlendFactor) gputypes.BlendState {
	c := gputypes.BlendComponent{
		SrcFactor: src,
		DstFactor: dst,
		Operation: gputypes.BlendOperationAdd,
	}
	return gputypes.BlendState{Color: c, Alpha: c}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

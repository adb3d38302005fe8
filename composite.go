package canvas

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/canvas/internal/blend"
)

// CompositeOperation is the Porter-Duff rule that combines newly drawn
// pixels (source, A) with the existing bitmap (destination, B).
type CompositeOperation int

const (
	// CompositeSourceAtop is A atop B: source where both are opaque,
	// destination where only the destination is opaque.
	CompositeSourceAtop CompositeOperation = iota
	// CompositeSourceIn is A in B: source where both are opaque.
	CompositeSourceIn
	// CompositeSourceOut is A out B: source where the destination is transparent.
	CompositeSourceOut
	// CompositeSourceOver is A over B (default).
	CompositeSourceOver
	// CompositeDestinationAtop is B atop A.
	CompositeDestinationAtop
	// CompositeDestinationIn is B in A.
	CompositeDestinationIn
	// CompositeDestinationOut is B out A.
	CompositeDestinationOut
	// CompositeDestinationOver is B over A.
	CompositeDestinationOver
	// CompositeLighter is A plus B, saturating at full intensity.
	CompositeLighter
	// CompositeCopy is A; the destination is ignored.
	CompositeCopy
	// CompositeXor is A xor B.
	CompositeXor
)

var compositeNames = [...]string{
	CompositeSourceAtop:      "source-atop",
	CompositeSourceIn:        "source-in",
	CompositeSourceOut:       "source-out",
	CompositeSourceOver:      "source-over",
	CompositeDestinationAtop: "destination-atop",
	CompositeDestinationIn:   "destination-in",
	CompositeDestinationOut:  "destination-out",
	CompositeDestinationOver: "destination-over",
	CompositeLighter:         "lighter",
	CompositeCopy:            "copy",
	CompositeXor:             "xor",
}

// String returns the Canvas keyword for op.
func (op CompositeOperation) String() string {
	if !op.valid() {
		return "unknown"
	}
	return compositeNames[op]
}

func (op CompositeOperation) valid() bool {
	return op >= CompositeSourceAtop && op <= CompositeXor
}

// ParseCompositeOperation converts a Canvas keyword such as "source-over"
// into a CompositeOperation. The second result is false for unknown keywords.
func ParseCompositeOperation(s string) (CompositeOperation, bool) {
	for i, name := range compositeNames {
		if name == s {
			return CompositeOperation(i), true
		}
	}
	return CompositeSourceOver, false
}

// blendFactors maps each operation to its premultiplied (src, dst) factors.
var blendFactors = [...][2]gputypes.BlendFactor{
	CompositeSourceAtop:      {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
	CompositeSourceIn:        {gputypes.BlendFactorDstAlpha, gputypes.BlendFactorZero},
	CompositeSourceOut:       {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorZero},
	CompositeSourceOver:      {gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha},
	CompositeDestinationAtop: {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorSrcAlpha},
	CompositeDestinationIn:   {gputypes.BlendFactorZero, gputypes.BlendFactorSrcAlpha},
	CompositeDestinationOut:  {gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha},
	CompositeDestinationOver: {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOne},
	CompositeLighter:         {gputypes.BlendFactorOne, gputypes.BlendFactorOne},
	CompositeCopy:            {gputypes.BlendFactorOne, gputypes.BlendFactorZero},
	CompositeXor:             {gputypes.BlendFactorOneMinusDstAlpha, gputypes.BlendFactorOneMinusSrcAlpha},
}

// BlendState returns the fixed-function blend state a GPU collaborator
// should bind for op, assuming premultiplied source and target.
// Unknown operations map to source-over.
func (op CompositeOperation) BlendState() gputypes.BlendState {
	if !op.valid() {
		op = CompositeSourceOver
	}
	f := blendFactors[op]
	return blend.State(f[0], f[1])
}

// Composite applies op to a single pair of straight-alpha colors and
// returns the straight-alpha result. It is a reference for software
// collaborators; the core itself never composites pixels.
func (op CompositeOperation) Composite(src, dst RGBA) RGBA {
	s, d := src.Premultiply(), dst.Premultiply()
	out := blend.Apply(op.BlendState(),
		blend.Color{R: s.R, G: s.G, B: s.B, A: s.A},
		blend.Color{R: d.R, G: d.G, B: d.B, A: d.A},
	)
	return RGBA{R: out.R, G: out.G, B: out.B, A: out.A}.Unpremultiply()
}

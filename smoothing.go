package canvas

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// ImageSmoothingQuality is the preferred quality of image smoothing when
// patterns and images are scaled.
type ImageSmoothingQuality int

const (
	// SmoothingLow is the default quality.
	SmoothingLow ImageSmoothingQuality = iota
	// SmoothingMedium balances quality and speed.
	SmoothingMedium
	// SmoothingHigh prefers quality.
	SmoothingHigh
)

// String returns the Canvas keyword for q.
func (q ImageSmoothingQuality) String() string {
	switch q {
	case SmoothingLow:
		return "low"
	case SmoothingMedium:
		return "medium"
	case SmoothingHigh:
		return "high"
	default:
		return "unknown"
	}
}

func (q ImageSmoothingQuality) valid() bool {
	return q >= SmoothingLow && q <= SmoothingHigh
}

// ParseImageSmoothingQuality converts "low", "medium" or "high".
func ParseImageSmoothingQuality(s string) (ImageSmoothingQuality, bool) {
	for q := SmoothingLow; q <= SmoothingHigh; q++ {
		if q.String() == s {
			return q, true
		}
	}
	return SmoothingLow, false
}

// Interpolator returns the x/image/draw kernel a software image collaborator
// should scale with for the given smoothing preferences.
func Interpolator(enabled bool, q ImageSmoothingQuality) draw.Interpolator {
	if !enabled {
		return draw.NearestNeighbor
	}
	switch q {
	case SmoothingMedium:
		return draw.BiLinear
	case SmoothingHigh:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// FilterMode returns the sampler filter a GPU collaborator should use for
// magnification and minification.
func FilterMode(enabled bool) gputypes.FilterMode {
	if !enabled {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

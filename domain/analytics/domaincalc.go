package analytics

import (
	"math"

	"github.com/montanaflynn/stats"
)

// ChartDomain is the vertical display range for a value series.
type ChartDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// placeholderDomain is returned for an empty series so the chart always has a
// valid axis and no caller divides by zero.
var placeholderDomain = ChartDomain{Min: 0, Max: 100}

// ComputeDomain derives the display min/max for a value series.
//
// Naive min/max domains make near-constant series look like noiseless flat
// lines, so flat and constant series get headroom proportional to the
// signal's own scale. Zoomed views always get a visibility margin, even for
// small ranges, because the caller has explicitly asked to inspect variation.
// The floor at zero reflects that inventory is conventionally plotted from a
// zero baseline except when deliberately zoomed into negative or small-range
// territory.
func ComputeDomain(values []float64, zoomed bool) ChartDomain {
	if len(values) == 0 {
		return placeholderDomain
	}

	lo, err := stats.Min(values)
	if err != nil {
		return placeholderDomain
	}
	hi, err := stats.Max(values)
	if err != nil {
		return placeholderDomain
	}
	rng := hi - lo

	if zoomed {
		margin := math.Max(rng*0.2, math.Max(hi*0.02, 5))
		return paddedDomain(lo, hi, margin)
	}

	// Flat relative to magnitude: variation under 10% of the high point.
	if rng > 0 && rng < hi*0.1 {
		return paddedDomain(lo, hi, rng*0.5)
	}

	if rng == 0 {
		margin := hi * 0.05
		if margin == 0 {
			margin = 10
		}
		return paddedDomain(lo, hi, margin)
	}

	return ChartDomain{Min: 0, Max: math.Ceil(hi * 1.05)}
}

func paddedDomain(lo, hi, margin float64) ChartDomain {
	return ChartDomain{
		Min: math.Max(0, math.Floor(lo-margin)),
		Max: math.Ceil(hi + margin),
	}
}

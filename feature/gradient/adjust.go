package gradient

import (
	"fmt"

	"pipegrade/core/geo"
)

// Adjuster computes target elevations for pipes reducible to exactly two
// points. Multi-vertex pipes go through the Normalizer instead.
type Adjuster struct {
	params Params
}

// NewAdjuster creates an adjuster. Params must already be validated.
func NewAdjuster(params Params) *Adjuster {
	return &Adjuster{params: params}
}

// Target computes new start/end elevations for a two-point pipe.
// startInvert and endInvert are the invert elevations of the resolved
// boundary shafts, nil where no shaft was found. The returned gradient is
// in percent, negative for descending flow, and the reason explains which
// rule produced the result.
func (a *Adjuster) Target(start, end geo.Point, startInvert, endInvert *float64) (newStart, newEnd, gradientPercent float64, reason string) {
	dist := start.Distance2D(end)
	if dist == 0 {
		// Degenerate geometry passes through unmodified.
		return start.Altitude, end.Altitude, 0, "degenerate zero-length pipe, kept unmodified"
	}

	minDrop := a.params.MinGradientPercent / 100 * dist
	maxDrop := a.params.MaxGradientPercent / 100 * dist

	switch {
	case startInvert != nil && endInvert != nil:
		s, e := *startInvert, *endInvert
		switch {
		case s < e:
			// Flow always runs from the higher to the lower shaft.
			s, e = e, s
			reason = "corrected flow direction from higher to lower shaft"
		case end.Altitude > start.Altitude:
			reason = "corrected ascending flow direction using shaft elevations"
		default:
			reason = "used shaft elevations"
		}

		gradientPercent = (e - s) / dist * 100
		switch {
		case -gradientPercent < a.params.MinGradientPercent:
			e = s - minDrop
			gradientPercent = -a.params.MinGradientPercent
			reason = fmt.Sprintf("enforced minimum gradient %.2f%%", a.params.MinGradientPercent)
		case -gradientPercent > a.params.MaxGradientPercent:
			e = s - maxDrop
			gradientPercent = -a.params.MaxGradientPercent
			reason = fmt.Sprintf("limited to maximum gradient %.2f%%", a.params.MaxGradientPercent)
		}
		return s, e, gradientPercent, reason

	case startInvert != nil:
		// Only the upstream end is known: extrapolate downhill at the
		// minimum gradient from the known shaft.
		s := *startInvert
		return s, s - minDrop, -a.params.MinGradientPercent,
			fmt.Sprintf("extrapolated %.2f%% downhill from start shaft", a.params.MinGradientPercent)

	case endInvert != nil:
		e := *endInvert
		return e + minDrop, e, -a.params.MinGradientPercent,
			fmt.Sprintf("extrapolated %.2f%% downhill toward end shaft", a.params.MinGradientPercent)

	default:
		s, e := start.Altitude, end.Altitude
		gradientPercent = (e - s) / dist * 100
		if gradientPercent > 0 {
			return s, s - minDrop, -a.params.MinGradientPercent,
				"corrected ascending terrain gradient to minimum downhill"
		}
		return s, e, gradientPercent,
			fmt.Sprintf("kept terrain elevations with %.2f%% gradient", gradientPercent)
	}
}

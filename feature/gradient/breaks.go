package gradient

import (
	"math"

	"pipegrade/core/geo"
)

// BreakDetector classifies vertices of a run as legitimate engineered
// elevation breaks or as terrain noise to correct.
type BreakDetector struct {
	thresholdPercent float64
}

// NewBreakDetector creates a detector with the given slope-change threshold
// in percent.
func NewBreakDetector(thresholdPercent float64) *BreakDetector {
	return &BreakDetector{thresholdPercent: thresholdPercent}
}

// slopePercent returns the slope between two points in percent, 0 for
// coincident points.
func slopePercent(from, to geo.Point) float64 {
	dist := from.Distance2D(to)
	if dist == 0 {
		return 0
	}
	return (to.Altitude - from.Altitude) / dist * 100
}

// BreakIndices returns the interior vertex indices where the slope change
// between incoming and outgoing leg exceeds the threshold. Such a vertex
// marks an intentional drop or rise that must survive normalization.
func (d *BreakDetector) BreakIndices(points []geo.Point) []int {
	var breaks []int
	for idx := 1; idx < len(points)-1; idx++ {
		distIn := points[idx-1].Distance2D(points[idx])
		distOut := points[idx].Distance2D(points[idx+1])
		if distIn == 0 || distOut == 0 {
			continue
		}

		change := math.Abs(slopePercent(points[idx], points[idx+1]) - slopePercent(points[idx-1], points[idx]))
		if change > d.thresholdPercent {
			breaks = append(breaks, idx)
		}
	}
	return breaks
}

// BumpIndices returns the interior vertex indices that are local elevation
// maxima relative to both neighbors. A buried gravity pipe cannot be convex
// upward, so these are always terrain noise.
func (d *BreakDetector) BumpIndices(points []geo.Point) []int {
	var bumps []int
	for idx := 1; idx < len(points)-1; idx++ {
		if points[idx].Altitude > points[idx-1].Altitude && points[idx].Altitude > points[idx+1].Altitude {
			bumps = append(bumps, idx)
		}
	}
	return bumps
}

// ShouldPreserve reports whether a segment keeps its original gradient and
// skips normalization: it contains at least one break vertex, or both
// boundary shafts are known and their altitude difference, taken as a slope
// over the segment length, exceeds the threshold (a drop structure between
// shafts).
func (d *BreakDetector) ShouldPreserve(seg Segment) bool {
	if len(d.BreakIndices(seg.Points)) > 0 {
		return true
	}
	if seg.StartShaft != nil && seg.EndShaft != nil && seg.Length > 0 {
		diff := math.Abs(shaftAltitude(seg.StartShaft)-shaftAltitude(seg.EndShaft)) / seg.Length * 100
		if diff > d.thresholdPercent {
			return true
		}
	}
	return false
}

package gradient

import (
	"math"

	"go.uber.org/zap"

	"pipegrade/core/geo"
	"pipegrade/core/model"
)

// Normalizer computes and applies one directionally-consistent slope per
// segment of a multi-vertex pipe, interpolating intermediate vertex
// elevations and preserving engineered gradient breaks.
type Normalizer struct {
	params   Params
	detector *BreakDetector
	log      *zap.Logger
}

// NewNormalizer creates a normalizer. Params must already be validated.
func NewNormalizer(params Params, log *zap.Logger) *Normalizer {
	return &Normalizer{
		params:   params,
		detector: NewBreakDetector(params.GradientBreakThreshold),
		log:      log,
	}
}

// clampSlope forces an ascending or too-flat slope to exactly the minimum
// descending gradient and an excessive one to the maximum. Input and output
// are in meters per meter.
func (n *Normalizer) clampSlope(slope float64) float64 {
	percent := slope * 100
	switch {
	case percent > 0 || math.Abs(percent) < n.params.MinGradientPercent:
		return -n.params.MinGradientPercent / 100
	case math.Abs(percent) > n.params.MaxGradientPercent:
		return -n.params.MaxGradientPercent / 100
	default:
		return slope
	}
}

// smoothBumps re-interpolates local-maximum vertices from their smoothed
// predecessor and the next non-bump original vertex. All other vertices
// keep their elevations.
func smoothBumps(points []geo.Point, bumps []int) []geo.Point {
	if len(bumps) == 0 {
		return points
	}

	bumpSet := make(map[int]bool, len(bumps))
	for _, idx := range bumps {
		bumpSet[idx] = true
	}

	out := make([]geo.Point, len(points))
	copy(out, points)

	for idx := 1; idx < len(points)-1; idx++ {
		if !bumpSet[idx] {
			continue
		}

		next := idx + 1
		for next < len(points)-1 && bumpSet[next] {
			next++
		}

		prev := out[idx-1]
		distPrev := out[idx].Distance2D(prev)
		distNext := out[idx].Distance2D(points[next])
		total := distPrev + distNext

		altitude := prev.Altitude
		if total > 0 {
			ratio := distPrev / total
			altitude = prev.Altitude + (points[next].Altitude-prev.Altitude)*ratio
		}
		out[idx] = out[idx].WithAltitude(altitude)
	}

	return out
}

// normalizeSegment returns the segment's points with normalized elevations.
// Degenerate (zero-length) and preserved segments pass through with their
// original gradient; preserved segments still get terrain bumps smoothed.
func (n *Normalizer) normalizeSegment(seg Segment, invertOf func(*model.NetworkElement) float64) []geo.Point {
	points := seg.Points

	if seg.Length == 0 {
		n.log.Warn("zero-length segment, keeping original elevations",
			zap.Int("vertices", len(points)))
		return points
	}

	if n.detector.ShouldPreserve(seg) {
		n.log.Debug("preserving segment gradient",
			zap.Int("vertices", len(points)),
			zap.Bool("both_shafts", seg.StartShaft != nil && seg.EndShaft != nil))
		return smoothBumps(points, n.detector.BumpIndices(points))
	}

	var slope float64
	switch {
	case seg.StartShaft != nil && seg.EndShaft != nil:
		// Shaft inverts define the slope; the run stays anchored to the
		// pipe's own elevation at its start boundary.
		slope = (invertOf(seg.EndShaft) - invertOf(seg.StartShaft)) / seg.Length
		slope = n.clampSlope(slope)
	case seg.StartShaft != nil || seg.EndShaft != nil:
		// One interior shaft does not define a run's slope; fall back to the
		// pipe's own average gradient over the segment.
		slope = (points[len(points)-1].Altitude - points[0].Altitude) / seg.Length
		slope = n.clampSlope(slope)
	default:
		// No boundary shaft: the original profile is the only signal,
		// keep it apart from smoothing out bumps.
		return smoothBumps(points, n.detector.BumpIndices(points))
	}

	startAltitude := points[0].Altitude
	distances := geo.CumulativeDistances(points)

	normalized := make([]geo.Point, len(points))
	for i, p := range points {
		normalized[i] = p.WithAltitude(startAltitude + slope*distances[i])
	}
	return normalized
}

// NormalizeResult describes what happened to one multi-vertex pipe.
type NormalizeResult struct {
	// Changed reports whether any vertex moved beyond the elevation tolerance.
	Changed bool

	// Segments is the number of segments the pipe was split into.
	Segments int

	// Preserved counts segments that kept their original gradient because of
	// a detected break.
	Preserved int

	// StartConnected and EndConnected report shafts resolved at the pipe's
	// first and last vertex.
	StartConnected bool
	EndConnected   bool
}

// NormalizePipe splits the pipe at its resolved shafts, normalizes every
// segment, and writes the concatenated result back into the pipe's geometry
// when anything moved beyond the elevation tolerance.
func (n *Normalizer) NormalizePipe(pipe *model.NetworkElement, resolutions []VertexShaft, invertOf func(*model.NetworkElement) float64) NormalizeResult {
	segments := BuildSegments(pipe, resolutions)

	result := NormalizeResult{Segments: len(segments)}
	for _, res := range resolutions {
		if res.VertexIndex == 0 {
			result.StartConnected = true
		}
		if res.VertexIndex == len(pipe.Geometry)-1 {
			result.EndConnected = true
		}
	}

	for i := range segments {
		if n.detector.ShouldPreserve(segments[i]) {
			result.Preserved++
		}
		segments[i].Points = n.normalizeSegment(segments[i], invertOf)
	}

	merged := Concatenate(segments)
	if len(merged) != len(pipe.Geometry) {
		// Split/concatenate must round-trip; give up rather than corrupt.
		n.log.Warn("segment concatenation changed vertex count, keeping original geometry",
			zap.String("pipe", pipe.ID.String()),
			zap.Int("original", len(pipe.Geometry)),
			zap.Int("merged", len(merged)))
		return result
	}

	for i, p := range merged {
		if math.Abs(p.Altitude-pipe.Geometry[i].Altitude) > ElevationTolerance {
			result.Changed = true
			break
		}
	}

	if result.Changed {
		pipe.Geometry = merged
	}
	return result
}

package gradient

import (
	"pipegrade/core/geo"
	"pipegrade/core/model"
)

// Segment is an ordered sub-sequence of a pipe's vertices delimited by
// resolved shafts. Boundary shafts are nil where the segment runs to a bare
// pipe end. After building, a segment with both shafts known always runs
// from the higher shaft to the lower one.
type Segment struct {
	// Points is a copy of the segment's vertices; normalization works on the
	// copy and writes back through concatenation.
	Points []geo.Point

	// StartShaft and EndShaft bound the segment, either may be nil.
	StartShaft *model.NetworkElement
	EndShaft   *model.NetworkElement

	// Length is the planar length of the segment.
	Length float64

	// Reversed records that the point order was flipped at build time to
	// make flow run high to low.
	Reversed bool
}

// shaftAltitude reads a shaft's surveyed altitude.
func shaftAltitude(shaft *model.NetworkElement) float64 {
	return shaft.Location().Altitude
}

func newSegment(points []geo.Point, start, end *model.NetworkElement) Segment {
	copied := make([]geo.Point, len(points))
	copy(copied, points)

	seg := Segment{
		Points:     copied,
		StartShaft: start,
		EndShaft:   end,
		Length:     geo.PathLength(copied),
	}

	// Directional correction: flow is always defined high to low, so all
	// downstream math can assume a descending run.
	if start != nil && end != nil && shaftAltitude(start) < shaftAltitude(end) {
		for i, j := 0, len(seg.Points)-1; i < j; i, j = i+1, j-1 {
			seg.Points[i], seg.Points[j] = seg.Points[j], seg.Points[i]
		}
		seg.StartShaft, seg.EndShaft = seg.EndShaft, seg.StartShaft
		seg.Reversed = true
	}

	return seg
}

// BuildSegments splits a pipe's vertices into segments delimited by the
// given resolutions (which must be ordered by vertex index, as returned by
// ShaftsAlong). Zero resolutions yield exactly one unresolved segment
// spanning the whole pipe.
func BuildSegments(pipe *model.NetworkElement, resolutions []VertexShaft) []Segment {
	points := pipe.Geometry
	if len(resolutions) == 0 {
		return []Segment{newSegment(points, nil, nil)}
	}

	var segments []Segment
	prevIndex := 0
	var prevShaft *model.NetworkElement

	for _, res := range resolutions {
		if res.VertexIndex == 0 {
			// Shaft sits on the first vertex, no leading segment needed.
			prevShaft = res.Shaft
			continue
		}
		if res.VertexIndex > prevIndex {
			segments = append(segments, newSegment(points[prevIndex:res.VertexIndex+1], prevShaft, res.Shaft))
		}
		prevIndex = res.VertexIndex
		prevShaft = res.Shaft
	}

	// Trailing run from the last shaft to the bare pipe end.
	if prevIndex < len(points)-1 {
		segments = append(segments, newSegment(points[prevIndex:], prevShaft, nil))
	}

	return segments
}

// Concatenate joins normalized segments back into a single vertex list
// without duplicating shared boundary vertices. Segments reversed at build
// time are flipped back so the result matches the pipe's original vertex
// order and count.
func Concatenate(segments []Segment) []geo.Point {
	var points []geo.Point
	for _, seg := range segments {
		segPoints := seg.Points
		if seg.Reversed {
			segPoints = make([]geo.Point, len(seg.Points))
			for i, p := range seg.Points {
				segPoints[len(seg.Points)-1-i] = p
			}
		}
		if len(points) == 0 {
			points = append(points, segPoints...)
		} else {
			points = append(points, segPoints[1:]...)
		}
	}
	return points
}

package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/quadtree"
)

// item wraps a planar coordinate with the index of the payload it belongs to,
// so quadtree hits can be mapped back to caller-owned slices.
type item struct {
	point orb.Point
	ref   int
}

func (it item) Point() orb.Point {
	return it.point
}

// Index is a read-only planar point index backed by an orb quadtree.
// It is built once over a compatibility group and queried for proximity
// candidates; exact tolerance and domain filtering stay with the caller.
type Index struct {
	tree *quadtree.Quadtree
}

// Candidate is a query hit: the ref passed at build time and its exact
// planar distance from the query point.
type Candidate struct {
	Ref      int
	Distance float64
}

// NewIndex builds an index over the given points. Each point carries the ref
// of the same position in refs; both slices must have equal length. A nil
// index is returned for empty input and is safe to query.
func NewIndex(points []Point, refs []int) *Index {
	if len(points) == 0 || len(points) != len(refs) {
		return nil
	}

	bound := orb.Bound{Min: points[0].Orb(), Max: points[0].Orb()}
	for _, p := range points[1:] {
		bound = bound.Extend(p.Orb())
	}
	// Degenerate bounds (single point, collinear east/north) break quadtree
	// subdivision, so pad by a meter in each direction.
	bound.Min = orb.Point{bound.Min[0] - 1, bound.Min[1] - 1}
	bound.Max = orb.Point{bound.Max[0] + 1, bound.Max[1] + 1}

	tree := quadtree.New(bound)
	for i, p := range points {
		// Add only fails for points outside the bound, which cannot happen here.
		_ = tree.Add(item{point: p.Orb(), ref: refs[i]})
	}

	return &Index{tree: tree}
}

// Within returns all refs whose point lies within tolerance of center,
// with exact planar distances. Order is unspecified.
func (x *Index) Within(center Point, tolerance float64) []Candidate {
	if x == nil || x.tree == nil || tolerance < 0 {
		return nil
	}

	queryBound := orb.Bound{
		Min: orb.Point{center.East - tolerance, center.North - tolerance},
		Max: orb.Point{center.East + tolerance, center.North + tolerance},
	}

	var candidates []Candidate
	for _, ptr := range x.tree.InBound(nil, queryBound) {
		it := ptr.(item)
		d := planar.Distance(it.point, center.Orb())
		if d <= tolerance {
			candidates = append(candidates, Candidate{Ref: it.ref, Distance: d})
		}
	}

	return candidates
}

// Nearest returns the ref closest to center within tolerance, or false if
// nothing lies inside the search radius. Ties resolve to minimum distance;
// among equal distances the first indexed entry wins.
func (x *Index) Nearest(center Point, tolerance float64) (Candidate, bool) {
	best := Candidate{Ref: -1}
	found := false

	for _, c := range x.Within(center, tolerance) {
		if !found || c.Distance < best.Distance {
			best = c
			found = true
		}
	}

	return best, found
}

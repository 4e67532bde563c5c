package gradient

import (
	"pipegrade/core/geo"
	"pipegrade/core/model"
	"pipegrade/feature/compat"
)

// VertexShaft records a shaft resolved at a specific pipe vertex.
type VertexShaft struct {
	// VertexIndex is the index into the pipe's geometry.
	VertexIndex int

	// Shaft is the resolved point-based element.
	Shaft *model.NetworkElement
}

// Resolver answers shaft proximity queries for one compatibility group.
// It indexes the group's shaft-like nodes once; the index is read-only
// afterwards.
type Resolver struct {
	shafts   []*model.NetworkElement
	index    *geo.Index
	strategy compat.Strategy
	radius   float64
}

// NewResolver builds a resolver over the shaft-like nodes of a group.
func NewResolver(group *compat.Group, strategy compat.Strategy, radius float64) *Resolver {
	var shafts []*model.NetworkElement
	for _, node := range group.Nodes {
		if node.IsPointBased() && node.Kind.IsShaftLike() {
			shafts = append(shafts, node)
		}
	}

	points := make([]geo.Point, len(shafts))
	refs := make([]int, len(shafts))
	for i, shaft := range shafts {
		points[i] = shaft.Location()
		refs[i] = i
	}

	return &Resolver{
		shafts:   shafts,
		index:    geo.NewIndex(points, refs),
		strategy: strategy,
		radius:   radius,
	}
}

// ShaftCount returns the number of indexed shafts.
func (r *Resolver) ShaftCount() int {
	return len(r.shafts)
}

// ShaftAt returns the nearest shaft within the search radius whose medium is
// compatible with the querying element's medium, or nil. Ties resolve to
// minimum planar distance.
func (r *Resolver) ShaftAt(point geo.Point, medium string) *model.NetworkElement {
	var nearest *model.NetworkElement
	best := r.radius + 1

	for _, candidate := range r.index.Within(point, r.radius) {
		shaft := r.shafts[candidate.Ref]
		if !r.strategy.AreCompatible(medium, shaft.Medium) {
			continue
		}
		if candidate.Distance < best {
			best = candidate.Distance
			nearest = shaft
		}
	}

	return nearest
}

// ShaftsAlong resolves a shaft for every vertex of a pipe, not only its
// endpoints, and returns the hits ordered by vertex index.
func (r *Resolver) ShaftsAlong(pipe *model.NetworkElement) []VertexShaft {
	var resolutions []VertexShaft
	for idx, vertex := range pipe.Geometry {
		if shaft := r.ShaftAt(vertex, pipe.Medium); shaft != nil {
			resolutions = append(resolutions, VertexShaft{VertexIndex: idx, Shaft: shaft})
		}
	}
	return resolutions
}

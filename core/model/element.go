package model

import (
	"fmt"

	"github.com/google/uuid"

	"pipegrade/core/geo"
)

// ElementKind classifies what a network element represents in the field.
type ElementKind string

const (
	KindPipe    ElementKind = "pipe"
	KindDuct    ElementKind = "duct"
	KindShaft   ElementKind = "shaft"
	KindGutter  ElementKind = "gutter"
	KindChannel ElementKind = "channel"
	KindValve   ElementKind = "valve"
	KindHydrant ElementKind = "hydrant"
	KindCable   ElementKind = "cable"
	KindUnknown ElementKind = "unknown"
)

// IsShaftLike reports whether the kind acts as a junction node that pipes
// connect to (a manhole in sewer terms).
func (k ElementKind) IsShaftLike() bool {
	return k == KindShaft
}

// IsConduit reports whether the kind carries flow and participates in
// gradient normalization.
func (k ElementKind) IsConduit() bool {
	switch k {
	case KindPipe, KindDuct, KindChannel:
		return true
	default:
		return false
	}
}

// NetworkElement is one real-world element extracted from a drawing: a
// point-based node (single geometry vertex) or a line-based run (two or
// more vertices). Exactly one of the two holds for a valid element.
type NetworkElement struct {
	// ID is the stable identity of the element.
	ID uuid.UUID `json:"id"`

	// Medium is the name of the infrastructure group the element belongs to.
	Medium string `json:"medium"`

	// Kind classifies the element (pipe, shaft, ...).
	Kind ElementKind `json:"kind"`

	// Geometry is the ordered vertex list. Length 1 means point-based,
	// length >= 2 means line-based. Vertex altitudes are mutated in place
	// by the gradient engine.
	Geometry []geo.Point `json:"geometry"`

	// Dimension is the shape record; for shafts its Height field receives
	// the derived cover-to-invert height.
	Dimension Dimension `json:"dimension"`

	// Label is the text assigned to the element during extraction, if any.
	Label string `json:"label,omitempty"`

	// Attributes carries free-form extraction metadata (layer, source handle).
	Attributes map[string]string `json:"attributes,omitempty"`
}

// IsPointBased reports whether the element is a single-vertex node.
func (e *NetworkElement) IsPointBased() bool {
	return len(e.Geometry) == 1
}

// IsLineBased reports whether the element is a multi-vertex run.
func (e *NetworkElement) IsLineBased() bool {
	return len(e.Geometry) >= 2
}

// Location returns the position of a point-based element.
// For line-based elements it returns the first vertex.
func (e *NetworkElement) Location() geo.Point {
	return e.Geometry[0]
}

// Start returns the first vertex of the element's geometry.
func (e *NetworkElement) Start() geo.Point {
	return e.Geometry[0]
}

// End returns the last vertex of the element's geometry.
func (e *NetworkElement) End() geo.Point {
	return e.Geometry[len(e.Geometry)-1]
}

// Length returns the planar length of a line-based element, 0 for nodes.
func (e *NetworkElement) Length() float64 {
	return geo.PathLength(e.Geometry)
}

// Validate checks the point-based XOR line-based invariant.
func (e *NetworkElement) Validate() error {
	if len(e.Geometry) == 0 {
		return fmt.Errorf("element %s (%s): empty geometry", e.ID, e.Kind)
	}
	return nil
}

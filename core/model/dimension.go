package model

// Shape discriminates the cross-section of an element.
type Shape string

const (
	ShapeRound       Shape = "round"
	ShapeRectangular Shape = "rectangular"
)

// Dimension is the shape and size record of an element, in meters.
// For line-based elements the outer height converts a centerline elevation
// to the pipe crown; for shafts Height receives the derived
// cover-to-invert height.
type Dimension struct {
	// Shape selects which size fields are meaningful.
	Shape Shape `json:"shape"`

	// Diameter is the outer diameter of a round element.
	Diameter float64 `json:"diameter,omitempty"`

	// Width and Depth span a rectangular cross-section.
	Width float64 `json:"width,omitempty"`
	Depth float64 `json:"depth,omitempty"`

	// Height is the vertical extent. Writable: the cover height pass stores
	// its result here for shafts.
	Height float64 `json:"height,omitempty"`
}

// IsRound reports whether the element has a circular cross-section.
func (d Dimension) IsRound() bool {
	return d.Shape == ShapeRound
}

// IsRectangular reports whether the element has a rectangular cross-section.
func (d Dimension) IsRectangular() bool {
	return d.Shape == ShapeRectangular
}

// OuterHeight returns the vertical outer extent of the cross-section:
// diameter for round elements, depth for rectangular ones, 0 otherwise.
func (d Dimension) OuterHeight() float64 {
	switch {
	case d.IsRound():
		return d.Diameter
	case d.IsRectangular():
		return d.Depth
	default:
		return 0
	}
}

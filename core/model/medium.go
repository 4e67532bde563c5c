package model

// Medium is a named group of compatible infrastructure. It owns the
// point-based and line-based elements extracted for that group and the
// per-kind elevation offsets applied when anchoring pipe elevations to
// shaft covers.
type Medium struct {
	// Name identifies the medium, e.g. "Abwasser Gemeinde".
	Name string `json:"name"`

	// Nodes are the point-based elements (shafts, valves, hydrants).
	Nodes []*NetworkElement `json:"nodes"`

	// Lines are the line-based elements (pipes, ducts, channels).
	Lines []*NetworkElement `json:"lines"`

	// ElevationOffsets maps an element kind to the vertical distance between
	// its surveyed cover elevation and the invert pipes anchor to.
	ElevationOffsets map[ElementKind]float64 `json:"elevation_offsets,omitempty"`
}

// ElevationOffset returns the configured offset for kind, 0 if unmapped.
func (m *Medium) ElevationOffset(kind ElementKind) float64 {
	if m == nil || m.ElevationOffsets == nil {
		return 0
	}
	return m.ElevationOffsets[kind]
}

// Elements returns all elements of the medium, nodes first.
func (m *Medium) Elements() []*NetworkElement {
	elements := make([]*NetworkElement, 0, len(m.Nodes)+len(m.Lines))
	elements = append(elements, m.Nodes...)
	elements = append(elements, m.Lines...)
	return elements
}

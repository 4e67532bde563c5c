package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// CoordinateTolerance is the planar distance below which two points are
// considered to be at the same location.
const CoordinateTolerance = 0.001

// Point is a surveyed coordinate: easting, northing and terrain altitude,
// all in meters. Points are values; operations return new points.
type Point struct {
	East     float64 `json:"east"`
	North    float64 `json:"north"`
	Altitude float64 `json:"altitude"`
}

// Distance2D returns the planar Euclidean distance to other, ignoring altitude.
func (p Point) Distance2D(other Point) float64 {
	return math.Hypot(other.East-p.East, other.North-p.North)
}

// EqualWithin reports whether both points lie within tolerance of each other
// in the plane and in altitude.
func (p Point) EqualWithin(other Point, tolerance float64) bool {
	return p.Distance2D(other) <= tolerance && math.Abs(p.Altitude-other.Altitude) <= tolerance
}

// WithAltitude returns a copy of the point at the given altitude.
func (p Point) WithAltitude(altitude float64) Point {
	return Point{East: p.East, North: p.North, Altitude: altitude}
}

// Orb converts the point to its planar orb representation.
func (p Point) Orb() orb.Point {
	return orb.Point{p.East, p.North}
}

// PathLength returns the sum of consecutive planar distances along points.
func PathLength(points []Point) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance2D(points[i])
	}
	return total
}

// CumulativeDistances returns the running planar distance at every vertex,
// starting at 0 for the first point.
func CumulativeDistances(points []Point) []float64 {
	distances := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		distances[i] = distances[i-1] + points[i-1].Distance2D(points[i])
	}
	return distances
}

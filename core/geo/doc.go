// Package geo provides the planar geometry primitives shared by the gradient
// engine: surveyed 3D points, polyline length math, and a quadtree-backed
// spatial index for proximity queries.
//
// Coordinates are easting/northing/altitude in meters. All distance queries
// are strictly planar; altitude only participates in gradient math.
//
// The index is built once per analysis pass and treated read-only afterwards.
// It returns coarse candidates refined by exact planar distance, leaving
// domain filtering (medium compatibility, element kind) to the caller.
package geo

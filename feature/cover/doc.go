// Package cover derives shaft construction heights after gradient
// normalization: for each shaft it finds the connected pipes within the
// search radius, takes the lowest pipe invert, and records the vertical
// distance from the surveyed cover down to that invert in the shaft's
// dimension record.
package cover

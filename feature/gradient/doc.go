// Package gradient reconstructs physically plausible, monotonically
// descending flow profiles for pipe runs with noisy terrain-derived
// elevations.
//
// The engine partitions all elements into medium compatibility groups,
// resolves shafts along every pipe vertex through a per-group spatial
// index, splits multi-vertex pipes into shaft-delimited segments, and
// applies one directionally consistent slope per segment. Engineered
// elevation breaks (drop structures) are detected and survive unchanged;
// terrain bumps (local maxima) are always smoothed away. Two-point pipes
// take a simpler direct path with flow-direction correction and min/max
// gradient clamping.
//
// Elevations are mutated in place on the borrowed elements; every change
// beyond the 5 cm tolerance yields an immutable Adjustment record, and a
// run produces an aggregate Summary for reporting. One unusable element
// never aborts a batch: it is logged, counted as skipped, and absorbed.
package gradient

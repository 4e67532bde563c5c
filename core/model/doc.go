// Package model defines the shared data model of the gradient engine:
// network elements with their geometry and dimensions, and the mediums
// that own them.
//
// Elements are created once during extraction (outside this module) and
// mutated in place by the analysis passes: line-based elements get their
// vertex altitudes rewritten, shafts get their Dimension.Height derived.
// No element is created or destroyed by the engine.
package model

// Package geometry defines the shared spatial types for the softboard
// resolution pipeline.
//
// A keyboard layout is represented as a Geometry: an ordered, immutable
// sequence of Keys, each with a hit rectangle and one or more key codes.
// The geometry is built once by a layout provider and treated as read-only
// by every downstream component; resolution never mutates it.
//
// # Hit Testing
//
// Each Key implements the HitTester capability:
//
//	if key.ContainsPoint(p) { ... }
//	d := key.SquaredDistanceTo(p)
//
// All distance comparisons in the pipeline use squared Euclidean distance
// so no square roots are taken on the hot path. The per-layout proximity
// threshold is likewise a squared distance, derived from the narrowest key
// in the layout.
package geometry

// Package bsplines implements a numerically stable kernel for constructing,
// evaluating, and algebraically manipulating non-uniform B-spline curves of
// arbitrary degree over points in R^dim.
//
// The kernel exposes the primitives higher-level curve editors are built
// from: construction with uniform-opened or clamped knot layouts, the de
// Boor evaluation net, Böhm's knot-insertion algorithm, knot-preserving
// split, resize with a left/right bias, and decomposition into a sequence
// of Bézier segments glued by full-multiplicity knots.
//
// It does not handle rational (NURBS) weights, non-float coordinates,
// analytical derivatives, serialization, or rendering; those are treated as
// external collaborators.
package bsplines

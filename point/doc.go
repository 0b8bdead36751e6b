// Package point implements the spatial primitives that the skyline engine
// builds on: fixed-dimension integer labels, coordinate-wise dominance,
// median-pivot partitioning, and the layered sort order that drives
// sky-layer construction and early termination.
//
// Smaller coordinates are always "better": Label p dominates Label q iff
// p is coordinate-wise less-than-or-equal to q in every dimension, with
// at least one strict inequality.
package point

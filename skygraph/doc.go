// Package skygraph represents the labeled, undirected graph that every
// other component operates over: an adjacency list keyed by relabeled
// vertex id, a per-vertex label, and the sky-layer index built over those
// labels during construction.
//
// Vertices are relabeled exactly once, at construction time, into the
// layered sort order produced by point.OrderByPartition; every other
// package in this module addresses vertices by that relabeled id.
// ToOriginal and ToRelabelled recover the caller's original ids.
package skygraph

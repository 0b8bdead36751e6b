// Package dominance lifts the point-level dominance test from package
// point up to groups (equal-size multisets of vertices) and to the
// skyline-pruning predicates built on top of it: whether a candidate
// group is dominated by anything already accepted into the skyline or by
// an earlier candidate, and whether an entire sky-layer can be pruned
// without examining its members.
package dominance

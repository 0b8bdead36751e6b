// Package enumerate lists every fixed-size k-core in a graph via the
// cousins-first recursive algorithm: fix a prefix vertex, then extend a
// growing candidate group only through vertices that remain in a shrinking
// "tailset" once enough of the group's other members have failed to stay
// connected to the newest addition.
//
// ListAllKCores drives the outer loop across every vertex, maintaining
// the graph's maximum k-core incrementally via package bincore as
// vertices are peeled off one at a time.
package enumerate

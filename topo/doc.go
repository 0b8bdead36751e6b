// Package topo answers structural questions about induced subgraphs:
// sorted-set intersection, k-hop reachability restricted to an active
// vertex set, connectivity, minimum-degree membership, and a peeling-based
// core-number diagnostic. Every adjacency list it consumes is expected in
// the skygraph convention: per-vertex neighbors sorted in descending order.
// Intersect itself takes ascending slices, so adjacency lists are passed
// through Reverse before being intersected.
package topo

package skygraph

import "errors"

var (
	// ErrLabelEdgeSizeMismatch indicates the edge list and label list disagree
	// on vertex count.
	ErrLabelEdgeSizeMismatch = errors.New("skygraph: edge list and label list have different sizes")
	// ErrEmptyGraph indicates a graph with zero vertices was supplied where
	// at least one is required.
	ErrEmptyGraph = errors.New("skygraph: graph has no vertices")
	// ErrVertexOutOfRange indicates a vertex id outside [0, Size) was used.
	ErrVertexOutOfRange = errors.New("skygraph: vertex id out of range")
	// ErrSelfLoop indicates an edge from a vertex to itself, which this
	// representation does not support.
	ErrSelfLoop = errors.New("skygraph: self loops are not supported")
	// ErrRemoveVertexInvariant indicates RemoveVertex was called on a vertex
	// whose removal would violate the descending-neighbor-order invariant
	// (a neighbor's list did not have vertex at its tail).
	ErrRemoveVertexInvariant = errors.New("skygraph: vertex is not at the tail of a neighbor's adjacency list")
)

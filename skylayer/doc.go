// Package skylayer partitions a layered-sorted set of points into
// incomparability layers (Pareto "onion peeling") and computes, for each
// layer, a representative label used by the skyline engine for early
// termination.
//
// Layer L0 holds points dominated by nothing preceding them; layer Li
// holds points not dominated by any point already assigned to L0..Li-1.
// Within a layer, a no-duplicate bookkeeping structure keyed by partition
// mask lets the builder skip most intra-layer comparisons.
package skylayer

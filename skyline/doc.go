// Package skyline drives the outer vertex sweep that turns a labeled
// k-core graph into its set of Pareto-optimal (skyline) communities: a
// sequential driver, a bulk-synchronous parallel driver, the postprocess
// pass that repairs false positives introduced by coincident labels, and
// a shrink-profile helper for observing how fast the maximum k-core
// collapses as vertices are peeled off.
package skyline

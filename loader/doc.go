// Package loader reads the two CSV inputs package skygraph needs: an
// edge list and a per-vertex label table. Both readers are defensive
// about malformed rows; out-of-range vertex ids are dropped without an
// error (the edge reader logs a warning with the count), matching the
// external loader contract the CLI depends on.
package loader

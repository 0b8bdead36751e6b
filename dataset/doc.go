// Package dataset is the hard-coded catalogue of named input datasets
// and label-type file-name fragments that the CLI accepts. It mirrors
// the switch statements the original driver used to resolve a dataset
// id and label-type id into a concrete edge file, label file, and node
// count, without requiring the referenced files to be physically
// present to validate a selection.
package dataset

// Package driver implements the analysis-driver side of DAKOTA's fork
// interface: parsing standard-format parameter files, computing responses
// through registered Driver implementations, and writing results files
// that honor the active set vector.
package driver

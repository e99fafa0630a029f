// Package dataset reads numeric regression data from comma-separated files
// into a feature matrix and a target vector.
//
// The default column layout is that of the UCI "machine.data" CPU-performance
// set: records have at least ten fields, columns 2..7 (MYCT, MMIN, MMAX, CACH,
// CHMIN, CHMAX) are features and column 8 (PRP) is the target. Records with
// fewer fields are skipped; a malformed numeric cell in a used column fails
// the whole parse with its line number.
//
// Load memory-maps the file read-only instead of reading it into a buffer.
package dataset

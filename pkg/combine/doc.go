// Package combine enumerates replacement combinations.
//
// A combination assigns exactly one replacement candidate to every target;
// Enumerate produces the full Cartesian product with stable "1-2-1" style
// labels that identify each combination in output file names and skip
// reports.
package combine

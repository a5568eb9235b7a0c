// Package sweep handles CSV parameter sweep tables: reading rows and
// deriving filesystem-safe job names from them.
package sweep

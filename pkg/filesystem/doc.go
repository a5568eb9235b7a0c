// Package filesystem provides implementations of the types.FS interface.
//
// NewOS returns the real filesystem used by the CLI; NewAferoFS wraps any
// afero.Fs, which tests use with afero.NewMemMapFs.
package filesystem

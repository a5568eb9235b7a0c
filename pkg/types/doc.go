// Package types defines the interfaces shared across deckgen packages.
//
// Template loading and job emission both go through the FS interface so
// that commands can run against an in-memory filesystem in tests.
package types

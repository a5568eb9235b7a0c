// Package testutil provides shared test helpers: an in-memory filesystem
// and small read/write wrappers that fail the test on error.
package testutil

// Package emitter writes rendered job files.
//
// Directory creation is idempotent and each unit of work is one plain file
// write; a failed combination or row leaves no partial file behind.
package emitter

// Package generate orchestrates full generation runs for the CLI: load the
// template, read the parameter source, render, and emit job files.
package generate

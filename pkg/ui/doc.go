// Package ui implements the interactive combination-mode session and the
// terminal rendering helpers shared by the CLI commands.
package ui

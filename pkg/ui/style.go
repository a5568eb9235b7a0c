package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"

	"github.com/deckgen/deckgen/pkg/emitter"
	"github.com/deckgen/deckgen/pkg/errors"
)

var (
	// HeaderStyle renders section headers in the interactive session.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// PathStyle renders file and directory paths.
	PathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// RenderError renders an error message for the terminal, including the
// deckgen error code when present.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	if code, ok := errors.GetCode(err); ok {
		return fmt.Sprintf("%s Error [%s]: %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(code),
			err.Error())
	}

	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// RenderSummary renders the outcome of a combination-mode generation run.
func RenderSummary(result *emitter.CombinationResult, dir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d file(s) written to %s", len(result.Written), PathStyle.Render(dir))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped combinations with unmatched targets: %s",
			strings.Join(result.Skipped, ", "))
	}
	return b.String()
}

// excerpt shortens multi-line or long text for table display.
func excerpt(text string, max int) string {
	text = strings.ReplaceAll(text, "\n", "⏎")
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-1]) + "…"
}

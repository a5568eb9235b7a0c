package main

import (
	"fmt"
	"os"

	"github.com/deckgen/deckgen/pkg/ui"
)

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.RenderError(err))
		os.Exit(1)
	}
}

package config

import _ "embed"

// defaultConfig holds the built-in defaults shipped with the binary.
//
//go:embed deckgen.toml
var defaultConfig []byte

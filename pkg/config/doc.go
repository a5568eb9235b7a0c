// Package config loads deckgen configuration.
//
// Defaults are embedded in the binary as TOML. A .deckgen.toml or
// .deckgen.yaml file in the working directory overrides them. Command-line
// flags override both.
package config

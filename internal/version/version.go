package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/deckgen/deckgen/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/deckgen/deckgen/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/deckgen/deckgen/internal/version.Date={{.Date}}
)

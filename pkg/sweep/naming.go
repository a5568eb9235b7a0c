package sweep

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/deckgen/deckgen/pkg/config"
	"github.com/deckgen/deckgen/pkg/logging"
)

// nameSanitizer matches runs of characters that are not filesystem-safe.
var nameSanitizer = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Namer derives output job names from parameter rows.
type Namer struct {
	cfg config.NamingConfig
}

// NewNamer creates a Namer from the naming configuration.
func NewNamer(cfg config.NamingConfig) *Namer {
	return &Namer{cfg: cfg}
}

// JobName picks the job name for a row. The configured name columns are
// checked in priority order; the first one with a non-empty trimmed value
// wins, sanitized. Otherwise the name falls back to a zero-padded index
// form such as "case_002" (index is the 0-based row position).
func (n *Namer) JobName(row Row, index int) string {
	log := logging.GetLogger("sweep")
	for _, column := range n.cfg.Columns {
		value, ok := row[column]
		if !ok {
			continue
		}
		name := strings.TrimSpace(value)
		if name == "" {
			continue
		}
		log.Debug().Str("column", column).Str("name", name).Msg("Using parameter value as job name")
		return n.Sanitize(name)
	}
	fallback := fmt.Sprintf("%s_%0*d", n.cfg.FallbackPrefix, n.cfg.FallbackWidth, index+1)
	log.Debug().Str("name", fallback).Msg("Falling back to generated job name")
	return fallback
}

// Sanitize maps every run of characters outside [A-Za-z0-9_-] to an
// underscore. A name with no allowed characters at all becomes the
// configured default, never the empty string.
func (n *Namer) Sanitize(name string) string {
	if nameSanitizer.ReplaceAllString(name, "") == "" {
		return n.cfg.DefaultName
	}
	return nameSanitizer.ReplaceAllString(name, "_")
}

package template

import (
	"regexp"
	"strings"

	"github.com/deckgen/deckgen/pkg/errors"
)

// tokenPattern matches {{TOKEN}} placeholders in sweep-mode templates.
var tokenPattern = regexp.MustCompile(`\{\{([A-Za-z0-9_]+)\}\}`)

// RenderTokens substitutes every {{TOKEN}} placeholder in text with the
// value from params. Placeholders with no entry in params are left in place
// and collected; if any were found the render fails with a MISSING_TOKENS
// error listing them in first-occurrence order, de-duplicated. The partially
// substituted text is never returned on failure.
func RenderTokens(text string, params map[string]string) (string, error) {
	var missing []string
	seen := make(map[string]bool)

	rendered := tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		token := match[2 : len(match)-2]
		value, ok := params[token]
		if !ok {
			if !seen[token] {
				seen[token] = true
				missing = append(missing, token)
			}
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", errors.Newf(errors.ErrMissingTokens,
			"missing parameters for tokens: %s", strings.Join(missing, ", ")).
			WithDetail("tokens", missing)
	}
	return rendered, nil
}

// Tokens returns the distinct placeholder names in text in first-occurrence
// order.
func Tokens(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}
	return names
}

package template

import (
	"regexp"
	"strings"
)

// MatchMode selects how combination-mode targets are located in the text.
type MatchMode int

const (
	// MatchExact replaces literal occurrences of the target.
	MatchExact MatchMode = iota
	// MatchPartial replaces case-insensitive occurrences of the target.
	MatchPartial
)

// String returns the user-facing name of the mode.
func (m MatchMode) String() string {
	if m == MatchPartial {
		return "partial"
	}
	return "exact"
}

// Replacement pairs a target string with the text that replaces it.
type Replacement struct {
	Target string
	Value  string
}

// Apply performs every replacement in order and reports how many occurrences
// each one matched. A zero count means the target never appeared in the text
// as it stood when that replacement ran; callers use this to skip the whole
// combination.
func Apply(text string, pairs []Replacement, mode MatchMode) (string, []int) {
	counts := make([]int, len(pairs))

	for i, pair := range pairs {
		switch mode {
		case MatchPartial:
			// The target is literal text; escape it before compiling so
			// metacharacters in deck content are not interpreted.
			re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(pair.Target))
			counts[i] = len(re.FindAllStringIndex(text, -1))
			text = re.ReplaceAllLiteralString(text, pair.Value)
		default:
			counts[i] = strings.Count(text, pair.Target)
			text = strings.ReplaceAll(text, pair.Target, pair.Value)
		}
	}

	return text, counts
}

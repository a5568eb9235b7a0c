package combine

import (
	"strconv"
	"strings"

	"github.com/deckgen/deckgen/pkg/template"
)

// Candidate is one possible replacement value for a Target. Index is
// 1-based and stable for the life of the target; it feeds the combination
// label and therefore the output file name.
type Candidate struct {
	Index int
	Text  string
}

// Target is a piece of template text to replace, together with its ordered
// replacement candidates.
type Target struct {
	// Ordinal is the 1-based position of the target among all targets.
	Ordinal    int
	Text       string
	Candidates []Candidate
}

// AddCandidate appends a candidate with the next free index.
func (t *Target) AddCandidate(text string) {
	t.Candidates = append(t.Candidates, Candidate{
		Index: len(t.Candidates) + 1,
		Text:  text,
	})
}

// Pair binds one target to the candidate chosen for it in a combination.
type Pair struct {
	Target    Target
	Candidate Candidate
}

// Combination selects exactly one candidate per target.
type Combination struct {
	// Label is the candidate indices joined by "-" in target order,
	// e.g. "1-2-1". Labels are unique within one enumeration.
	Label string
	Pairs []Pair
}

// Replacements converts the combination into ordered replacement pairs for
// template.Apply.
func (c Combination) Replacements() []template.Replacement {
	pairs := make([]template.Replacement, len(c.Pairs))
	for i, pair := range c.Pairs {
		pairs[i] = template.Replacement{
			Target: pair.Target.Text,
			Value:  pair.Candidate.Text,
		}
	}
	return pairs
}

// Enumerate returns the Cartesian product of all targets' candidate lists,
// one combination per tuple, in lexicographic order over candidate indices
// (the last target varies fastest). No targets, or any target without
// candidates, yields an empty result.
func Enumerate(targets []Target) []Combination {
	if len(targets) == 0 {
		return nil
	}
	total := 1
	for _, target := range targets {
		if len(target.Candidates) == 0 {
			return nil
		}
		total *= len(target.Candidates)
	}

	combos := make([]Combination, 0, total)
	indices := make([]int, len(targets))
	for {
		pairs := make([]Pair, len(targets))
		labels := make([]string, len(targets))
		for i, target := range targets {
			candidate := target.Candidates[indices[i]]
			pairs[i] = Pair{Target: target, Candidate: candidate}
			labels[i] = strconv.Itoa(candidate.Index)
		}
		combos = append(combos, Combination{
			Label: strings.Join(labels, "-"),
			Pairs: pairs,
		})

		// Odometer increment over candidate positions.
		i := len(indices) - 1
		for ; i >= 0; i-- {
			indices[i]++
			if indices[i] < len(targets[i].Candidates) {
				break
			}
			indices[i] = 0
		}
		if i < 0 {
			break
		}
	}
	return combos
}

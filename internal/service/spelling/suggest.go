// Package spelling offers fuzzy correction candidates for marked tokens.
// The search runs over the expanded lexicon, so inflected forms are valid
// corrections too. Stateless and safe for concurrent use.
package spelling

import (
	"sort"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/lexicon"
)

const (
	// DefaultMaxDistance is the edit-distance bound used when the caller
	// passes a non-positive one.
	DefaultMaxDistance = 2

	// MaxSuggestions caps the number of returned candidates.
	MaxSuggestions = 5
)

// Suggestion is one correction candidate.
type Suggestion struct {
	Word     string
	Distance int
}

// Result is the outcome of checking one token.
type Result struct {
	IsCorrect   bool
	Suggestions []Suggestion
}

// Suggester searches the lexicon for near matches.
type Suggester struct {
	lex *lexicon.Lexicon
}

// NewSuggester creates a Suggester over the given lexicon.
func NewSuggester(lex *lexicon.Lexicon) *Suggester {
	return &Suggester{lex: lex}
}

// Check normalizes token and looks it up. Known forms are correct and get
// no suggestions. Unknown tokens are matched against the lexicon within
// maxDistance edits: candidates are pre-filtered by length difference and a
// first-two-letter heuristic before the exact distance is computed, keeping
// the scan cheap. Results are sorted by (distance, word) and capped at
// MaxSuggestions. Tokens shorter than two letters are the caller's problem;
// they simply produce no matches.
func (s *Suggester) Check(token string, maxDistance int) Result {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxDistance
	}

	word := domain.NormalizeWord(token)
	if word == "" {
		return Result{IsCorrect: false}
	}
	if s.lex.Contains(word) {
		return Result{IsCorrect: true}
	}

	var candidates []Suggestion
	for _, known := range s.lex.Words() {
		if lenDiff(word, known) > maxDistance {
			continue
		}
		if !sharesPrefixLetter(word, known) {
			continue
		}
		d := Distance(word, known)
		if d == 0 || d > maxDistance {
			continue
		}
		candidates = append(candidates, Suggestion{Word: known, Distance: d})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Word < candidates[j].Word
	})
	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}

	return Result{IsCorrect: false, Suggestions: candidates}
}

func lenDiff(a, b string) int {
	if len(a) > len(b) {
		return len(a) - len(b)
	}
	return len(b) - len(a)
}

// sharesPrefixLetter drops candidates whose first AND second letters both
// differ from the token's. A transposed or mistyped first letter still
// survives via the second-letter match.
func sharesPrefixLetter(a, b string) bool {
	if a[0] == b[0] {
		return true
	}
	return len(a) > 1 && len(b) > 1 && a[1] == b[1]
}

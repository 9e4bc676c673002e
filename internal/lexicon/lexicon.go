// Package lexicon builds the known-word set shared by difficulty scoring
// and spelling suggestion: a tiered base vocabulary (embedded at build time)
// expanded with mechanically generated inflections.
//
// A Lexicon is immutable after Build and safe for concurrent use. The
// composition root owns the single instance and injects it; construction is
// deterministic and idempotent, so a sync.Once around Build is all a lazy
// caller needs.
package lexicon

import (
	"bufio"
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

//go:embed data/wordlist.txt
var wordlistData string

// minTokenLen mirrors the tokenizer's minimum word length.
const minTokenLen = 2

// Lexicon is the expanded known-word set.
type Lexicon struct {
	tiers map[string]domain.Level // base word -> tier
	roots map[string]string       // any known form (incl. base) -> base word
	words []string                // all known forms, sorted
}

// Build parses the embedded word list and generates inflections for every
// base word. Generated forms inherit the tier of their root; when a
// generated form collides with a base word, the base entry wins.
func Build() (*Lexicon, error) {
	l := &Lexicon{
		tiers: make(map[string]domain.Level, 2048),
		roots: make(map[string]string, 16384),
	}

	sc := bufio.NewScanner(strings.NewReader(wordlistData))
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("lexicon: line %d: expected \"word tier\", got %q", line, text)
		}

		word := strings.ToLower(fields[0])
		tier := domain.Level(fields[1])
		if !tier.IsValid() || tier == domain.LevelUnknown {
			return nil, fmt.Errorf("lexicon: line %d: invalid tier %q", line, fields[1])
		}

		l.tiers[word] = tier
		l.roots[word] = word
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: scan word list: %w", err)
	}

	// Generated forms never shadow base entries.
	for base := range l.tiers {
		for _, form := range inflections(base) {
			if _, exists := l.roots[form]; !exists {
				l.roots[form] = base
			}
		}
	}

	l.words = make([]string, 0, len(l.roots))
	for form := range l.roots {
		l.words = append(l.words, form)
	}
	sort.Strings(l.words)

	return l, nil
}

// Contains reports whether word is a known form (base or generated).
func (l *Lexicon) Contains(word string) bool {
	_, ok := l.roots[word]
	return ok
}

// RootOf returns the base word a known form derives from. For base words it
// returns the word itself. ok is false for unknown forms.
func (l *Lexicon) RootOf(word string) (root string, ok bool) {
	root, ok = l.roots[word]
	return root, ok
}

// Tier returns the CEFR tier of a word's root, or LevelUnknown for words
// outside the lexicon.
func (l *Lexicon) Tier(word string) domain.Level {
	root, ok := l.roots[word]
	if !ok {
		return domain.LevelUnknown
	}
	return l.tiers[root]
}

// IsCommon reports whether a word belongs to the common (A1/A2) tier,
// counting generated forms of common roots.
func (l *Lexicon) IsCommon(word string) bool {
	tier := l.Tier(word)
	return tier == domain.LevelA1 || tier == domain.LevelA2
}

// IsAdvanced reports whether a word's root sits above the intermediate tiers.
func (l *Lexicon) IsAdvanced(word string) bool {
	tier := l.Tier(word)
	return tier == domain.LevelC1 || tier == domain.LevelC2
}

// Words returns every known form in sorted order. Callers must not modify
// the returned slice.
func (l *Lexicon) Words() []string {
	return l.words
}

// Size returns the number of known forms.
func (l *Lexicon) Size() int {
	return len(l.words)
}

package domain

import (
	"strings"
	"unicode"
)

// minTokenLen is the minimum length of a token; single letters carry no
// vocabulary signal.
const minTokenLen = 2

// Tokenize splits text into lowercase alphabetic runs of length >= 2,
// in document order. Digits, punctuation, and whitespace act as separators.
//
// This is the single tokenizer shared by the difficulty scorer and the
// session merger: both must derive exactly the same word set for an article,
// otherwise skip-count decay would drift from the stored difficulty metrics.
func Tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	var runes int

	flush := func() {
		// Length is counted in letters, not bytes, so a lone accented
		// letter does not slip through as a token.
		if runes >= minTokenLen {
			tokens = append(tokens, b.String())
		}
		b.Reset()
		runes = 0
	}

	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
			runes++
		} else {
			flush()
		}
	}
	flush()

	return tokens
}

// UniqueWords returns the deduplicated token set of text, preserving
// first-seen order.
func UniqueWords(text string) []string {
	tokens := Tokenize(text)
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}

// SplitSentences splits text into sentences on runs of '.', '!', '?'.
// Segments that contain no letters are discarded.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.IndexFunc(p, unicode.IsLetter) >= 0 {
			sentences = append(sentences, strings.TrimSpace(p))
		}
	}
	return sentences
}

// NormalizeWord prepares a word or phrase for use as a ledger key:
// trims surrounding whitespace, lowercases, and compresses internal
// whitespace runs to a single space. Hyphens and apostrophes are preserved.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	word = strings.ToLower(word)

	var b strings.Builder
	b.Grow(len(word))
	prevSpace := false
	for _, r := range word {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

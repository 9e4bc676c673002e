package lexicon

import "strings"

// Inflection generation. The rules are deliberately mechanical: they
// over-generate for irregular words ("goed", "runned"), which is acceptable
// because the expanded set is a recognition lexicon, not a production one.

// maxGradableLen bounds -er/-est generation; longer adjectives take
// "more"/"most" and never inflect.
const maxGradableLen = 7

// cvcMaxLen bounds consonant doubling to short stems (run -> running,
// visit -> visiting).
const cvcMaxLen = 4

func isVowel(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// endsSibilant reports whether word takes "-es" rather than "-s".
func endsSibilant(word string) bool {
	switch {
	case strings.HasSuffix(word, "s"),
		strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return true
	}
	return false
}

// endsConsonantY reports whether word ends in consonant + 'y' (carry, happy).
func endsConsonantY(word string) bool {
	n := len(word)
	return n >= 2 && word[n-1] == 'y' && !isVowel(word[n-2])
}

// doublesFinalConsonant reports whether a short CVC stem doubles its final
// consonant before a vowel-initial suffix (stop -> stopped).
func doublesFinalConsonant(word string) bool {
	n := len(word)
	if n < 3 || n > cvcMaxLen {
		return false
	}
	last := word[n-1]
	if last == 'w' || last == 'x' || last == 'y' {
		return false
	}
	return !isVowel(last) && isVowel(word[n-2]) && !isVowel(word[n-3])
}

// plural returns the -s/-es/-ies form (also the 3rd-person singular).
func plural(word string) string {
	switch {
	case endsConsonantY(word):
		return word[:len(word)-1] + "ies"
	case endsSibilant(word):
		return word + "es"
	default:
		return word + "s"
	}
}

// vowelSuffix attaches a vowel-initial suffix ("ed", "ing", "er", "est"),
// handling silent-e elision and CVC doubling.
func vowelSuffix(word, suffix string) string {
	switch {
	case strings.HasSuffix(word, "e") && suffix != "ed":
		return word[:len(word)-1] + suffix
	case strings.HasSuffix(word, "e") && suffix == "ed":
		return word + "d"
	case endsConsonantY(word) && suffix == "ed":
		return word[:len(word)-1] + "ied"
	case doublesFinalConsonant(word):
		return word + string(word[len(word)-1]) + suffix
	default:
		return word + suffix
	}
}

// adverb returns the -ly form, with -y -> -ily (happy -> happily).
func adverb(word string) string {
	if endsConsonantY(word) {
		return word[:len(word)-1] + "ily"
	}
	return word + "ly"
}

// inflections returns every generated form of a base word, excluding the
// base itself. Multi-word entries are not inflected.
func inflections(word string) []string {
	if len(word) < minTokenLen || strings.ContainsAny(word, " -'") {
		return nil
	}

	forms := []string{
		plural(word),
		vowelSuffix(word, "ed"),
		vowelSuffix(word, "ing"),
		adverb(word),
	}

	if len(word) <= maxGradableLen {
		forms = append(forms,
			vowelSuffix(word, "er"),
			vowelSuffix(word, "est"),
		)
	}

	return forms
}

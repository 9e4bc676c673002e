// Package difficulty converts raw text into a CEFR-like difficulty level.
// Scoring is pure: identical input always yields identical output, and the
// only shared state is the read-only lexicon.
package difficulty

import (
	"math"
	"unicode/utf8"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/lexicon"
)

// Weights of the composite score. They sum to 100, so the score reads as a
// 0..100 difficulty percentage.
const (
	weightUncommon    = 40
	weightAdvanced    = 25
	weightWordLength  = 15
	weightSentenceLen = 10
	weightTypeToken   = 10
)

// longUnknownLen: words absent from the lexicon are counted as advanced only
// when at least this long. Shorter unknowns are mostly names and typos.
const longUnknownLen = 9

// Details holds the diagnostic metrics behind a score, for display.
type Details struct {
	TotalWords        int
	UniqueWords       int
	CommonRatio       float64
	AdvancedRatio     float64
	AvgWordLength     float64
	AvgSentenceLength float64
	TypeTokenRatio    float64
}

// Result is the outcome of scoring one text.
type Result struct {
	Level   domain.Level
	Score   float64
	Details Details
}

// Scorer computes text difficulty against a lexicon.
type Scorer struct {
	lex *lexicon.Lexicon
}

// NewScorer creates a Scorer backed by the given lexicon.
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score tokenizes text and computes the composite difficulty score.
// Texts with no tokens yield {LevelUnknown, 0}.
//
//	score = 40·(1−commonRatio) + 25·advancedRatio
//	      + 15·clamp((avgWordLen−3)/7) + 10·clamp((avgSentLen−5)/25)
//	      + 10·typeTokenRatio
//
// rounded to one decimal, then mapped through the shared level thresholds.
func (s *Scorer) Score(text string) Result {
	tokens := domain.Tokenize(text)
	if len(tokens) == 0 {
		return Result{Level: domain.LevelUnknown, Score: 0}
	}

	unique := dedupe(tokens)

	var common, advanced int
	for _, w := range unique {
		if s.lex.IsCommon(w) {
			common++
		}
		if s.isAdvanced(w) {
			advanced++
		}
	}
	commonRatio := float64(common) / float64(len(unique))
	advancedRatio := float64(advanced) / float64(len(unique))

	var letters int
	for _, w := range tokens {
		// Letters, not bytes: non-ASCII words must not read as longer.
		letters += utf8.RuneCountInString(w)
	}
	avgWordLen := float64(letters) / float64(len(tokens))

	// With no sentence terminators the whole text is one sentence.
	sentences := domain.SplitSentences(text)
	avgSentenceLen := float64(len(tokens))
	if n := len(sentences); n > 0 {
		avgSentenceLen = float64(len(tokens)) / float64(n)
	}

	ttr := float64(len(unique)) / float64(len(tokens))

	score := weightUncommon*(1-commonRatio) +
		weightAdvanced*advancedRatio +
		weightWordLength*clamp01((avgWordLen-3)/7) +
		weightSentenceLen*clamp01((avgSentenceLen-5)/25) +
		weightTypeToken*ttr
	score = math.Round(score*10) / 10

	return Result{
		Level: domain.LevelFromScore(score),
		Score: score,
		Details: Details{
			TotalWords:        len(tokens),
			UniqueWords:       len(unique),
			CommonRatio:       commonRatio,
			AdvancedRatio:     advancedRatio,
			AvgWordLength:     avgWordLen,
			AvgSentenceLength: avgSentenceLen,
			TypeTokenRatio:    ttr,
		},
	}
}

// isAdvanced classifies a word above the intermediate tier: a C1/C2 root,
// or a long word the lexicon has never seen.
func (s *Scorer) isAdvanced(word string) bool {
	if s.lex.IsAdvanced(word) {
		return true
	}
	return !s.lex.Contains(word) && utf8.RuneCountInString(word) >= longUnknownLen
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package spelling

import (
	"testing"

	"github.com/readlingo/readlingo-backend/internal/lexicon"
)

func newSuggester(t *testing.T) *Suggester {
	t.Helper()
	lex, err := lexicon.Build()
	if err != nil {
		t.Fatalf("lexicon.Build: %v", err)
	}
	return NewSuggester(lex)
}

func TestCheck_KnownWordIsCorrect(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	for _, w := range []string{"quick", "jumped", "believe", "ubiquitous"} {
		got := s.Check(w, 0)
		if !got.IsCorrect {
			t.Errorf("Check(%q).IsCorrect = false, want true", w)
		}
		if len(got.Suggestions) != 0 {
			t.Errorf("Check(%q) returned %d suggestions, want 0", w, len(got.Suggestions))
		}
	}
}

func TestCheck_MisspellingGetsSuggestions(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	got := s.Check("beleive", 2)
	if got.IsCorrect {
		t.Fatal("Check(beleive).IsCorrect = true, want false")
	}
	if len(got.Suggestions) == 0 {
		t.Fatal("no suggestions for beleive")
	}

	found := false
	for _, sug := range got.Suggestions {
		if sug.Word == "believe" {
			found = true
		}
	}
	if !found {
		t.Errorf("suggestions %v do not include believe", got.Suggestions)
	}
}

func TestCheck_SuggestionInvariants(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	const maxDistance = 2
	for _, token := range []string{"beleive", "quik", "wrold", "jumpd", "difffer"} {
		got := s.Check(token, maxDistance)

		if len(got.Suggestions) > MaxSuggestions {
			t.Errorf("Check(%q): %d suggestions, cap is %d", token, len(got.Suggestions), MaxSuggestions)
		}
		for i, sug := range got.Suggestions {
			d := Distance(token, sug.Word)
			if d == 0 || d > maxDistance {
				t.Errorf("Check(%q): suggestion %q has distance %d", token, sug.Word, d)
			}
			if d != sug.Distance {
				t.Errorf("Check(%q): reported distance %d, actual %d", token, sug.Distance, d)
			}
			if i > 0 {
				prev := got.Suggestions[i-1]
				if prev.Distance > sug.Distance {
					t.Errorf("Check(%q): suggestions not sorted by distance", token)
				}
				if prev.Distance == sug.Distance && prev.Word >= sug.Word {
					t.Errorf("Check(%q): ties not broken alphabetically", token)
				}
			}
		}
	}
}

func TestCheck_DefaultDistanceApplied(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	// Non-positive maxDistance falls back to the default.
	a := s.Check("quik", 0)
	b := s.Check("quik", DefaultMaxDistance)
	if len(a.Suggestions) != len(b.Suggestions) {
		t.Errorf("default distance differs from explicit: %d vs %d",
			len(a.Suggestions), len(b.Suggestions))
	}
}

func TestCheck_NoFalseMatchBeyondDistance(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	got := s.Check("zzzzzzzzzzzz", 2)
	if got.IsCorrect {
		t.Fatal("gibberish reported correct")
	}
	if len(got.Suggestions) != 0 {
		t.Errorf("gibberish got suggestions: %v", got.Suggestions)
	}
}

func TestCheck_NormalizesInput(t *testing.T) {
	t.Parallel()
	s := newSuggester(t)

	if got := s.Check("  Quick  ", 2); !got.IsCorrect {
		t.Error("Check did not normalize case/whitespace")
	}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// SkipMasteryThreshold is the number of consecutive completed articles
// containing a word, without the user marking it, after which the word is
// considered mastered.
const SkipMasteryThreshold = 3

// HighFrequencyThreshold is the exposure count at which an active word
// qualifies as high-frequency within a merge.
const HighFrequencyThreshold = 3

// VocabEntry is one row of the per-user vocabulary ledger, unique per
// (user, normalized word-or-phrase). Entries are never deleted; they only
// change status.
type VocabEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Word           string
	ClickCount     int
	SkipCount      int
	Status         VocabStatus
	FirstArticleID *uuid.UUID
	LastArticleID  *uuid.UUID
	CreatedAt      time.Time
	LastClickedAt  time.Time
}

// VocabState is the portion of a VocabEntry the mastery state machine
// operates on. Keeping it separate from the full entry makes the transition
// rules testable without any storage.
type VocabState struct {
	Status     VocabStatus
	ClickCount int
	SkipCount  int
}

// VocabEvent is an input to the mastery state machine.
type VocabEvent int

const (
	// VocabEventClick: the word was marked unknown in a finished session.
	VocabEventClick VocabEvent = iota
	// VocabEventSkip: the word appeared in a finished article's unique-word
	// set but was not marked.
	VocabEventSkip
	// VocabEventMaster: the user manually marked the word mastered.
	VocabEventMaster
	// VocabEventRestore: the user manually returned the word to active study.
	VocabEventRestore
)

// ApplyVocabEvent returns the successor state for one event.
//
// Click increments the exposure counter, clears the skip counter, and forces
// the entry active: re-encountering a mastered word un-masters it.
// Skip is only meaningful while active: the skip counter grows and at
// SkipMasteryThreshold the entry flips to mastered. Skips on a mastered
// entry are ignored. Manual master flips status unconditionally and leaves
// the counters alone; manual restore re-activates and clears the skip count.
func ApplyVocabEvent(s VocabState, e VocabEvent) VocabState {
	switch e {
	case VocabEventClick:
		s.ClickCount++
		s.SkipCount = 0
		s.Status = VocabStatusActive
	case VocabEventSkip:
		if s.Status != VocabStatusActive {
			return s
		}
		s.SkipCount++
		if s.SkipCount >= SkipMasteryThreshold {
			s.Status = VocabStatusMastered
		}
	case VocabEventMaster:
		s.Status = VocabStatusMastered
	case VocabEventRestore:
		s.Status = VocabStatusActive
		s.SkipCount = 0
	}
	return s
}

// NewVocabState is the state of a freshly clicked word.
func NewVocabState() VocabState {
	return VocabState{Status: VocabStatusActive, ClickCount: 1, SkipCount: 0}
}

// State extracts the machine-relevant fields of the entry.
func (e *VocabEntry) State() VocabState {
	return VocabState{Status: e.Status, ClickCount: e.ClickCount, SkipCount: e.SkipCount}
}

// SetState writes machine fields back onto the entry.
func (e *VocabEntry) SetState(s VocabState) {
	e.Status = s.Status
	e.ClickCount = s.ClickCount
	e.SkipCount = s.SkipCount
}

// WordMeaning is a free-text gloss with an optional context sentence,
// attached to a vocabulary entry. ArticleID is nullable so meanings survive
// article deletion. At most one meaning per (entry, article) is kept per
// finish event.
type WordMeaning struct {
	ID        uuid.UUID
	EntryID   uuid.UUID
	ArticleID *uuid.UUID
	Meaning   string
	Context   *string
	CreatedAt time.Time
}

// ClickedWord is the ephemeral per-article marking of an unknown token,
// scoped to (article, user, word). It is the merger's source of truth for
// what was marked in a reading and is not mutated by it.
type ClickedWord struct {
	ID        uuid.UUID
	ArticleID uuid.UUID
	UserID    uuid.UUID
	Word      string
	CreatedAt time.Time
}

// VocabStats holds ledger-wide counts per status.
type VocabStats struct {
	Active   int
	Mastered int
	Total    int
}

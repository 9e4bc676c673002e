package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReadingSession is an immutable snapshot produced once per finish event.
// The log is append-only: re-reading an article produces a new session.
type ReadingSession struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	ArticleID      *uuid.UUID
	Difficulty     Level
	NewWords       int
	RepeatedWords  int
	MasteredWords  int
	HighFreqWords  []string
	TotalVocab     int
	UnknownPercent float64
	EstimatedLevel Level
	CreatedAt      time.Time
}

// LevelHistoryEntry is one point of the per-user level time series, written
// alongside each reading session. Used for trend charts and as the
// proficiency estimator's input window.
type LevelHistoryEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Level          Level
	Score          float64
	VocabSize      int
	UnknownPercent float64
	CreatedAt      time.Time
}

// SessionRecord is the estimator's view of one finished reading: the
// article's difficulty at the time and the share of its unique words the
// user marked unknown.
type SessionRecord struct {
	Difficulty     Level
	UnknownPercent float64
}

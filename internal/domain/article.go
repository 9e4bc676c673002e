package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is an imported text owned by one user. The content is immutable;
// difficulty fields are computed once at import time and never recomputed.
// IsCompleted flips permanently to true on the first finished reading;
// later finishes are re-reads of the same article.
type Article struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Title           string
	Content         string
	Level           Level
	Score           float64
	WordCount       int
	UniqueWordCount int
	IsCompleted     bool
	UnknownCount    int
	UnknownPercent  float64
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

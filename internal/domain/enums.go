package domain

// Level represents a CEFR-like proficiency level.
// LevelUnknown is used when there is not enough signal to estimate one
// (empty text, empty session history).
type Level string

const (
	LevelUnknown Level = "unknown"
	LevelA1      Level = "A1"
	LevelA2      Level = "A2"
	LevelB1      Level = "B1"
	LevelB2      Level = "B2"
	LevelC1      Level = "C1"
	LevelC2      Level = "C2"
)

func (l Level) String() string { return string(l) }

func (l Level) IsValid() bool {
	switch l {
	case LevelUnknown, LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2:
		return true
	}
	return false
}

// Rank returns the ordinal position of the level (unknown=0, A1=1 .. C2=6).
// Used to compare a word's tier against the user's target level.
func (l Level) Rank() int {
	switch l {
	case LevelA1:
		return 1
	case LevelA2:
		return 2
	case LevelB1:
		return 3
	case LevelB2:
		return 4
	case LevelC1:
		return 5
	case LevelC2:
		return 6
	default:
		return 0
	}
}

// LevelFromScore maps a numeric difficulty score to a level.
// The same thresholds are used by the difficulty scorer and the
// proficiency estimator so the two always agree.
func LevelFromScore(score float64) Level {
	switch {
	case score <= 15:
		return LevelA1
	case score <= 25:
		return LevelA2
	case score <= 40:
		return LevelB1
	case score <= 55:
		return LevelB2
	case score <= 70:
		return LevelC1
	default:
		return LevelC2
	}
}

// VocabStatus represents the mastery state of a vocabulary entry.
type VocabStatus string

const (
	VocabStatusActive   VocabStatus = "ACTIVE"
	VocabStatusMastered VocabStatus = "MASTERED"
)

func (s VocabStatus) String() string { return string(s) }

func (s VocabStatus) IsValid() bool {
	switch s {
	case VocabStatusActive, VocabStatusMastered:
		return true
	}
	return false
}

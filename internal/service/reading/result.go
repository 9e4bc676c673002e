package reading

import "github.com/readlingo/readlingo-backend/internal/domain"

// FinishResult is the outcome of one finish-reading event.
type FinishResult struct {
	NewWords       int
	RepeatedWords  int
	MasteredWords  int
	HighFreqWords  []string
	TotalVocab     int
	UnknownPercent float64
	UserLevel      domain.Level
	IsReread       bool
}

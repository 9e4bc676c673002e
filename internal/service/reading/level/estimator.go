// Package level estimates a user's overall proficiency from their reading
// history. Pure and deterministic: the estimate depends only on the session
// records passed in.
package level

import (
	"math"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// WindowSize is the number of most recent sessions the estimate considers.
const WindowSize = 10

// defaultArticleScore is used for sessions whose difficulty level is not
// recognized (e.g. articles scored before a level existed).
const defaultArticleScore = 30

var articleScores = map[domain.Level]float64{
	domain.LevelA1: 10,
	domain.LevelA2: 25,
	domain.LevelB1: 40,
	domain.LevelB2: 55,
	domain.LevelC1: 70,
	domain.LevelC2: 85,
}

// Result is the estimator's output.
type Result struct {
	Level domain.Level
	Score float64
}

// Estimate derives a proficiency level from sessions ordered oldest to
// newest. With no sessions the result is {unknown, 0}.
//
// Each session contributes articleScore(difficulty) scaled by a mastery
// factor 0.5 + 0.5·(1 − unknownPct/100): reading a B1 text with nothing
// unknown counts fully, reading it with everything unknown counts half.
// Sessions are weighted linearly by recency (the i-th of n gets weight i),
// so the latest reading dominates the average.
func Estimate(sessions []domain.SessionRecord) Result {
	if len(sessions) == 0 {
		return Result{Level: domain.LevelUnknown, Score: 0}
	}

	if len(sessions) > WindowSize {
		sessions = sessions[len(sessions)-WindowSize:]
	}

	var weightedSum, weightTotal float64
	for i, s := range sessions {
		weight := float64(i + 1)
		weightedSum += weight * sessionScore(s)
		weightTotal += weight
	}

	score := math.Round(weightedSum/weightTotal*10) / 10
	return Result{Level: domain.LevelFromScore(score), Score: score}
}

func sessionScore(s domain.SessionRecord) float64 {
	base, ok := articleScores[s.Difficulty]
	if !ok {
		base = defaultArticleScore
	}

	unknown := clampPct(s.UnknownPercent)
	mastery := 0.5 + 0.5*(1-unknown/100)
	return base * mastery
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

package rest

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/readlingo/readlingo-backend/internal/service/difficulty"
	"github.com/readlingo/readlingo-backend/internal/service/spelling"
)

// difficultyScorer scores raw text without persisting anything.
type difficultyScorer interface {
	Score(text string) difficulty.Result
}

// spellChecker suggests corrections for a single token.
type spellChecker interface {
	Check(token string, maxDistance int) spelling.Result
}

// ToolsHandler serves stateless scoring and spelling endpoints.
type ToolsHandler struct {
	scorer  difficultyScorer
	speller spellChecker
	log     *slog.Logger
}

// NewToolsHandler creates a ToolsHandler.
func NewToolsHandler(scorer difficultyScorer, speller spellChecker, logger *slog.Logger) *ToolsHandler {
	return &ToolsHandler{scorer: scorer, speller: speller, log: logger.With("handler", "tools")}
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Level   string       `json:"level"`
	Score   float64      `json:"score"`
	Details scoreDetails `json:"details"`
}

type scoreDetails struct {
	TotalWords        int     `json:"totalWords"`
	UniqueWords       int     `json:"uniqueWords"`
	CommonRatio       float64 `json:"commonRatio"`
	AdvancedRatio     float64 `json:"advancedRatio"`
	AvgWordLength     float64 `json:"avgWordLength"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	TypeTokenRatio    float64 `json:"typeTokenRatio"`
}

type suggestResponse struct {
	Word        string               `json:"word"`
	IsCorrect   bool                 `json:"isCorrect"`
	Suggestions []suggestionResponse `json:"suggestions"`
}

// Score handles POST /tools/score.
func (h *ToolsHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := h.scorer.Score(req.Text)

	writeJSON(w, http.StatusOK, scoreResponse{
		Level: result.Level.String(),
		Score: result.Score,
		Details: scoreDetails{
			TotalWords:        result.Details.TotalWords,
			UniqueWords:       result.Details.UniqueWords,
			CommonRatio:       result.Details.CommonRatio,
			AdvancedRatio:     result.Details.AdvancedRatio,
			AvgWordLength:     result.Details.AvgWordLength,
			AvgSentenceLength: result.Details.AvgSentenceLength,
			TypeTokenRatio:    result.Details.TypeTokenRatio,
		},
	})
}

// Suggest handles GET /tools/suggest?word=...
func (h *ToolsHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	word := strings.TrimSpace(r.URL.Query().Get("word"))
	if word == "" {
		writeError(w, http.StatusBadRequest, "word is required")
		return
	}

	result := h.speller.Check(word, 0)

	resp := suggestResponse{
		Word:        word,
		IsCorrect:   result.IsCorrect,
		Suggestions: []suggestionResponse{},
	}
	for _, s := range result.Suggestions {
		resp.Suggestions = append(resp.Suggestions, suggestionResponse{Word: s.Word, Distance: s.Distance})
	}

	writeJSON(w, http.StatusOK, resp)
}

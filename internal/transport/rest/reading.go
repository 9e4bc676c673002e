package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/reading"
)

// readingService defines the minimal interface needed by ReadingHandler.
type readingService interface {
	FinishReading(ctx context.Context, input reading.FinishInput) (*reading.FinishResult, error)
	ListSessions(ctx context.Context, input reading.HistoryInput) ([]domain.ReadingSession, error)
	ListLevelHistory(ctx context.Context, input reading.HistoryInput) ([]domain.LevelHistoryEntry, error)
}

// ReadingHandler serves finish-reading and history REST endpoints.
type ReadingHandler struct {
	svc readingService
	log *slog.Logger
}

// NewReadingHandler creates a ReadingHandler.
func NewReadingHandler(svc readingService, logger *slog.Logger) *ReadingHandler {
	return &ReadingHandler{svc: svc, log: logger.With("handler", "reading")}
}

type finishRequest struct {
	Meanings map[string]string `json:"meanings"`
}

type finishResponse struct {
	NewWords       int      `json:"newWords"`
	RepeatedWords  int      `json:"repeatedWords"`
	MasteredWords  int      `json:"masteredWords"`
	HighFreqWords  []string `json:"highFreqWords"`
	TotalVocab     int      `json:"totalVocab"`
	UnknownPercent float64  `json:"unknownPercent"`
	UserLevel      string   `json:"userLevel"`
	IsReread       bool     `json:"isReread"`
}

type sessionResponse struct {
	ID             string    `json:"id"`
	ArticleID      *string   `json:"articleId,omitempty"`
	Difficulty     string    `json:"difficulty"`
	NewWords       int       `json:"newWords"`
	RepeatedWords  int       `json:"repeatedWords"`
	MasteredWords  int       `json:"masteredWords"`
	HighFreqWords  []string  `json:"highFreqWords"`
	TotalVocab     int       `json:"totalVocab"`
	UnknownPercent float64   `json:"unknownPercent"`
	EstimatedLevel string    `json:"estimatedLevel"`
	CreatedAt      time.Time `json:"createdAt"`
}

type levelHistoryResponse struct {
	Level          string    `json:"level"`
	Score          float64   `json:"score"`
	VocabSize      int       `json:"vocabSize"`
	UnknownPercent float64   `json:"unknownPercent"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Finish handles POST /articles/{id}/finish.
func (h *ReadingHandler) Finish(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	// The body is optional; an empty finish carries no meanings.
	var req finishRequest
	if r.Body != nil && r.ContentLength != 0 {
		if !decodeJSON(w, r, &req) {
			return
		}
	}

	result, err := h.svc.FinishReading(r.Context(), reading.FinishInput{
		ArticleID: id,
		Meanings:  req.Meanings,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	highFreq := result.HighFreqWords
	if highFreq == nil {
		highFreq = []string{}
	}

	writeJSON(w, http.StatusOK, finishResponse{
		NewWords:       result.NewWords,
		RepeatedWords:  result.RepeatedWords,
		MasteredWords:  result.MasteredWords,
		HighFreqWords:  highFreq,
		TotalVocab:     result.TotalVocab,
		UnknownPercent: result.UnknownPercent,
		UserLevel:      result.UserLevel.String(),
		IsReread:       result.IsReread,
	})
}

// Sessions handles GET /sessions.
func (h *ReadingHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	sessions, err := h.svc.ListSessions(r.Context(), reading.HistoryInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		items = append(items, toSessionResponse(s))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// LevelHistory handles GET /level-history.
func (h *ReadingHandler) LevelHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.svc.ListLevelHistory(r.Context(), reading.HistoryInput{Limit: limit})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]levelHistoryResponse, 0, len(history))
	for _, e := range history {
		items = append(items, levelHistoryResponse{
			Level:          e.Level.String(),
			Score:          e.Score,
			VocabSize:      e.VocabSize,
			UnknownPercent: e.UnknownPercent,
			CreatedAt:      e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func toSessionResponse(s domain.ReadingSession) sessionResponse {
	resp := sessionResponse{
		ID:             s.ID.String(),
		Difficulty:     s.Difficulty.String(),
		NewWords:       s.NewWords,
		RepeatedWords:  s.RepeatedWords,
		MasteredWords:  s.MasteredWords,
		HighFreqWords:  s.HighFreqWords,
		TotalVocab:     s.TotalVocab,
		UnknownPercent: s.UnknownPercent,
		EstimatedLevel: s.EstimatedLevel.String(),
		CreatedAt:      s.CreatedAt,
	}
	if s.ArticleID != nil {
		id := s.ArticleID.String()
		resp.ArticleID = &id
	}
	if resp.HighFreqWords == nil {
		resp.HighFreqWords = []string{}
	}
	return resp
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/article"
)

// articleService defines the minimal interface needed by ArticleHandler.
type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	ImportFromURL(ctx context.Context, input article.ImportURLInput) (*domain.Article, error)
	Get(ctx context.Context, articleID uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, input article.ListInput) ([]domain.Article, error)
	Delete(ctx context.Context, articleID uuid.UUID) error
	ClickWord(ctx context.Context, input article.ClickInput) (*article.ClickResult, error)
	UnclickWord(ctx context.Context, input article.ClickInput) (bool, error)
	ClickedWords(ctx context.Context, articleID uuid.UUID) ([]string, error)
}

// ArticleHandler serves article REST endpoints.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

type createArticleRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type importURLRequest struct {
	URL string `json:"url"`
}

type clickWordRequest struct {
	Word string `json:"word"`
}

type articleResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Content         string     `json:"content,omitempty"`
	Level           string     `json:"level"`
	Score           float64    `json:"score"`
	WordCount       int        `json:"wordCount"`
	UniqueWordCount int        `json:"uniqueWordCount"`
	IsCompleted     bool       `json:"isCompleted"`
	UnknownCount    int        `json:"unknownCount"`
	UnknownPercent  float64    `json:"unknownPercent"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

type suggestionResponse struct {
	Word     string `json:"word"`
	Distance int    `json:"distance"`
}

type clickResponse struct {
	Word        string               `json:"word"`
	Added       bool                 `json:"added"`
	IsCorrect   bool                 `json:"isCorrect"`
	Suggestions []suggestionResponse `json:"suggestions,omitempty"`
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.Create(r.Context(), article.CreateInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(a, true))
}

// ImportURL handles POST /articles/import.
func (h *ArticleHandler) ImportURL(w http.ResponseWriter, r *http.Request) {
	var req importURLRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.ImportFromURL(r.Context(), article.ImportURLInput{URL: req.URL})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toArticleResponse(a, true))
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	a, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toArticleResponse(a, true))
}

// List handles GET /articles. Content is omitted from list items.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	articles, err := h.svc.List(r.Context(), article.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]articleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, toArticleResponse(&articles[i], false))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Delete handles DELETE /articles/{id}.
func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClickWord handles POST /articles/{id}/clicks.
func (h *ArticleHandler) ClickWord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req clickWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.ClickWord(r.Context(), article.ClickInput{ArticleID: id, Word: req.Word})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := clickResponse{
		Word:      result.Word,
		Added:     result.Added,
		IsCorrect: result.Spelling.IsCorrect,
	}
	for _, s := range result.Spelling.Suggestions {
		resp.Suggestions = append(resp.Suggestions, suggestionResponse{Word: s.Word, Distance: s.Distance})
	}

	writeJSON(w, http.StatusOK, resp)
}

// UnclickWord handles DELETE /articles/{id}/clicks.
func (h *ArticleHandler) UnclickWord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req clickWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	removed, err := h.svc.UnclickWord(r.Context(), article.ClickInput{ArticleID: id, Word: req.Word})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// ClickedWords handles GET /articles/{id}/clicks.
func (h *ArticleHandler) ClickedWords(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	words, err := h.svc.ClickedWords(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if words == nil {
		words = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"words": words})
}

func toArticleResponse(a *domain.Article, withContent bool) articleResponse {
	resp := articleResponse{
		ID:              a.ID.String(),
		Title:           a.Title,
		Level:           a.Level.String(),
		Score:           a.Score,
		WordCount:       a.WordCount,
		UniqueWordCount: a.UniqueWordCount,
		IsCompleted:     a.IsCompleted,
		UnknownCount:    a.UnknownCount,
		UnknownPercent:  a.UnknownPercent,
		CompletedAt:     a.CompletedAt,
		CreatedAt:       a.CreatedAt,
	}
	if withContent {
		resp.Content = a.Content
	}
	return resp
}

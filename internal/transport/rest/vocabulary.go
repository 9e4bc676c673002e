package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/vocabulary"
)

// vocabService defines the minimal interface needed by VocabHandler.
type vocabService interface {
	List(ctx context.Context, input vocabulary.ListInput) (*vocabulary.ListResult, error)
	MasterWord(ctx context.Context, entryID uuid.UUID) (*domain.VocabEntry, error)
	RestoreWord(ctx context.Context, entryID uuid.UUID) (*domain.VocabEntry, error)
	AddMeaning(ctx context.Context, input vocabulary.AddMeaningInput) (*domain.WordMeaning, error)
	ListMeanings(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error)
	DeleteMeaning(ctx context.Context, meaningID uuid.UUID) error
	Stats(ctx context.Context) (domain.VocabStats, error)
}

// VocabHandler serves vocabulary ledger REST endpoints.
type VocabHandler struct {
	svc vocabService
	log *slog.Logger
}

// NewVocabHandler creates a VocabHandler.
func NewVocabHandler(svc vocabService, logger *slog.Logger) *VocabHandler {
	return &VocabHandler{svc: svc, log: logger.With("handler", "vocabulary")}
}

type addMeaningRequest struct {
	ArticleID *string `json:"articleId"`
	Meaning   string  `json:"meaning"`
	Context   *string `json:"context"`
}

type entryResponse struct {
	ID             string    `json:"id"`
	Word           string    `json:"word"`
	ClickCount     int       `json:"clickCount"`
	SkipCount      int       `json:"skipCount"`
	Status         string    `json:"status"`
	FirstArticleID *string   `json:"firstArticleId,omitempty"`
	LastArticleID  *string   `json:"lastArticleId,omitempty"`
	Root           string    `json:"root,omitempty"`
	Tier           string    `json:"tier,omitempty"`
	BeyondTarget   bool      `json:"beyondTarget"`
	CreatedAt      time.Time `json:"createdAt"`
	LastClickedAt  time.Time `json:"lastClickedAt"`
}

type meaningResponse struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entryId"`
	ArticleID *string   `json:"articleId,omitempty"`
	Meaning   string    `json:"meaning"`
	Context   *string   `json:"context,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type statsResponse struct {
	Active   int `json:"active"`
	Mastered int `json:"mastered"`
	Total    int `json:"total"`
}

// List handles GET /vocabulary.
func (h *VocabHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	input := vocabulary.ListInput{
		Search:    q.Get("search"),
		SortBy:    q.Get("sortBy"),
		SortOrder: q.Get("sortOrder"),
		Limit:     limit,
		Offset:    offset,
	}
	if raw := q.Get("status"); raw != "" {
		status := domain.VocabStatus(raw)
		input.Status = &status
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]entryResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, toEntryResponse(item))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": items,
		"total": result.Total,
	})
}

// Master handles POST /vocabulary/{id}/master.
func (h *VocabHandler) Master(w http.ResponseWriter, r *http.Request) {
	h.applyMastery(w, r, h.svc.MasterWord)
}

// Restore handles POST /vocabulary/{id}/restore.
func (h *VocabHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.applyMastery(w, r, h.svc.RestoreWord)
}

func (h *VocabHandler) applyMastery(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, entryID uuid.UUID) (*domain.VocabEntry, error),
) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entry, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(vocabulary.LedgerItem{Entry: *entry}))
}

// AddMeaning handles POST /vocabulary/{id}/meanings.
func (h *VocabHandler) AddMeaning(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req addMeaningRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := vocabulary.AddMeaningInput{
		EntryID: id,
		Meaning: req.Meaning,
		Context: req.Context,
	}
	if req.ArticleID != nil {
		articleID, err := uuid.Parse(*req.ArticleID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid articleId")
			return
		}
		input.ArticleID = &articleID
	}

	meaning, err := h.svc.AddMeaning(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMeaningResponse(*meaning))
}

// ListMeanings handles GET /vocabulary/{id}/meanings.
func (h *VocabHandler) ListMeanings(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	meanings, err := h.svc.ListMeanings(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]meaningResponse, 0, len(meanings))
	for _, m := range meanings {
		items = append(items, toMeaningResponse(m))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// DeleteMeaning handles DELETE /vocabulary/meanings/{id}.
func (h *VocabHandler) DeleteMeaning(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteMeaning(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /vocabulary/stats.
func (h *VocabHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Active:   stats.Active,
		Mastered: stats.Mastered,
		Total:    stats.Total,
	})
}

func toEntryResponse(item vocabulary.LedgerItem) entryResponse {
	e := item.Entry
	resp := entryResponse{
		ID:            e.ID.String(),
		Word:          e.Word,
		ClickCount:    e.ClickCount,
		SkipCount:     e.SkipCount,
		Status:        e.Status.String(),
		Root:          item.Root,
		BeyondTarget:  item.BeyondTarget,
		CreatedAt:     e.CreatedAt,
		LastClickedAt: e.LastClickedAt,
	}
	if item.Tier != "" {
		resp.Tier = item.Tier.String()
	}
	if e.FirstArticleID != nil {
		id := e.FirstArticleID.String()
		resp.FirstArticleID = &id
	}
	if e.LastArticleID != nil {
		id := e.LastArticleID.String()
		resp.LastArticleID = &id
	}
	return resp
}

func toMeaningResponse(m domain.WordMeaning) meaningResponse {
	resp := meaningResponse{
		ID:        m.ID.String(),
		EntryID:   m.EntryID.String(),
		Meaning:   m.Meaning,
		Context:   m.Context,
		CreatedAt: m.CreatedAt,
	}
	if m.ArticleID != nil {
		id := m.ArticleID.String()
		resp.ArticleID = &id
	}
	return resp
}

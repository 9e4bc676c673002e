// Package article implements article import, word clicking during a
// reading, and article listing. Difficulty is computed once at import time
// and stored; it is never recomputed.
package article

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/difficulty"
	"github.com/readlingo/readlingo-backend/internal/service/spelling"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type articleRepo interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	GetByID(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Article, error)
	Delete(ctx context.Context, userID, articleID uuid.UUID) error
}

type clickedWordRepo interface {
	Add(ctx context.Context, cw *domain.ClickedWord) (bool, error)
	Remove(ctx context.Context, articleID, userID uuid.UUID, word string) (bool, error)
	ListWords(ctx context.Context, articleID, userID uuid.UUID) ([]string, error)
}

type difficultyScorer interface {
	Score(text string) difficulty.Result
}

type spellChecker interface {
	Check(token string, maxDistance int) spelling.Result
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const fetchTimeout = 30 * time.Second

// Service implements the article business logic.
type Service struct {
	articles articleRepo
	clicked  clickedWordRepo
	scorer   difficultyScorer
	speller  spellChecker
	client   *http.Client
	log      *slog.Logger
}

// NewService creates a new Article service. The HTTP client is used only
// for URL imports; pass nil to use a default with a sane timeout.
func NewService(log *slog.Logger, articles articleRepo, clicked clickedWordRepo, scorer difficultyScorer, speller spellChecker, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &Service{
		articles: articles,
		clicked:  clicked,
		scorer:   scorer,
		speller:  speller,
		client:   client,
		log:      log.With("service", "article"),
	}
}

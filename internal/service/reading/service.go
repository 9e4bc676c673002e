// Package reading orchestrates the finish-reading event: reconciling
// clicked words against the vocabulary ledger, capturing meanings, and
// producing the per-session statistics and level estimate. Everything a
// finish touches commits in one transaction.
package reading

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type articleRepo interface {
	// GetByIDForUpdate must lock the row until the transaction commits so
	// concurrent finishes of the same article serialize on it.
	GetByIDForUpdate(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error)
	MarkCompleted(ctx context.Context, userID, articleID uuid.UUID, unknownCount int, unknownPercent float64) (*domain.Article, error)
}

type vocabRepo interface {
	Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	Update(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	GetByWords(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error)
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
}

type clickedWordRepo interface {
	ListWords(ctx context.Context, articleID, userID uuid.UUID) ([]string, error)
}

type meaningRepo interface {
	Create(ctx context.Context, m *domain.WordMeaning) (*domain.WordMeaning, error)
	ExistsForArticle(ctx context.Context, entryID, articleID uuid.UUID) (bool, error)
}

type sessionRepo interface {
	Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error)
	CreateLevelHistory(ctx context.Context, h *domain.LevelHistoryEntry) (*domain.LevelHistoryEntry, error)
	ListLevelHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LevelHistoryEntry, error)
}

type userRepo interface {
	UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level) (*domain.User, error)
	IncrementCompletedArticles(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the reading business logic.
type Service struct {
	articles articleRepo
	vocab    vocabRepo
	clicked  clickedWordRepo
	meanings meaningRepo
	sessions sessionRepo
	users    userRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Reading service.
func NewService(
	log *slog.Logger,
	articles articleRepo,
	vocab vocabRepo,
	clicked clickedWordRepo,
	meanings meaningRepo,
	sessions sessionRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		articles: articles,
		vocab:    vocab,
		clicked:  clicked,
		meanings: meanings,
		sessions: sessions,
		users:    users,
		tx:       tx,
		log:      log.With("service", "reading"),
	}
}

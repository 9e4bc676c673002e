// Package vocabulary implements the vocabulary ledger business logic:
// listing, manual mastery overrides, meanings, and ledger statistics.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type vocabRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.VocabEntry, error)
	GetByWord(ctx context.Context, userID uuid.UUID, word string) (*domain.VocabEntry, error)
	Update(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	List(ctx context.Context, userID uuid.UUID, f domain.VocabFilter) ([]domain.VocabEntry, int, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)
}

type meaningRepo interface {
	Create(ctx context.Context, m *domain.WordMeaning) (*domain.WordMeaning, error)
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error)
	Delete(ctx context.Context, userID, meaningID uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type wordLexicon interface {
	RootOf(word string) (string, bool)
	Tier(word string) domain.Level
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary ledger business logic.
type Service struct {
	vocab    vocabRepo
	meanings meaningRepo
	users    userRepo
	lex      wordLexicon
	log      *slog.Logger
}

// NewService creates a new Vocabulary service.
func NewService(log *slog.Logger, vocab vocabRepo, meanings meaningRepo, users userRepo, lex wordLexicon) *Service {
	return &Service{
		vocab:    vocab,
		meanings: meanings,
		users:    users,
		lex:      lex,
		log:      log.With("service", "vocabulary"),
	}
}

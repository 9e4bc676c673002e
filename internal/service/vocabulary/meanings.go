package vocabulary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// AddMeaning captures a meaning for a ledger entry. The entry must belong
// to the caller.
func (s *Service) AddMeaning(ctx context.Context, input AddMeaningInput) (*domain.WordMeaning, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check: the entry lookup is scoped to the caller.
	if _, err := s.vocab.GetByID(ctx, userID, input.EntryID); err != nil {
		return nil, fmt.Errorf("get vocab entry: %w", err)
	}

	meaning, err := s.meanings.Create(ctx, &domain.WordMeaning{
		ID:        uuid.New(),
		EntryID:   input.EntryID,
		ArticleID: input.ArticleID,
		Meaning:   input.Meaning,
		Context:   input.Context,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create meaning: %w", err)
	}
	return meaning, nil
}

// ListMeanings returns the meanings captured for one entry, oldest first.
func (s *Service) ListMeanings(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	if _, err := s.vocab.GetByID(ctx, userID, entryID); err != nil {
		return nil, fmt.Errorf("get vocab entry: %w", err)
	}

	meanings, err := s.meanings.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("list meanings: %w", err)
	}
	return meanings, nil
}

// DeleteMeaning removes a captured meaning owned by the caller.
func (s *Service) DeleteMeaning(ctx context.Context, meaningID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if meaningID == uuid.Nil {
		return domain.NewValidationError("meaning_id", "required")
	}

	if err := s.meanings.Delete(ctx, userID, meaningID); err != nil {
		return fmt.Errorf("delete meaning: %w", err)
	}
	return nil
}

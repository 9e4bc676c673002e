package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// MasterWord marks a ledger entry as mastered regardless of its counters.
// Mastering an already mastered entry is a no-op.
func (s *Service) MasterWord(ctx context.Context, entryID uuid.UUID) (*domain.VocabEntry, error) {
	return s.applyEvent(ctx, entryID, domain.VocabEventMaster)
}

// RestoreWord returns a mastered entry to active tracking with its skip
// streak cleared. Restoring an active entry only resets the streak.
func (s *Service) RestoreWord(ctx context.Context, entryID uuid.UUID) (*domain.VocabEntry, error) {
	return s.applyEvent(ctx, entryID, domain.VocabEventRestore)
}

func (s *Service) applyEvent(ctx context.Context, entryID uuid.UUID, event domain.VocabEvent) (*domain.VocabEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if entryID == uuid.Nil {
		return nil, domain.NewValidationError("entry_id", "required")
	}

	entry, err := s.vocab.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("get vocab entry: %w", err)
	}

	before := entry.State()
	after := domain.ApplyVocabEvent(before, event)
	if after == before {
		return entry, nil
	}
	entry.SetState(after)

	updated, err := s.vocab.Update(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("update vocab entry: %w", err)
	}

	s.log.InfoContext(ctx, "vocab status changed",
		"word", updated.Word,
		"from", before.Status,
		"to", after.Status,
	)
	return updated, nil
}

package article

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/internal/service/spelling"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// ClickResult is the outcome of marking a word during a reading.
// Spelling feeds the UI a typo hint when the marked token is not a known
// word; it never blocks the marking itself.
type ClickResult struct {
	Word     string
	Added    bool
	Spelling spelling.Result
}

// ClickWord marks a word as unknown within an article reading. Idempotent
// per (article, word): re-clicking reports Added=false.
func (s *Service) ClickWord(ctx context.Context, input ClickInput) (*ClickResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Ownership check before writing the marking.
	if _, err := s.articles.GetByID(ctx, userID, input.ArticleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}

	word := domain.NormalizeWord(input.Word)
	added, err := s.clicked.Add(ctx, &domain.ClickedWord{
		ID:        uuid.New(),
		ArticleID: input.ArticleID,
		UserID:    userID,
		Word:      word,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("add clicked word: %w", err)
	}

	return &ClickResult{
		Word:     word,
		Added:    added,
		Spelling: s.speller.Check(word, 0),
	}, nil
}

// UnclickWord removes a marking made earlier in the same reading.
// Removing a word that was never marked is a no-op.
func (s *Service) UnclickWord(ctx context.Context, input ClickInput) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}

	removed, err := s.clicked.Remove(ctx, input.ArticleID, userID, domain.NormalizeWord(input.Word))
	if err != nil {
		return false, fmt.Errorf("remove clicked word: %w", err)
	}
	return removed, nil
}

// ClickedWords returns the words marked so far in one reading, in click order.
func (s *Service) ClickedWords(ctx context.Context, articleID uuid.UUID) ([]string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if articleID == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}

	words, err := s.clicked.ListWords(ctx, articleID, userID)
	if err != nil {
		return nil, fmt.Errorf("list clicked words: %w", err)
	}
	return words, nil
}

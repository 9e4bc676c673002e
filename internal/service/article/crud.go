package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

const defaultListLimit = 20

// Get returns one of the caller's articles.
func (s *Service) Get(ctx context.Context, articleID uuid.UUID) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if articleID == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}

	article, err := s.articles.GetByID(ctx, userID, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return article, nil
}

// List returns the caller's articles, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	articles, err := s.articles.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Delete removes one of the caller's articles. Ledger entries and meanings
// survive; their article references become null through the schema.
func (s *Service) Delete(ctx context.Context, articleID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if articleID == uuid.Nil {
		return domain.NewValidationError("article_id", "required")
	}

	if err := s.articles.Delete(ctx, userID, articleID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	s.log.InfoContext(ctx, "article deleted", "article_id", articleID)
	return nil
}

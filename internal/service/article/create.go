package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// Create imports an article from raw text. The text is scored once here;
// the stored difficulty fields are immutable afterwards.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Article, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	scored := s.scorer.Score(content)

	article, err := s.articles.Create(ctx, &domain.Article{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           strings.TrimSpace(input.Title),
		Content:         content,
		Level:           scored.Level,
		Score:           scored.Score,
		WordCount:       scored.Details.TotalWords,
		UniqueWordCount: scored.Details.UniqueWords,
		CreatedAt:       time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.log.InfoContext(ctx, "article imported",
		"article_id", article.ID,
		"level", article.Level,
		"score", article.Score,
		"words", article.WordCount,
	)
	return article, nil
}

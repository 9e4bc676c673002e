package vocabulary

import (
	"context"
	"fmt"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// Stats returns ledger-wide counts per mastery status for the caller.
func (s *Service) Stats(ctx context.Context) (domain.VocabStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.VocabStats{}, domain.ErrUnauthorized
	}

	stats, err := s.vocab.CountByStatus(ctx, userID)
	if err != nil {
		return domain.VocabStats{}, fmt.Errorf("count vocab by status: %w", err)
	}
	return stats, nil
}

package reading

import (
	"context"
	"fmt"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// ListSessions returns the caller's reading sessions, newest first.
// Out-of-range limits are clamped to the default page size.
func (s *Service) ListSessions(ctx context.Context, input HistoryInput) ([]domain.ReadingSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.normalize()

	sessions, err := s.sessions.ListRecent(ctx, userID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list reading sessions: %w", err)
	}
	return sessions, nil
}

// ListLevelHistory returns the caller's level time series, newest first.
func (s *Service) ListLevelHistory(ctx context.Context, input HistoryInput) ([]domain.LevelHistoryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	input.normalize()

	history, err := s.sessions.ListLevelHistory(ctx, userID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list level history: %w", err)
	}
	return history, nil
}

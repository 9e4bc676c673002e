package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateTargetLevel changes the authenticated user's study goal.
// The target level scopes which ledger words are flagged as beyond the
// user's current goal; it never affects the estimator.
func (s *Service) UpdateTargetLevel(ctx context.Context, input UpdateTargetLevelInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateTargetLevel(ctx, userID, input.TargetLevel)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateTargetLevel: %w", err)
	}

	s.log.InfoContext(ctx, "target level updated",
		slog.String("user_id", userID.String()),
		slog.String("target_level", input.TargetLevel.String()))

	return user, nil
}

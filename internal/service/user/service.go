package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateTargetLevel(ctx context.Context, id uuid.UUID, level domain.Level) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}

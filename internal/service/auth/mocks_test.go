package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// userRepoMock is a mock implementation of userRepo.
type userRepoMock struct {
	CreateFunc     func(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	mu          sync.Mutex
	CreateCalls []*domain.User
}

func (m *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	cp := *user
	m.CreateCalls = append(m.CreateCalls, &cp)
	m.mu.Unlock()
	return m.CreateFunc(ctx, user)
}

func (m *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but was called")
	}
	return m.GetByEmailFunc(ctx, email)
}

// jwtManagerMock is a mock implementation of jwtManager.
type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc: method is nil but was called")
	}
	return m.GenerateAccessTokenFunc(userID)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc: method is nil but was called")
	}
	return m.ValidateAccessTokenFunc(token)
}

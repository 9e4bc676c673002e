package vocabulary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

var _ vocabRepo = &vocabRepoMock{}

type vocabRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, entryID uuid.UUID) (*domain.VocabEntry, error)
	GetByWordFunc     func(ctx context.Context, userID uuid.UUID, word string) (*domain.VocabEntry, error)
	UpdateFunc        func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, f domain.VocabFilter) ([]domain.VocabEntry, int, error)
	CountByStatusFunc func(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error)

	mu          sync.Mutex
	updateCalls []*domain.VocabEntry
}

func (m *vocabRepoMock) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.VocabEntry, error) {
	if m.GetByIDFunc == nil {
		panic("vocabRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, userID, entryID)
}

func (m *vocabRepoMock) GetByWord(ctx context.Context, userID uuid.UUID, word string) (*domain.VocabEntry, error) {
	if m.GetByWordFunc == nil {
		panic("vocabRepoMock.GetByWordFunc: method is nil but was called")
	}
	return m.GetByWordFunc(ctx, userID, word)
}

func (m *vocabRepoMock) Update(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	if m.UpdateFunc == nil {
		panic("vocabRepoMock.UpdateFunc: method is nil but was called")
	}
	m.mu.Lock()
	copied := *e
	m.updateCalls = append(m.updateCalls, &copied)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, e)
}

func (m *vocabRepoMock) UpdateCalls() []*domain.VocabEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

func (m *vocabRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.VocabFilter) ([]domain.VocabEntry, int, error) {
	if m.ListFunc == nil {
		panic("vocabRepoMock.ListFunc: method is nil but was called")
	}
	return m.ListFunc(ctx, userID, f)
}

func (m *vocabRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	if m.CountByStatusFunc == nil {
		panic("vocabRepoMock.CountByStatusFunc: method is nil but was called")
	}
	return m.CountByStatusFunc(ctx, userID)
}

var _ meaningRepo = &meaningRepoMock{}

type meaningRepoMock struct {
	CreateFunc      func(ctx context.Context, m *domain.WordMeaning) (*domain.WordMeaning, error)
	ListByEntryFunc func(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error)
	DeleteFunc      func(ctx context.Context, userID, meaningID uuid.UUID) error
}

func (m *meaningRepoMock) Create(ctx context.Context, wm *domain.WordMeaning) (*domain.WordMeaning, error) {
	if m.CreateFunc == nil {
		panic("meaningRepoMock.CreateFunc: method is nil but was called")
	}
	return m.CreateFunc(ctx, wm)
}

func (m *meaningRepoMock) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error) {
	if m.ListByEntryFunc == nil {
		panic("meaningRepoMock.ListByEntryFunc: method is nil but was called")
	}
	return m.ListByEntryFunc(ctx, entryID)
}

func (m *meaningRepoMock) Delete(ctx context.Context, userID, meaningID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("meaningRepoMock.DeleteFunc: method is nil but was called")
	}
	return m.DeleteFunc(ctx, userID, meaningID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but was called")
	}
	return m.GetByIDFunc(ctx, id)
}

var _ wordLexicon = &wordLexiconMock{}

type wordLexiconMock struct {
	RootOfFunc func(word string) (string, bool)
	TierFunc   func(word string) domain.Level
}

func (m *wordLexiconMock) RootOf(word string) (string, bool) {
	if m.RootOfFunc == nil {
		return "", false
	}
	return m.RootOfFunc(word)
}

func (m *wordLexiconMock) Tier(word string) domain.Level {
	if m.TierFunc == nil {
		return domain.LevelUnknown
	}
	return m.TierFunc(word)
}

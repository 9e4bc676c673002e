package reading

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	GetByIDForUpdateFunc func(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error)
	MarkCompletedFunc    func(ctx context.Context, userID, articleID uuid.UUID, unknownCount int, unknownPercent float64) (*domain.Article, error)

	mu                 sync.Mutex
	markCompletedCalls int
}

func (m *articleRepoMock) GetByIDForUpdate(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	if m.GetByIDForUpdateFunc == nil {
		panic("articleRepoMock.GetByIDForUpdateFunc: method is nil but was called")
	}
	return m.GetByIDForUpdateFunc(ctx, userID, articleID)
}

func (m *articleRepoMock) MarkCompleted(ctx context.Context, userID, articleID uuid.UUID, unknownCount int, unknownPercent float64) (*domain.Article, error) {
	if m.MarkCompletedFunc == nil {
		panic("articleRepoMock.MarkCompletedFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.markCompletedCalls++
	m.mu.Unlock()
	return m.MarkCompletedFunc(ctx, userID, articleID, unknownCount, unknownPercent)
}

func (m *articleRepoMock) MarkCompletedCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.markCompletedCalls
}

var _ vocabRepo = &vocabRepoMock{}

type vocabRepoMock struct {
	CreateFunc      func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	UpdateFunc      func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error)
	GetByWordsFunc  func(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error)
	CountActiveFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	mu          sync.Mutex
	createCalls []domain.VocabEntry
	updateCalls []domain.VocabEntry
}

func (m *vocabRepoMock) Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	if m.CreateFunc == nil {
		panic("vocabRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, *e)
	m.mu.Unlock()
	return m.CreateFunc(ctx, e)
}

func (m *vocabRepoMock) CreateCalls() []domain.VocabEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *vocabRepoMock) Update(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	if m.UpdateFunc == nil {
		panic("vocabRepoMock.UpdateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, *e)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, e)
}

func (m *vocabRepoMock) UpdateCalls() []domain.VocabEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updateCalls
}

func (m *vocabRepoMock) GetByWords(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
	if m.GetByWordsFunc == nil {
		panic("vocabRepoMock.GetByWordsFunc: method is nil but was called")
	}
	return m.GetByWordsFunc(ctx, userID, words)
}

func (m *vocabRepoMock) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountActiveFunc == nil {
		panic("vocabRepoMock.CountActiveFunc: method is nil but was called")
	}
	return m.CountActiveFunc(ctx, userID)
}

var _ clickedWordRepo = &clickedWordRepoMock{}

type clickedWordRepoMock struct {
	ListWordsFunc func(ctx context.Context, articleID, userID uuid.UUID) ([]string, error)
}

func (m *clickedWordRepoMock) ListWords(ctx context.Context, articleID, userID uuid.UUID) ([]string, error) {
	if m.ListWordsFunc == nil {
		panic("clickedWordRepoMock.ListWordsFunc: method is nil but was called")
	}
	return m.ListWordsFunc(ctx, articleID, userID)
}

var _ meaningRepo = &meaningRepoMock{}

type meaningRepoMock struct {
	CreateFunc           func(ctx context.Context, wm *domain.WordMeaning) (*domain.WordMeaning, error)
	ExistsForArticleFunc func(ctx context.Context, entryID, articleID uuid.UUID) (bool, error)

	mu          sync.Mutex
	createCalls []domain.WordMeaning
}

func (m *meaningRepoMock) Create(ctx context.Context, wm *domain.WordMeaning) (*domain.WordMeaning, error) {
	if m.CreateFunc == nil {
		panic("meaningRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.createCalls = append(m.createCalls, *wm)
	m.mu.Unlock()
	return m.CreateFunc(ctx, wm)
}

func (m *meaningRepoMock) CreateCalls() []domain.WordMeaning {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.createCalls
}

func (m *meaningRepoMock) ExistsForArticle(ctx context.Context, entryID, articleID uuid.UUID) (bool, error) {
	if m.ExistsForArticleFunc == nil {
		return false, nil
	}
	return m.ExistsForArticleFunc(ctx, entryID, articleID)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc             func(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error)
	ListRecentFunc         func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error)
	CreateLevelHistoryFunc func(ctx context.Context, h *domain.LevelHistoryEntry) (*domain.LevelHistoryEntry, error)
	ListLevelHistoryFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LevelHistoryEntry, error)

	mu           sync.Mutex
	sessionCalls []domain.ReadingSession
	historyCalls []domain.LevelHistoryEntry
}

func (m *sessionRepoMock) Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
	if m.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.sessionCalls = append(m.sessionCalls, *s)
	m.mu.Unlock()
	return m.CreateFunc(ctx, s)
}

func (m *sessionRepoMock) CreateCalls() []domain.ReadingSession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionCalls
}

func (m *sessionRepoMock) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error) {
	if m.ListRecentFunc == nil {
		panic("sessionRepoMock.ListRecentFunc: method is nil but was called")
	}
	return m.ListRecentFunc(ctx, userID, limit)
}

func (m *sessionRepoMock) CreateLevelHistory(ctx context.Context, h *domain.LevelHistoryEntry) (*domain.LevelHistoryEntry, error) {
	if m.CreateLevelHistoryFunc == nil {
		panic("sessionRepoMock.CreateLevelHistoryFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.historyCalls = append(m.historyCalls, *h)
	m.mu.Unlock()
	return m.CreateLevelHistoryFunc(ctx, h)
}

func (m *sessionRepoMock) CreateLevelHistoryCalls() []domain.LevelHistoryEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.historyCalls
}

func (m *sessionRepoMock) ListLevelHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LevelHistoryEntry, error) {
	if m.ListLevelHistoryFunc == nil {
		panic("sessionRepoMock.ListLevelHistoryFunc: method is nil but was called")
	}
	return m.ListLevelHistoryFunc(ctx, userID, limit)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	UpdateLevelFunc                func(ctx context.Context, id uuid.UUID, l domain.Level) (*domain.User, error)
	IncrementCompletedArticlesFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	mu             sync.Mutex
	incrementCalls int
}

func (m *userRepoMock) UpdateLevel(ctx context.Context, id uuid.UUID, l domain.Level) (*domain.User, error) {
	if m.UpdateLevelFunc == nil {
		panic("userRepoMock.UpdateLevelFunc: method is nil but was called")
	}
	return m.UpdateLevelFunc(ctx, id, l)
}

func (m *userRepoMock) IncrementCompletedArticles(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.IncrementCompletedArticlesFunc == nil {
		panic("userRepoMock.IncrementCompletedArticlesFunc: method is nil but was called")
	}
	m.mu.Lock()
	m.incrementCalls++
	m.mu.Unlock()
	return m.IncrementCompletedArticlesFunc(ctx, id)
}

func (m *userRepoMock) IncrementCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incrementCalls
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly; rollback behavior is asserted
// by checking which writes happened before the failing step.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}

package reading

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/readlingo/readlingo-backend/internal/domain"
	"github.com/readlingo/readlingo-backend/pkg/ctxutil"
)

type fixtures struct {
	userID    uuid.UUID
	articleID uuid.UUID
	articles  *articleRepoMock
	vocab     *vocabRepoMock
	clicked   *clickedWordRepoMock
	meanings  *meaningRepoMock
	sessions  *sessionRepoMock
	users     *userRepoMock
}

// newFixtures wires mocks with passing defaults for one article and an
// empty ledger; tests override the pieces they exercise.
func newFixtures(content string, clicked []string) *fixtures {
	f := &fixtures{
		userID:    uuid.New(),
		articleID: uuid.New(),
	}

	f.articles = &articleRepoMock{
		GetByIDForUpdateFunc: func(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
			return &domain.Article{
				ID:      f.articleID,
				UserID:  f.userID,
				Content: content,
				Level:   domain.LevelB1,
			}, nil
		},
		MarkCompletedFunc: func(ctx context.Context, userID, articleID uuid.UUID, unknownCount int, unknownPercent float64) (*domain.Article, error) {
			return &domain.Article{ID: articleID, IsCompleted: true}, nil
		},
	}
	f.vocab = &vocabRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
			return e, nil
		},
		UpdateFunc: func(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
			return e, nil
		},
		GetByWordsFunc: func(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
			return map[string]*domain.VocabEntry{}, nil
		},
		CountActiveFunc: func(ctx context.Context, userID uuid.UUID) (int, error) {
			return 1, nil
		},
	}
	f.clicked = &clickedWordRepoMock{
		ListWordsFunc: func(ctx context.Context, articleID, userID uuid.UUID) ([]string, error) {
			return clicked, nil
		},
	}
	f.meanings = &meaningRepoMock{
		CreateFunc: func(ctx context.Context, wm *domain.WordMeaning) (*domain.WordMeaning, error) {
			return wm, nil
		},
	}
	f.sessions = &sessionRepoMock{
		CreateFunc: func(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
			return s, nil
		},
		ListRecentFunc: func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error) {
			return nil, nil
		},
		CreateLevelHistoryFunc: func(ctx context.Context, h *domain.LevelHistoryEntry) (*domain.LevelHistoryEntry, error) {
			return h, nil
		},
	}
	f.users = &userRepoMock{
		UpdateLevelFunc: func(ctx context.Context, id uuid.UUID, l domain.Level) (*domain.User, error) {
			return &domain.User{ID: id, Level: l}, nil
		},
		IncrementCompletedArticlesFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}
	return f
}

func (f *fixtures) service() *Service {
	return NewService(slog.Default(), f.articles, f.vocab, f.clicked, f.meanings, f.sessions, f.users, &txManagerMock{})
}

func (f *fixtures) finish(t *testing.T, meanings map[string]string) *FinishResult {
	t.Helper()
	ctx := ctxutil.WithUserID(context.Background(), f.userID)
	result, err := f.service().FinishReading(ctx, FinishInput{ArticleID: f.articleID, Meanings: meanings})
	if err != nil {
		t.Fatalf("FinishReading: unexpected error: %v", err)
	}
	return result
}

func TestFinishReading_FirstClick_CreatesEntry(t *testing.T) {
	t.Parallel()

	f := newFixtures("The quick fox jumps", []string{"fox"})

	result := f.finish(t, nil)

	if result.NewWords != 1 {
		t.Errorf("NewWords mismatch: got %d, want 1", result.NewWords)
	}
	if result.RepeatedWords != 0 {
		t.Errorf("RepeatedWords mismatch: got %d, want 0", result.RepeatedWords)
	}
	if result.UnknownPercent != 25.0 {
		t.Errorf("UnknownPercent mismatch: got %v, want 25.0", result.UnknownPercent)
	}

	creates := f.vocab.CreateCalls()
	if len(creates) != 1 {
		t.Fatalf("expected exactly 1 ledger create, got %d", len(creates))
	}
	fox := creates[0]
	if fox.Word != "fox" || fox.ClickCount != 1 || fox.SkipCount != 0 || fox.Status != domain.VocabStatusActive {
		t.Errorf("created entry mismatch: %+v", fox)
	}
	if fox.FirstArticleID == nil || *fox.FirstArticleID != f.articleID {
		t.Error("FirstArticleID not set to the finished article")
	}

	// Skips never create rows: the, quick, jumps had no entries.
	if updates := f.vocab.UpdateCalls(); len(updates) != 0 {
		t.Errorf("expected no ledger updates, got %d", len(updates))
	}
}

func TestFinishReading_SkipFlipsToMastered(t *testing.T) {
	t.Parallel()

	f := newFixtures("I run daily", nil)
	f.vocab.GetByWordsFunc = func(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
		return map[string]*domain.VocabEntry{
			"run": {ID: uuid.New(), UserID: f.userID, Word: "run", ClickCount: 2, SkipCount: 2, Status: domain.VocabStatusActive},
		}, nil
	}

	result := f.finish(t, nil)

	if result.MasteredWords != 1 {
		t.Errorf("MasteredWords mismatch: got %d, want 1", result.MasteredWords)
	}

	var run *domain.VocabEntry
	for i := range f.vocab.UpdateCalls() {
		if f.vocab.UpdateCalls()[i].Word == "run" {
			run = &f.vocab.UpdateCalls()[i]
		}
	}
	if run == nil {
		t.Fatal("expected an update for run")
	}
	if run.SkipCount != 3 || run.Status != domain.VocabStatusMastered {
		t.Errorf("skip transition mismatch: skips=%d status=%s", run.SkipCount, run.Status)
	}
}

func TestFinishReading_ClickUnmasters(t *testing.T) {
	t.Parallel()

	f := newFixtures("serendipity happens", []string{"serendipity"})
	f.vocab.GetByWordsFunc = func(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
		return map[string]*domain.VocabEntry{
			"serendipity": {ID: uuid.New(), UserID: f.userID, Word: "serendipity", ClickCount: 3, SkipCount: 3, Status: domain.VocabStatusMastered},
		}, nil
	}

	result := f.finish(t, nil)

	if result.RepeatedWords != 1 || result.NewWords != 0 {
		t.Errorf("counts mismatch: new=%d repeated=%d", result.NewWords, result.RepeatedWords)
	}

	updates := f.vocab.UpdateCalls()
	if len(updates) == 0 {
		t.Fatal("expected a ledger update")
	}
	got := updates[0]
	if got.Status != domain.VocabStatusActive || got.SkipCount != 0 || got.ClickCount != 4 {
		t.Errorf("click transition mismatch: %+v", got)
	}
}

func TestFinishReading_HighFrequencyWords(t *testing.T) {
	t.Parallel()

	f := newFixtures("again and again", []string{"again"})
	f.vocab.GetByWordsFunc = func(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
		return map[string]*domain.VocabEntry{
			"again": {ID: uuid.New(), UserID: f.userID, Word: "again", ClickCount: 2, Status: domain.VocabStatusActive},
		}, nil
	}

	result := f.finish(t, nil)

	if len(result.HighFreqWords) != 1 || result.HighFreqWords[0] != "again" {
		t.Errorf("HighFreqWords mismatch: %v", result.HighFreqWords)
	}
}

func TestFinishReading_Reread_NoCompletedIncrement(t *testing.T) {
	t.Parallel()

	f := newFixtures("old text revisited", nil)
	f.articles.GetByIDForUpdateFunc = func(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
		return &domain.Article{
			ID: f.articleID, UserID: f.userID,
			Content: "old text revisited", Level: domain.LevelB2,
			IsCompleted: true,
		}, nil
	}

	result := f.finish(t, nil)

	if !result.IsReread {
		t.Error("expected IsReread=true")
	}
	if f.users.IncrementCalls() != 0 {
		t.Error("completed-article counter must not change on a re-read")
	}
	// The session log is append-only: a re-read still adds a row.
	if len(f.sessions.CreateCalls()) != 1 {
		t.Errorf("expected 1 session row, got %d", len(f.sessions.CreateCalls()))
	}
	if len(f.sessions.CreateLevelHistoryCalls()) != 1 {
		t.Errorf("expected 1 level history row, got %d", len(f.sessions.CreateLevelHistoryCalls()))
	}
}

func TestFinishReading_CapturesMeaningOnce(t *testing.T) {
	t.Parallel()

	f := newFixtures("an obscure word", []string{"obscure"})

	f.finish(t, map[string]string{"obscure": "not well known"})

	creates := f.meanings.CreateCalls()
	if len(creates) != 1 {
		t.Fatalf("expected 1 meaning insert, got %d", len(creates))
	}
	if creates[0].Meaning != "not well known" {
		t.Errorf("meaning mismatch: %q", creates[0].Meaning)
	}
	if creates[0].ArticleID == nil || *creates[0].ArticleID != f.articleID {
		t.Error("meaning not tagged with the article")
	}
}

func TestFinishReading_MeaningKeysNormalized(t *testing.T) {
	t.Parallel()

	f := newFixtures("an obscure word", []string{"obscure"})

	// The gloss map arrives keyed exactly as the client typed the word.
	f.finish(t, map[string]string{" Obscure ": "not well known"})

	creates := f.meanings.CreateCalls()
	if len(creates) != 1 {
		t.Fatalf("expected 1 meaning insert, got %d", len(creates))
	}
	if creates[0].Meaning != "not well known" {
		t.Errorf("meaning mismatch: %q", creates[0].Meaning)
	}
}

func TestFinishReading_MeaningAlreadyExists_NotOverwritten(t *testing.T) {
	t.Parallel()

	f := newFixtures("an obscure word", []string{"obscure"})
	f.meanings.ExistsForArticleFunc = func(ctx context.Context, entryID, articleID uuid.UUID) (bool, error) {
		return true, nil
	}

	f.finish(t, map[string]string{"obscure": "second attempt"})

	if creates := f.meanings.CreateCalls(); len(creates) != 0 {
		t.Errorf("expected no meaning insert, got %d", len(creates))
	}
}

func TestFinishReading_MeaningInsertFails_NothingElseHappens(t *testing.T) {
	t.Parallel()

	f := newFixtures("an obscure word", []string{"obscure"})
	f.meanings.CreateFunc = func(ctx context.Context, wm *domain.WordMeaning) (*domain.WordMeaning, error) {
		return nil, errors.New("disk full")
	}

	ctx := ctxutil.WithUserID(context.Background(), f.userID)
	_, err := f.service().FinishReading(ctx, FinishInput{
		ArticleID: f.articleID,
		Meanings:  map[string]string{"obscure": "gloss"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	// Everything after the failing step must be skipped so the transaction
	// rolls back with no downstream writes.
	if f.articles.MarkCompletedCalls() != 0 {
		t.Error("MarkCompleted must not run after a failed meaning insert")
	}
	if len(f.sessions.CreateCalls()) != 0 {
		t.Error("no session row may be written after a failure")
	}
	if f.users.IncrementCalls() != 0 {
		t.Error("completed-article counter must not change after a failure")
	}
}

func TestFinishReading_SessionCreateFails_NoUserUpdate(t *testing.T) {
	t.Parallel()

	f := newFixtures("some text here", nil)
	f.sessions.CreateFunc = func(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
		return nil, errors.New("insert failed")
	}
	f.users.UpdateLevelFunc = func(ctx context.Context, id uuid.UUID, l domain.Level) (*domain.User, error) {
		t.Error("UpdateLevel must not run after a failed session insert")
		return nil, nil
	}

	ctx := ctxutil.WithUserID(context.Background(), f.userID)
	_, err := f.service().FinishReading(ctx, FinishInput{ArticleID: f.articleID})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFinishReading_EstimatorWiring(t *testing.T) {
	t.Parallel()

	// Single prior session B1/10% plus the current B1/0% reading:
	// prior contributes 38, current 40, weights 1 and 2 -> 39.3 -> B1.
	f := newFixtures("the cat sat", nil)
	f.sessions.ListRecentFunc = func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error) {
		return []domain.ReadingSession{
			{Difficulty: domain.LevelB1, UnknownPercent: 10},
		}, nil
	}

	var updatedLevel domain.Level
	f.users.UpdateLevelFunc = func(ctx context.Context, id uuid.UUID, l domain.Level) (*domain.User, error) {
		updatedLevel = l
		return &domain.User{ID: id, Level: l}, nil
	}

	result := f.finish(t, nil)

	if result.UserLevel != domain.LevelB1 {
		t.Errorf("UserLevel mismatch: got %s, want B1", result.UserLevel)
	}
	if updatedLevel != domain.LevelB1 {
		t.Errorf("stored level mismatch: got %s, want B1", updatedLevel)
	}

	sessions := f.sessions.CreateCalls()
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session row, got %d", len(sessions))
	}
	if sessions[0].EstimatedLevel != domain.LevelB1 {
		t.Errorf("EstimatedLevel mismatch: got %s", sessions[0].EstimatedLevel)
	}
	history := f.sessions.CreateLevelHistoryCalls()
	if len(history) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(history))
	}
	if history[0].Score != 39.3 {
		t.Errorf("history score mismatch: got %v, want 39.3", history[0].Score)
	}
}

func TestFinishReading_EmptyArticle_ZeroPercent(t *testing.T) {
	t.Parallel()

	f := newFixtures("12345 67890", nil)

	result := f.finish(t, nil)

	if result.UnknownPercent != 0 {
		t.Errorf("UnknownPercent mismatch: got %v, want 0", result.UnknownPercent)
	}
}

func TestFinishReading_Unauthorized(t *testing.T) {
	t.Parallel()

	f := newFixtures("text", nil)

	_, err := f.service().FinishReading(context.Background(), FinishInput{ArticleID: f.articleID})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestFinishReading_ArticleNotFound(t *testing.T) {
	t.Parallel()

	f := newFixtures("text", nil)
	f.articles.GetByIDForUpdateFunc = func(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
		return nil, domain.ErrNotFound
	}

	ctx := ctxutil.WithUserID(context.Background(), f.userID)
	_, err := f.service().FinishReading(ctx, FinishInput{ArticleID: f.articleID})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

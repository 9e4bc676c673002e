package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readlingo/readlingo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a fixed bcrypt-shaped hash and default levels.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "reader-" + suffix + "@example.com",
		Username:     "reader-" + suffix,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha",
		Level:        domain.LevelUnknown,
		TargetLevel:  domain.LevelB2,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, password_hash, level, target_level, completed_articles, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID, user.Email, user.Username, user.PasswordHash,
		string(user.Level), string(user.TargetLevel), user.CompletedArticles,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedArticle creates an uncompleted article for the given user with a short
// fixed text and precomputed difficulty fields. Returns the filled article.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Article {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	article := domain.Article{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Test Article " + suffix,
		Content:         "The small cat sat on the mat. It was a quiet day.",
		Level:           domain.LevelA1,
		Score:           12.5,
		WordCount:       12,
		UniqueWordCount: 11,
		CreatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, user_id, title, content, level, score, word_count, unique_word_count, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		article.ID, article.UserID, article.Title, article.Content,
		string(article.Level), article.Score, article.WordCount, article.UniqueWordCount,
		article.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert: %v", err)
	}

	return article
}

// SeedVocabEntry creates an active ledger entry with click_count 1 for the
// given user and word.
func SeedVocabEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, word string) domain.VocabEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.VocabEntry{
		ID:            uuid.New(),
		UserID:        userID,
		Word:          word,
		ClickCount:    1,
		Status:        domain.VocabStatusActive,
		CreatedAt:     now,
		LastClickedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vocab_entries (id, user_id, word, click_count, skip_count, status, created_at, last_clicked_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.Word, entry.ClickCount, entry.SkipCount,
		string(entry.Status), entry.CreatedAt, entry.LastClickedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVocabEntry insert: %v", err)
	}

	return entry
}

// SeedClickedWord marks a word as clicked within an article reading.
func SeedClickedWord(t *testing.T, pool *pgxpool.Pool, articleID, userID uuid.UUID, word string) domain.ClickedWord {
	t.Helper()
	ctx := context.Background()

	cw := domain.ClickedWord{
		ID:        uuid.New(),
		ArticleID: articleID,
		UserID:    userID,
		Word:      word,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO clicked_words (id, article_id, user_id, word, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		cw.ID, cw.ArticleID, cw.UserID, cw.Word, cw.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedClickedWord insert: %v", err)
	}

	return cw
}

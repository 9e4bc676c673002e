// Package clickedword implements the per-article clicked-word repository
// using PostgreSQL.
package clickedword

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides clicked-word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new clicked-word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// addSQL is idempotent per (article, user, word): clicking the same word
// twice in one reading is a single marking.
const addSQL = `
INSERT INTO clicked_words (id, article_id, user_id, word, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (article_id, user_id, word) DO NOTHING`

const removeSQL = `
DELETE FROM clicked_words
WHERE article_id = $1 AND user_id = $2 AND word = $3`

const listWordsSQL = `
SELECT word
FROM clicked_words
WHERE article_id = $1 AND user_id = $2
ORDER BY created_at ASC`

const countSQL = `
SELECT count(*)
FROM clicked_words
WHERE article_id = $1 AND user_id = $2`

// Add marks a word as clicked within an article reading. Re-marking an
// already clicked word is a no-op; the returned bool reports whether a new
// marking was created.
func (r *Repo) Add(ctx context.Context, cw *domain.ClickedWord) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, addSQL, cw.ID, cw.ArticleID, cw.UserID, cw.Word, cw.CreatedAt)
	if err != nil {
		return false, postgres.MapError(err, "clicked word", cw.Word)
	}
	return tag.RowsAffected() > 0, nil
}

// Remove unmarks a word. Removing a word that was never marked is a no-op;
// the returned bool reports whether a marking existed.
func (r *Repo) Remove(ctx context.Context, articleID, userID uuid.UUID, word string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeSQL, articleID, userID, word)
	if err != nil {
		return false, postgres.MapError(err, "clicked word", word)
	}
	return tag.RowsAffected() > 0, nil
}

// ListWords returns the words marked in one reading, in click order.
func (r *Repo) ListWords(ctx context.Context, articleID, userID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listWordsSQL, articleID, userID)
	if err != nil {
		return nil, fmt.Errorf("list clicked words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("list clicked words: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clicked words: %w", err)
	}
	return words, nil
}

// Count returns the number of words marked in one reading.
func (r *Repo) Count(ctx context.Context, articleID, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countSQL, articleID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count clicked words: %w", err)
	}
	return count, nil
}

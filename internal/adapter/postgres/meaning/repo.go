// Package meaning implements the word-meaning repository using PostgreSQL.
package meaning

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides word-meaning persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meaning repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const meaningColumns = `id, entry_id, article_id, meaning, context, created_at`

const createSQL = `
INSERT INTO word_meanings (id, entry_id, article_id, meaning, context, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + meaningColumns

const listByEntrySQL = `
SELECT ` + meaningColumns + `
FROM word_meanings
WHERE entry_id = $1
ORDER BY created_at ASC`

const existsForArticleSQL = `
SELECT EXISTS(
    SELECT 1 FROM word_meanings
    WHERE entry_id = $1 AND article_id = $2
)`

const deleteSQL = `
DELETE FROM word_meanings m
USING vocab_entries e
WHERE m.id = $1 AND m.entry_id = e.id AND e.user_id = $2`

// Create records a meaning captured for a ledger entry.
func (r *Repo) Create(ctx context.Context, m *domain.WordMeaning) (*domain.WordMeaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		m.ID, m.EntryID, m.ArticleID, m.Meaning, m.Context, m.CreatedAt,
	)

	created, err := scanMeaning(row)
	if err != nil {
		return nil, postgres.MapError(err, "word meaning", m.ID)
	}
	return created, nil
}

// ListByEntry returns all meanings captured for one entry, oldest first.
func (r *Repo) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]domain.WordMeaning, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByEntrySQL, entryID)
	if err != nil {
		return nil, fmt.Errorf("list word meanings: %w", err)
	}
	defer rows.Close()

	var meanings []domain.WordMeaning
	for rows.Next() {
		m, err := scanMeaning(rows)
		if err != nil {
			return nil, fmt.Errorf("list word meanings: %w", err)
		}
		meanings = append(meanings, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word meanings: %w", err)
	}
	return meanings, nil
}

// ExistsForArticle reports whether a meaning is already captured for the
// (entry, article) pair. The merger never overwrites an existing meaning.
func (r *Repo) ExistsForArticle(ctx context.Context, entryID, articleID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsForArticleSQL, entryID, articleID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check meaning exists: %w", err)
	}
	return exists, nil
}

// Delete removes a meaning, verifying through the entry that the caller
// owns it. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, meaningID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, meaningID, userID)
	if err != nil {
		return postgres.MapError(err, "word meaning", meaningID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word meaning", meaningID)
	}
	return nil
}

func scanMeaning(row pgx.Row) (*domain.WordMeaning, error) {
	var m domain.WordMeaning
	err := row.Scan(&m.ID, &m.EntryID, &m.ArticleID, &m.Meaning, &m.Context, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan word meaning: %w", err)
	}
	return &m, nil
}

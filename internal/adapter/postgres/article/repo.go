// Package article implements the Article repository using PostgreSQL.
package article

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new article repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const articleColumns = `id, user_id, title, content, level, score, word_count, unique_word_count,
       is_completed, unknown_count, unknown_percent, completed_at, created_at`

const createSQL = `
INSERT INTO articles (id, user_id, title, content, level, score, word_count, unique_word_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + articleColumns

const getByIDSQL = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1 AND user_id = $2`

// getByIDForUpdateSQL locks the article row for the rest of the
// transaction, serializing concurrent finish events on the same article.
const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const listSQL = `
SELECT ` + articleColumns + `
FROM articles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

const deleteSQL = `DELETE FROM articles WHERE id = $1 AND user_id = $2`

// markCompletedSQL flips completion only on the first finish; re-reads keep
// the original completed_at and unknown stats.
const markCompletedSQL = `
UPDATE articles
SET is_completed    = TRUE,
    unknown_count   = CASE WHEN is_completed THEN unknown_count ELSE $3 END,
    unknown_percent = CASE WHEN is_completed THEN unknown_percent ELSE $4 END,
    completed_at    = COALESCE(completed_at, now())
WHERE id = $1 AND user_id = $2
RETURNING ` + articleColumns

// Create inserts a new article with its precomputed difficulty fields.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		a.ID, a.UserID, a.Title, a.Content,
		string(a.Level), a.Score, a.WordCount, a.UniqueWordCount,
		a.CreatedAt,
	)

	created, err := scanArticle(row)
	if err != nil {
		return nil, postgres.MapError(err, "article", a.ID)
	}
	return created, nil
}

// GetByID returns an article by primary key scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArticle(q.QueryRow(ctx, getByIDSQL, articleID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "article", articleID)
	}
	return a, nil
}

// GetByIDForUpdate returns an article by primary key scoped to the owning
// user, holding a row lock until the surrounding transaction commits. A
// concurrent locked read of the same row blocks and then observes the
// committed state, so the second of two simultaneous finishes sees the
// completion flag the first one set.
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, articleID uuid.UUID) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArticle(q.QueryRow(ctx, getByIDForUpdateSQL, articleID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "article", articleID)
	}
	return a, nil
}

// List returns the user's articles, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("list articles: %w", err)
		}
		articles = append(articles, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Delete removes an article owned by the user.
// Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, userID, articleID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, articleID, userID)
	if err != nil {
		return postgres.MapError(err, "article", articleID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "article", articleID)
	}
	return nil
}

// MarkCompleted records completion of a reading. Idempotent for the
// completion flag: the first call sets unknown stats and completed_at,
// later calls leave them untouched.
func (r *Repo) MarkCompleted(ctx context.Context, userID, articleID uuid.UUID, unknownCount int, unknownPercent float64) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanArticle(q.QueryRow(ctx, markCompletedSQL, articleID, userID, unknownCount, unknownPercent))
	if err != nil {
		return nil, postgres.MapError(err, "article", articleID)
	}
	return a, nil
}

func scanArticle(row pgx.Row) (*domain.Article, error) {
	var (
		a     domain.Article
		level string
	)
	err := row.Scan(
		&a.ID, &a.UserID, &a.Title, &a.Content,
		&level, &a.Score, &a.WordCount, &a.UniqueWordCount,
		&a.IsCompleted, &a.UnknownCount, &a.UnknownPercent,
		&a.CompletedAt, &a.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan article: %w", err)
	}
	a.Level = domain.Level(level)
	return &a, nil
}

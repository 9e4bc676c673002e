// Package vocabulary implements the vocabulary ledger repository using
// PostgreSQL. Fixed-shape queries use raw SQL; the filtered listing is built
// dynamically with squirrel.
package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides vocabulary ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vocabulary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `id, user_id, word, click_count, skip_count, status,
       first_article_id, last_article_id, created_at, last_clicked_at`

// entryColumnNames mirrors entryColumns for builder-based queries.
var entryColumnNames = []string{
	"id", "user_id", "word", "click_count", "skip_count", "status",
	"first_article_id", "last_article_id", "created_at", "last_clicked_at",
}

const createSQL = `
INSERT INTO vocab_entries (id, user_id, word, click_count, skip_count, status,
       first_article_id, last_article_id, created_at, last_clicked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + entryColumns

const updateSQL = `
UPDATE vocab_entries
SET click_count = $3, skip_count = $4, status = $5,
    last_article_id = $6, last_clicked_at = $7
WHERE id = $1 AND user_id = $2
RETURNING ` + entryColumns

const getByIDSQL = `
SELECT ` + entryColumns + `
FROM vocab_entries
WHERE id = $1 AND user_id = $2`

const getByWordSQL = `
SELECT ` + entryColumns + `
FROM vocab_entries
WHERE user_id = $1 AND word = $2`

const getByWordsSQL = `
SELECT ` + entryColumns + `
FROM vocab_entries
WHERE user_id = $1 AND word = ANY($2::text[])`

const countByStatusSQL = `
SELECT status, count(*)
FROM vocab_entries
WHERE user_id = $1
GROUP BY status`

// Create inserts a new ledger entry.
func (r *Repo) Create(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		e.ID, e.UserID, e.Word, e.ClickCount, e.SkipCount, string(e.Status),
		e.FirstArticleID, e.LastArticleID, e.CreatedAt, e.LastClickedAt,
	)

	created, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocab entry", e.Word)
	}
	return created, nil
}

// Update persists the mutable fields of an existing entry.
func (r *Repo) Update(ctx context.Context, e *domain.VocabEntry) (*domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, updateSQL,
		e.ID, e.UserID, e.ClickCount, e.SkipCount, string(e.Status),
		e.LastArticleID, e.LastClickedAt,
	)

	updated, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "vocab entry", e.ID)
	}
	return updated, nil
}

// GetByID returns an entry by primary key scoped to the owning user.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByIDSQL, entryID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "vocab entry", entryID)
	}
	return e, nil
}

// GetByWord returns the entry for a normalized word, if any.
func (r *Repo) GetByWord(ctx context.Context, userID uuid.UUID, word string) (*domain.VocabEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	e, err := scanEntry(q.QueryRow(ctx, getByWordSQL, userID, word))
	if err != nil {
		return nil, postgres.MapError(err, "vocab entry", word)
	}
	return e, nil
}

// GetByWords returns the user's entries for the given words, keyed by word.
// Words with no entry are absent from the map.
func (r *Repo) GetByWords(ctx context.Context, userID uuid.UUID, words []string) (map[string]*domain.VocabEntry, error) {
	result := make(map[string]*domain.VocabEntry, len(words))
	if len(words) == 0 {
		return result, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByWordsSQL, userID, words)
	if err != nil {
		return nil, fmt.Errorf("get vocab entries by words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("get vocab entries by words: %w", err)
		}
		result[e.Word] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get vocab entries by words: %w", err)
	}
	return result, nil
}

// CountByStatus returns ledger-wide counts per status.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (domain.VocabStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return domain.VocabStats{}, fmt.Errorf("count vocab by status: %w", err)
	}
	defer rows.Close()

	var stats domain.VocabStats
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return domain.VocabStats{}, fmt.Errorf("count vocab by status: %w", err)
		}
		switch domain.VocabStatus(status) {
		case domain.VocabStatusActive:
			stats.Active = count
		case domain.VocabStatusMastered:
			stats.Mastered = count
		}
	}
	if err := rows.Err(); err != nil {
		return domain.VocabStats{}, fmt.Errorf("count vocab by status: %w", err)
	}
	stats.Total = stats.Active + stats.Mastered
	return stats, nil
}

// CountActive returns the number of ACTIVE entries. Used by the session
// merger for the total-vocab snapshot.
func (r *Repo) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := q.QueryRow(ctx,
		`SELECT count(*) FROM vocab_entries WHERE user_id = $1 AND status = 'ACTIVE'`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count active vocab: %w", err)
	}
	return count, nil
}

func scanEntry(row pgx.Row) (*domain.VocabEntry, error) {
	var (
		e      domain.VocabEntry
		status string
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Word, &e.ClickCount, &e.SkipCount, &status,
		&e.FirstArticleID, &e.LastArticleID, &e.CreatedAt, &e.LastClickedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan vocab entry: %w", err)
	}
	e.Status = domain.VocabStatus(status)
	return &e, nil
}

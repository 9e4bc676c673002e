// Package session implements the reading-session and level-history
// repository using PostgreSQL.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides reading-session persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new session repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const sessionColumns = `id, user_id, article_id, difficulty, new_words, repeated_words,
       mastered_words, high_freq_words, total_vocab, unknown_percent, estimated_level, created_at`

const createSessionSQL = `
INSERT INTO reading_sessions (id, user_id, article_id, difficulty, new_words, repeated_words,
       mastered_words, high_freq_words, total_vocab, unknown_percent, estimated_level, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + sessionColumns

const listRecentSQL = `
SELECT ` + sessionColumns + `
FROM reading_sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

const historyColumns = `id, user_id, level, score, vocab_size, unknown_percent, created_at`

const createHistorySQL = `
INSERT INTO level_history (id, user_id, level, score, vocab_size, unknown_percent, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + historyColumns

const listHistorySQL = `
SELECT ` + historyColumns + `
FROM level_history
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

// Create appends one immutable session snapshot to the log.
func (r *Repo) Create(ctx context.Context, s *domain.ReadingSession) (*domain.ReadingSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSessionSQL,
		s.ID, s.UserID, s.ArticleID, string(s.Difficulty),
		s.NewWords, s.RepeatedWords, s.MasteredWords, s.HighFreqWords,
		s.TotalVocab, s.UnknownPercent, string(s.EstimatedLevel), s.CreatedAt,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, postgres.MapError(err, "reading session", s.ID)
	}
	return created, nil
}

// ListRecent returns the user's most recent sessions, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReadingSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listRecentSQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list reading sessions: %w", err)
	}
	defer rows.Close()

	var sessions []domain.ReadingSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("list reading sessions: %w", err)
		}
		sessions = append(sessions, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reading sessions: %w", err)
	}
	return sessions, nil
}

// CreateLevelHistory appends one point to the user's level time series.
func (r *Repo) CreateLevelHistory(ctx context.Context, h *domain.LevelHistoryEntry) (*domain.LevelHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createHistorySQL,
		h.ID, h.UserID, string(h.Level), h.Score, h.VocabSize, h.UnknownPercent, h.CreatedAt,
	)

	created, err := scanHistory(row)
	if err != nil {
		return nil, postgres.MapError(err, "level history", h.ID)
	}
	return created, nil
}

// ListLevelHistory returns the user's level points, newest first.
func (r *Repo) ListLevelHistory(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LevelHistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listHistorySQL, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list level history: %w", err)
	}
	defer rows.Close()

	var entries []domain.LevelHistoryEntry
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("list level history: %w", err)
		}
		entries = append(entries, *h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list level history: %w", err)
	}
	return entries, nil
}

func scanSession(row pgx.Row) (*domain.ReadingSession, error) {
	var (
		s          domain.ReadingSession
		difficulty string
		estimated  string
	)
	err := row.Scan(
		&s.ID, &s.UserID, &s.ArticleID, &difficulty,
		&s.NewWords, &s.RepeatedWords, &s.MasteredWords, &s.HighFreqWords,
		&s.TotalVocab, &s.UnknownPercent, &estimated, &s.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan reading session: %w", err)
	}
	s.Difficulty = domain.Level(difficulty)
	s.EstimatedLevel = domain.Level(estimated)
	return &s, nil
}

func scanHistory(row pgx.Row) (*domain.LevelHistoryEntry, error) {
	var (
		h     domain.LevelHistoryEntry
		level string
	)
	err := row.Scan(&h.ID, &h.UserID, &level, &h.Score, &h.VocabSize, &h.UnknownPercent, &h.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("scan level history: %w", err)
	}
	h.Level = domain.Level(level)
	return &h, nil
}

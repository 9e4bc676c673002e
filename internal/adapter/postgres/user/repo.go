// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, password_hash, level, target_level, completed_articles, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, username, password_hash, level, target_level, completed_articles, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + userColumns

const getByIDSQL = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

const getByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const updateLevelSQL = `
UPDATE users SET level = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const updateTargetLevelSQL = `
UPDATE users SET target_level = $2, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

const incrementCompletedSQL = `
UPDATE users SET completed_articles = completed_articles + 1, updated_at = now()
WHERE id = $1
RETURNING ` + userColumns

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createSQL,
		u.ID, u.Email, u.Username, u.PasswordHash,
		string(u.Level), string(u.TargetLevel), u.CompletedArticles,
		u.CreatedAt, u.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return created, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// UpdateLevel sets the estimated proficiency level.
func (r *Repo) UpdateLevel(ctx context.Context, id uuid.UUID, level domain.Level) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateLevelSQL, id, string(level)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// UpdateTargetLevel sets the user's study goal level.
func (r *Repo) UpdateTargetLevel(ctx context.Context, id uuid.UUID, level domain.Level) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, updateTargetLevelSQL, id, string(level)))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

// IncrementCompletedArticles bumps the completed-articles counter by one.
func (r *Repo) IncrementCompletedArticles(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, incrementCompletedSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u           domain.User
		level       string
		targetLevel string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.PasswordHash,
		&level, &targetLevel, &u.CompletedArticles,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Level = domain.Level(level)
	u.TargetLevel = domain.Level(targetLevel)
	return &u, nil
}

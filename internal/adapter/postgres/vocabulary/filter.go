package vocabulary

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/readlingo/readlingo-backend/internal/adapter/postgres"
	"github.com/readlingo/readlingo-backend/internal/domain"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// sortColumns whitelists user-facing sort keys against real column names.
var sortColumns = map[string]string{
	"word":            "word",
	"click_count":     "click_count",
	"skip_count":      "skip_count",
	"created_at":      "created_at",
	"last_clicked_at": "last_clicked_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// List returns a filtered, sorted page of the user's ledger plus the total
// count matching the filter before pagination. Unknown sort keys and
// out-of-range pagination values fall back to defaults.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.VocabFilter) ([]domain.VocabEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{sq.Eq{"user_id": userID}}
	if f.Status != nil {
		where = append(where, sq.Eq{"status": string(*f.Status)})
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		where = append(where, sq.ILike{"word": "%" + escapeLike(search) + "%"})
	}

	countSQL, countArgs, err := psql.Select("count(*)").From("vocab_entries").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build vocab count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vocab entries: %w", err)
	}

	limit := f.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}

	listSQL, listArgs, err := psql.
		Select(entryColumnNames...).
		From("vocab_entries").
		Where(where).
		// Secondary word ordering keeps pagination stable across equal keys.
		OrderBy(column+" "+direction, "word ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build vocab list query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list vocab entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.VocabEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("list vocab entries: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list vocab entries: %w", err)
	}
	return entries, total, nil
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

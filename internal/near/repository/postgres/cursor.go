package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// Cursor returns the last durably written height of the named indexer.
// ok is false when the indexer has never saved a cursor.
func (r *Repository) Cursor(ctx context.Context, name string) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("cursor", err, start)
	}()

	query, args, err := sq.Select("height").
		From("indexer_cursors").
		Where(sq.Eq{"name": name}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build cursor query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return 0, false, fmt.Errorf("query cursor %s: %w", name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate cursor %s: %w", name, err)
		}
		return 0, false, nil
	}

	var stored int64
	if err = rows.Scan(&stored); err != nil {
		return 0, false, fmt.Errorf("scan cursor %s: %w", name, err)
	}
	if height, err = safe.Uint64(stored); err != nil {
		return 0, false, fmt.Errorf("cursor %s height: %w", name, err)
	}
	return height, true, nil
}

// SaveCursor records height as the last durably written height.
func (r *Repository) SaveCursor(ctx context.Context, name string, height uint64) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("save_cursor", err, start)
	}()

	stored, err := safe.Int64(height)
	if err != nil {
		return fmt.Errorf("cursor %s height: %w", name, err)
	}

	query, args, err := sq.Insert("indexer_cursors").
		Columns("name", "height", "updated_at").
		Values(name, stored, sq.Expr("now()")).
		Suffix("ON CONFLICT (name) DO UPDATE SET height = EXCLUDED.height, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("build save cursor: %w", err)
	}

	if _, err = r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("save cursor %s: %w", name, err)
	}
	return nil
}

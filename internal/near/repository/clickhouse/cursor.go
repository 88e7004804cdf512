package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// Cursor returns the last durably written height of the named indexer.
func (r *Repository) Cursor(ctx context.Context, name string) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("cursor", err, start)
	}()

	const query = `
SELECT argMax(height, updated_at) AS height
FROM near_indexer_cursors
WHERE name = ?
GROUP BY name`

	rows, err := r.conn.Query(ctx, query, name)
	if err != nil {
		return 0, false, fmt.Errorf("query cursor %s: %w", name, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return 0, false, fmt.Errorf("iterate cursor %s: %w", name, err)
		}
		return 0, false, nil
	}
	if err = rows.Scan(&height); err != nil {
		return 0, false, fmt.Errorf("scan cursor %s: %w", name, err)
	}
	return height, true, nil
}

// SaveCursor records height as the last durably written height.
func (r *Repository) SaveCursor(ctx context.Context, name string, height uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_cursor", err, start)
	}()

	const query = `
INSERT INTO near_indexer_cursors (name, height, updated_at)
VALUES (?, ?, ?)`

	if err = r.conn.Exec(ctx, query, name, height, time.Now().UTC()); err != nil {
		return fmt.Errorf("save cursor %s: %w", name, err)
	}
	return nil
}

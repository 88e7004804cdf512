package postgres

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// DB is the part of pgxpool.Pool the repository uses.
	DB interface {
		Exec(ctx context.Context, sql string, args ...any) (int64, error)
		Query(ctx context.Context, sql string, args ...any) (Rows, error)
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close()
	}
)

package lake

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ObjectStore reads the lake bucket layout: one prefix per block height.
	ObjectStore interface {
		// ListPrefixes returns up to limit top level prefixes sorted after startAfter.
		ListPrefixes(ctx context.Context, startAfter string, limit int) ([]string, error)
		Get(ctx context.Context, key string) ([]byte, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

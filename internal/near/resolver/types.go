package resolver

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Tier answers for the ids it knows. Ids it cannot resolve are left out of
	// the result and passed on to the next tier.
	Tier interface {
		Name() string
		Resolve(ctx context.Context, ids []string) (map[string]string, error)
	}
	Cache interface {
		Lookup(ctx context.Context, ids []string) (map[string]string, error)
	}
	Repository interface {
		TxHashesByOutputDataIDs(ctx context.Context, ids []string) (map[string]string, error)
		TxHashesByProducedReceiptIDs(ctx context.Context, ids []string) (map[string]string, error)
		TxHashesByConvertedReceiptIDs(ctx context.Context, ids []string) (map[string]string, error)
	}
	Metrics interface {
		ObserveTier(tier string, requested, resolved int, err error, started time.Time)
	}
)

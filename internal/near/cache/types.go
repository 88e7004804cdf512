package cache

import (
	"context"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RemoteCache is the shared store the external writer fills with
	// identifier to transaction hash entries.
	RemoteCache interface {
		MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	}
	Metrics interface {
		ObserveLookup(layer string, hits, misses int)
	}
)

// Package cache resolves receipt and data identifiers to transaction hashes
// from a process-local cache backed by a shared redis instance.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
)

const (
	layerLocal  = "local"
	layerRemote = "remote"

	localTTLSeconds = 6 * 60 * 60
)

// TxHashCache is a read-through lookup: the local layer is seeded by the
// ingester and by remote hits, the remote layer is only read.
type TxHashCache struct {
	local     *freecache.Cache
	remote    RemoteCache
	keyPrefix string
	metrics   Metrics
}

// New creates a TxHashCache with a local layer of localSizeMB megabytes.
// remote may be nil, in which case only the local layer is consulted.
func New(localSizeMB int, remote RemoteCache, keyPrefix string, metrics Metrics) *TxHashCache {
	return &TxHashCache{
		local:     freecache.NewCache(localSizeMB * 1024 * 1024),
		remote:    remote,
		keyPrefix: keyPrefix,
		metrics:   metrics,
	}
}

// NewRedisClient connects to redis and verifies the connection.
func NewRedisClient(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		ReadTimeout: 20 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

// Seed stores a known mapping in the local layer.
func (c *TxHashCache) Seed(id, txHash string) {
	if id == "" || txHash == "" {
		return
	}
	_ = c.local.Set([]byte(id), []byte(txHash), localTTLSeconds)
}

// Peek returns a mapping from the local layer only.
func (c *TxHashCache) Peek(id string) (string, bool) {
	value, err := c.local.Get([]byte(id))
	if err != nil {
		return "", false
	}
	return string(value), true
}

// Lookup returns the hashes known for ids. Absent ids are omitted from the result.
func (c *TxHashCache) Lookup(ctx context.Context, ids []string) (map[string]string, error) {
	result := make(map[string]string, len(ids))
	missing := make([]string, 0, len(ids))
	for _, id := range ids {
		if hash, ok := c.Peek(id); ok {
			result[id] = hash
			continue
		}
		missing = append(missing, id)
	}
	c.observe(layerLocal, len(ids)-len(missing), len(missing))

	if len(missing) == 0 || c.remote == nil {
		return result, nil
	}

	keys := make([]string, len(missing))
	for i, id := range missing {
		keys[i] = c.keyPrefix + id
	}
	values, err := c.remote.MGet(ctx, keys...).Result()
	if err != nil {
		return result, fmt.Errorf("redis mget %d keys: %w", len(keys), err)
	}

	hits := 0
	for i, value := range values {
		if i >= len(missing) {
			break
		}
		hash, ok := value.(string)
		if !ok || hash == "" {
			continue
		}
		result[missing[i]] = hash
		c.Seed(missing[i], hash)
		hits++
	}
	c.observe(layerRemote, hits, len(missing)-hits)

	return result, nil
}

func (c *TxHashCache) observe(layer string, hits, misses int) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveLookup(layer, hits, misses)
}

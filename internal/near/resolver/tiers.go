package resolver

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/retry"
	"go.uber.org/zap"
)

const (
	TierCache      = "cache"
	TierOutputData = "output_data"
	TierOutcome    = "outcome"
	TierOrigin     = "origin"
)

// storeTierBatchSize caps the number of ids in one IN (...) lookup.
// It is a var to allow overriding in tests.
var storeTierBatchSize = 1000

// DefaultTiers returns the cache, output data, outcome and origin tiers in
// resolution order.
func DefaultTiers(cache Cache, repo Repository, policy retry.Policy, logger *zap.Logger) []Tier {
	return []Tier{
		NewCacheTier(cache, logger),
		NewOutputDataTier(repo, policy),
		NewOutcomeTier(repo, policy),
		NewOriginTier(repo, policy),
	}
}

// CacheTier reads the shared reference cache. A cache failure is not fatal:
// whatever could not be read falls through to the store tiers.
type CacheTier struct {
	cache  Cache
	logger *zap.Logger
}

func NewCacheTier(cache Cache, logger *zap.Logger) *CacheTier {
	return &CacheTier{cache: cache, logger: logger}
}

func (t *CacheTier) Name() string {
	return TierCache
}

func (t *CacheTier) Resolve(ctx context.Context, ids []string) (map[string]string, error) {
	found, err := t.cache.Lookup(ctx, ids)
	if err != nil {
		t.logger.Warn("cache lookup failed, falling back to store", zap.Int("count", len(ids)), zap.Error(err))
	}
	if found == nil {
		found = map[string]string{}
	}
	return found, nil
}

type storeTier struct {
	name   string
	policy retry.Policy
	lookup func(ctx context.Context, ids []string) (map[string]string, error)
}

// NewOutputDataTier resolves data ids through the receipt that promised the data.
func NewOutputDataTier(repo Repository, policy retry.Policy) Tier {
	return &storeTier{name: TierOutputData, policy: policy, lookup: repo.TxHashesByOutputDataIDs}
}

// NewOutcomeTier resolves receipts through the outcome of the receipt that produced them.
func NewOutcomeTier(repo Repository, policy retry.Policy) Tier {
	return &storeTier{name: TierOutcome, policy: policy, lookup: repo.TxHashesByProducedReceiptIDs}
}

// NewOriginTier resolves receipts a transaction was converted into.
func NewOriginTier(repo Repository, policy retry.Policy) Tier {
	return &storeTier{name: TierOrigin, policy: policy, lookup: repo.TxHashesByConvertedReceiptIDs}
}

func (t *storeTier) Name() string {
	return t.name
}

func (t *storeTier) Resolve(ctx context.Context, ids []string) (map[string]string, error) {
	size := storeTierBatchSize
	if size <= 0 {
		size = 1000
	}

	result := make(map[string]string, len(ids))
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))

		found, err := retry.DoValue(ctx, t.policy, func(ctx context.Context) (map[string]string, error) {
			return t.lookup(ctx, ids[start:end])
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %s lookup: %w", model.ErrStoreUnavailable, t.name, err)
		}
		for id, hash := range found {
			result[id] = hash
		}
	}
	return result, nil
}

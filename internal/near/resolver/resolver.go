// Package resolver maps receipt and data ids to the hash of the transaction
// that started their causal chain.
package resolver

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"go.uber.org/zap"
)

// Resolver runs its tiers in order, each on the ids the previous ones left.
type Resolver struct {
	tiers   []Tier
	metrics Metrics
	logger  *zap.Logger
}

// New creates a Resolver. Tiers are consulted in the given order.
func New(logger *zap.Logger, metrics Metrics, tiers ...Tier) *Resolver {
	return &Resolver{
		tiers:   tiers,
		metrics: metrics,
		logger:  logger,
	}
}

// Resolve returns a hash for every id or a *model.UnresolvedReferenceError
// listing the ids no tier could answer. Duplicate ids are looked up once.
func (r *Resolver) Resolve(ctx context.Context, ids []string) (map[string]string, error) {
	remaining := unique(ids)
	resolved := make(map[string]string, len(remaining))

	for i, tier := range r.tiers {
		if len(remaining) == 0 {
			break
		}

		started := time.Now()
		found, err := tier.Resolve(ctx, remaining)
		r.observe(tier.Name(), len(remaining), len(found), err, started)
		if err != nil {
			return nil, fmt.Errorf("resolve %d ids at %s tier: %w", len(remaining), tier.Name(), err)
		}

		next := make([]string, 0, len(remaining))
		for _, id := range remaining {
			if hash := found[id]; hash != "" {
				resolved[id] = hash
				continue
			}
			next = append(next, id)
		}

		if len(next) > 0 && i+1 < len(r.tiers) {
			level := zap.DebugLevel
			if i == 0 {
				level = zap.WarnLevel
			}
			r.logger.Log(level, "escalating unresolved ids",
				zap.String("tier", tier.Name()),
				zap.String("next_tier", r.tiers[i+1].Name()),
				zap.Int("count", len(next)),
			)
		}
		remaining = next
	}

	if len(remaining) > 0 {
		sort.Strings(remaining)
		return nil, &model.UnresolvedReferenceError{IDs: remaining}
	}
	return resolved, nil
}

func (r *Resolver) observe(tier string, requested, resolved int, err error, started time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveTier(tier, requested, resolved, err, started)
}

func unique(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

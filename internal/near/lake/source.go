// Package lake reads NEAR Lake streamer messages from object storage.
package lake

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/clock"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/retry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit    = 100
	defaultPollInterval = 2 * time.Second
)

// Source turns the bucket layout into an ordered stream of blocks.
type Source struct {
	store        ObjectStore
	policy       retry.Policy
	logger       *zap.Logger
	pollInterval time.Duration
	listLimit    int
}

func NewSource(store ObjectStore, policy retry.Policy, pollInterval time.Duration, logger *zap.Logger) *Source {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Source{
		store:        store,
		policy:       policy,
		logger:       logger.Named("lake_source"),
		pollInterval: pollInterval,
		listLimit:    defaultListLimit,
	}
}

func heightKey(height uint64) string {
	return fmt.Sprintf("%012d", height)
}

// Stream sends every block from height from onwards to out, in height order.
// A zero to streams until ctx ends; otherwise Stream returns nil once the last
// block at or below to has been sent. out is never closed by Stream.
func (s *Source) Stream(ctx context.Context, from, to uint64, out chan<- *model.StreamerMessage) error {
	startAfter := heightKey(from)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prefixes, err := retry.DoValue(ctx, s.policy, func(ctx context.Context) ([]string, error) {
			return s.store.ListPrefixes(ctx, startAfter, s.listLimit)
		})
		if err != nil {
			return fmt.Errorf("list blocks after %s: %w", startAfter, err)
		}

		if len(prefixes) == 0 {
			s.logger.Debug("caught up with lake, waiting", zap.String("start_after", startAfter))
			if err := clock.SleepWithContext(ctx, s.pollInterval); err != nil {
				return err
			}
			continue
		}

		for _, prefix := range prefixes {
			height, err := strconv.ParseUint(strings.TrimSuffix(prefix, "/"), 10, 64)
			if err != nil {
				s.logger.Warn("skipping unexpected lake prefix", zap.String("prefix", prefix))
				startAfter = prefix
				continue
			}
			if to != 0 && height > to {
				return nil
			}

			msg, err := s.FetchBlock(ctx, height)
			if err != nil {
				return err
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			case out <- msg:
			}

			startAfter = prefix
			if to != 0 && height == to {
				return nil
			}
		}
	}
}

// FetchBlock reads a block and all of its shards. Shard files are named by
// shard id, which need not match the chunk position.
func (s *Source) FetchBlock(ctx context.Context, height uint64) (*model.StreamerMessage, error) {
	prefix := heightKey(height)

	var msg model.StreamerMessage
	if err := s.getJSON(ctx, prefix+"/block.json", &msg.Block); err != nil {
		return nil, fmt.Errorf("block %d: %w", height, err)
	}

	msg.Shards = make([]model.Shard, len(msg.Block.Chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i := range msg.Shards {
		shardID := msg.Block.Chunks[i].ShardID
		g.Go(func() error {
			key := fmt.Sprintf("%s/shard_%d.json", prefix, shardID)
			if err := s.getJSON(gctx, key, &msg.Shards[i]); err != nil {
				return fmt.Errorf("block %d shard %d: %w", height, shardID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &msg, nil
}

func (s *Source) getJSON(ctx context.Context, key string, v any) error {
	data, err := retry.DoValue(ctx, s.policy, func(ctx context.Context) ([]byte, error) {
		data, err := s.store.Get(ctx, key)
		if errors.Is(err, ErrObjectNotFound) {
			return nil, retry.Permanent(err)
		}
		return data, err
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertFtEvents stores fungible token events, skipping ones already present.
func (r *Repository) InsertFtEvents(ctx context.Context, events []model.FtEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_ft_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(events))
	for _, e := range events {
		var timestamp, shard int64
		if timestamp, err = safe.Int64(e.BlockTimestamp); err != nil {
			return fmt.Errorf("ft event %s/%d timestamp: %w", e.ReceiptID, e.EventIndex, err)
		}
		if shard, err = safe.Int64(e.ShardID); err != nil {
			return fmt.Errorf("ft event %s/%d shard: %w", e.ReceiptID, e.EventIndex, err)
		}
		rows = append(rows, []any{
			e.ReceiptID,
			e.EventIndex,
			timestamp,
			shard,
			e.ContractAccountID,
			e.AffectedAccountID,
			e.InvolvedAccountID,
			e.DeltaAmount,
			string(e.Cause),
			e.Memo,
		})
	}

	err = r.insertIgnore(ctx, ftEventsTable, rows)
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertExecutionOutcomes stores receipt outcomes, skipping ones already present.
func (r *Repository) InsertExecutionOutcomes(ctx context.Context, outcomes []model.ExecutionOutcomeRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_execution_outcomes", err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(outcomes))
	for _, o := range outcomes {
		var timestamp, gas, shard int64
		if timestamp, err = safe.Int64(o.ExecutedInBlockTimestamp); err != nil {
			return fmt.Errorf("outcome %s timestamp: %w", o.ReceiptID, err)
		}
		if gas, err = safe.Int64(o.GasBurnt); err != nil {
			return fmt.Errorf("outcome %s gas burnt: %w", o.ReceiptID, err)
		}
		if shard, err = safe.Int64(o.ShardID); err != nil {
			return fmt.Errorf("outcome %s shard: %w", o.ReceiptID, err)
		}
		rows = append(rows, []any{
			o.ReceiptID,
			o.ExecutedInBlockHash,
			timestamp,
			o.IndexInChunk,
			gas,
			o.TokensBurnt,
			o.ExecutorAccountID,
			string(o.Status),
			shard,
		})
	}

	err = r.insertIgnore(ctx, executionOutcomesTable, rows)
	return err
}

package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertExecutionOutcomes stores receipt outcomes in ClickHouse. Repeated rows collapse on merge.
func (r *Repository) InsertExecutionOutcomes(ctx context.Context, outcomes []model.ExecutionOutcomeRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_execution_outcomes", err, start)
	}()

	if len(outcomes) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_execution_outcomes (
	receipt_id,
	executed_in_block_hash,
	executed_in_block_timestamp,
	index_in_chunk,
	gas_burnt,
	tokens_burnt,
	executor_account_id,
	status,
	shard_id
) VALUES`

	rows := make([][]any, 0, len(outcomes))
	for _, o := range outcomes {
		rows = append(rows, []any{
			o.ReceiptID,
			o.ExecutedInBlockHash,
			o.ExecutedInBlockTimestamp,
			o.IndexInChunk,
			o.GasBurnt,
			o.TokensBurnt,
			o.ExecutorAccountID,
			string(o.Status),
			o.ShardID,
		})
	}

	err = r.insertBatch(ctx, "near_execution_outcomes", query, rows)
	return err
}

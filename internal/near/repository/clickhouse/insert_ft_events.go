package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertFtEvents stores fungible token events in ClickHouse. Repeated rows collapse on merge.
func (r *Repository) InsertFtEvents(ctx context.Context, events []model.FtEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_ft_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_ft_events (
	receipt_id,
	event_index,
	block_timestamp,
	shard_id,
	contract_account_id,
	affected_account_id,
	involved_account_id,
	delta_amount,
	cause,
	memo
) VALUES`

	rows := make([][]any, 0, len(events))
	for _, e := range events {
		rows = append(rows, []any{
			e.ReceiptID,
			e.EventIndex,
			e.BlockTimestamp,
			e.ShardID,
			e.ContractAccountID,
			e.AffectedAccountID,
			e.InvolvedAccountID,
			e.DeltaAmount,
			string(e.Cause),
			e.Memo,
		})
	}

	err = r.insertBatch(ctx, "near_ft_events", query, rows)
	return err
}

package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertActionReceiptOutputData stores output data links in ClickHouse.
func (r *Repository) InsertActionReceiptOutputData(ctx context.Context, outputs []model.ActionReceiptOutputData) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_action_receipt_output_data", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_action_receipt_output_data (
	output_data_id,
	output_from_receipt_id,
	receiver_account_id,
	receipt_included_in_block_timestamp
) VALUES`

	rows := make([][]any, 0, len(outputs))
	for _, o := range outputs {
		rows = append(rows, []any{
			o.OutputDataID,
			o.OutputFromReceiptID,
			o.ReceiverAccountID,
			o.ReceiptIncludedInBlockTimestamp,
		})
	}

	err = r.insertBatch(ctx, "near_action_receipt_output_data", query, rows)
	return err
}

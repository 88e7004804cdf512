package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertReceipts stores receipts in ClickHouse. Repeated rows collapse on merge.
func (r *Repository) InsertReceipts(ctx context.Context, receipts []model.ReceiptRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_receipts", err, start)
	}()

	if len(receipts) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_receipts (
	receipt_id,
	included_in_block_hash,
	included_in_chunk_hash,
	index_in_chunk,
	included_in_block_timestamp,
	predecessor_account_id,
	receiver_account_id,
	receipt_kind,
	originated_from_transaction_hash
) VALUES`

	rows := make([][]any, 0, len(receipts))
	for _, rc := range receipts {
		rows = append(rows, []any{
			rc.ReceiptID,
			rc.IncludedInBlockHash,
			rc.IncludedInChunkHash,
			rc.IndexInChunk,
			rc.IncludedInBlockTimestamp,
			rc.PredecessorAccountID,
			rc.ReceiverAccountID,
			string(rc.ReceiptKind),
			rc.OriginatedFromTransactionHash,
		})
	}

	err = r.insertBatch(ctx, "near_receipts", query, rows)
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertReceipts stores receipts, skipping ones already present.
func (r *Repository) InsertReceipts(ctx context.Context, receipts []model.ReceiptRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_receipts", err, start)
	}()

	if len(receipts) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(receipts))
	for _, rc := range receipts {
		var timestamp int64
		if timestamp, err = safe.Int64(rc.IncludedInBlockTimestamp); err != nil {
			return fmt.Errorf("receipt %s timestamp: %w", rc.ReceiptID, err)
		}
		rows = append(rows, []any{
			rc.ReceiptID,
			rc.IncludedInBlockHash,
			rc.IncludedInChunkHash,
			rc.IndexInChunk,
			timestamp,
			rc.PredecessorAccountID,
			rc.ReceiverAccountID,
			string(rc.ReceiptKind),
			rc.OriginatedFromTransactionHash,
		})
	}

	err = r.insertIgnore(ctx, receiptsTable, rows)
	return err
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertActionReceiptOutputData stores output data links, skipping ones already present.
func (r *Repository) InsertActionReceiptOutputData(ctx context.Context, outputs []model.ActionReceiptOutputData) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_action_receipt_output_data", err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(outputs))
	for _, o := range outputs {
		var timestamp int64
		if timestamp, err = safe.Int64(o.ReceiptIncludedInBlockTimestamp); err != nil {
			return fmt.Errorf("output data %s timestamp: %w", o.OutputDataID, err)
		}
		rows = append(rows, []any{
			o.OutputDataID,
			o.OutputFromReceiptID,
			o.ReceiverAccountID,
			timestamp,
		})
	}

	err = r.insertIgnore(ctx, actionReceiptOutputDataTable, rows)
	return err
}

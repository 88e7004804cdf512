package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertActionReceiptActions stores receipt actions, skipping ones already present.
func (r *Repository) InsertActionReceiptActions(ctx context.Context, actions []model.ActionReceiptAction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_action_receipt_actions", err, start)
	}()

	if len(actions) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(actions))
	for _, a := range actions {
		var timestamp int64
		if timestamp, err = safe.Int64(a.ReceiptIncludedInBlockTimestamp); err != nil {
			return fmt.Errorf("action %s/%d timestamp: %w", a.ReceiptID, a.IndexInActionReceipt, err)
		}
		rows = append(rows, []any{
			a.ReceiptID,
			a.IndexInActionReceipt,
			string(a.ActionKind),
			a.Args,
			a.ReceiptPredecessorAccountID,
			a.ReceiptReceiverAccountID,
			timestamp,
		})
	}

	err = r.insertIgnore(ctx, actionReceiptActionsTable, rows)
	return err
}

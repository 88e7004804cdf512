package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertActionReceiptActions stores receipt actions in ClickHouse. Repeated rows collapse on merge.
func (r *Repository) InsertActionReceiptActions(ctx context.Context, actions []model.ActionReceiptAction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_action_receipt_actions", err, start)
	}()

	if len(actions) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_action_receipt_actions (
	receipt_id,
	index_in_action_receipt,
	action_kind,
	args,
	receipt_predecessor_account_id,
	receipt_receiver_account_id,
	receipt_included_in_block_timestamp
) VALUES`

	rows := make([][]any, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []any{
			a.ReceiptID,
			a.IndexInActionReceipt,
			string(a.ActionKind),
			string(a.Args),
			a.ReceiptPredecessorAccountID,
			a.ReceiptReceiverAccountID,
			a.ReceiptIncludedInBlockTimestamp,
		})
	}

	err = r.insertBatch(ctx, "near_action_receipt_actions", query, rows)
	return err
}

package postgres

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertExecutionOutcomeReceipts stores outcome to produced receipt links.
func (r *Repository) InsertExecutionOutcomeReceipts(ctx context.Context, links []model.ExecutionOutcomeReceipt) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_execution_outcome_receipts", err, start)
	}()

	if len(links) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(links))
	for _, l := range links {
		rows = append(rows, []any{l.ExecutedReceiptID, l.IndexInExecutionOutcome, l.ProducedReceiptID})
	}

	err = r.insertIgnore(ctx, executionOutcomeReceiptsTable, rows)
	return err
}

// Package writer persists normalized block records with conflict-ignore
// inserts, retrying each table batch on its own.
package writer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/retry"
	"go.uber.org/zap"
)

type Writer struct {
	repo   Repository
	policy retry.Policy
	logger *zap.Logger
}

func New(repo Repository, policy retry.Policy, logger *zap.Logger) *Writer {
	return &Writer{repo: repo, policy: policy, logger: logger}
}

type tableWrite struct {
	table string
	rows  int
	write func(ctx context.Context) error
}

// WriteBlocks writes the records of blocks, one insert per table. Tables
// without rows are skipped. There is no transaction across tables: replaying
// the same blocks is safe because every insert ignores existing keys.
func (w *Writer) WriteBlocks(ctx context.Context, blocks []model.BlockRecords) error {
	var all model.BlockRecords
	for _, b := range blocks {
		all.Transactions = append(all.Transactions, b.Transactions...)
		all.Receipts = append(all.Receipts, b.Receipts...)
		all.Actions = append(all.Actions, b.Actions...)
		all.OutputData = append(all.OutputData, b.OutputData...)
		all.Outcomes = append(all.Outcomes, b.Outcomes...)
		all.OutcomeReceipts = append(all.OutcomeReceipts, b.OutcomeReceipts...)
		all.FtEvents = append(all.FtEvents, b.FtEvents...)
	}

	writes := []tableWrite{
		{"transactions", len(all.Transactions), func(ctx context.Context) error {
			return w.repo.InsertTransactions(ctx, all.Transactions)
		}},
		{"receipts", len(all.Receipts), func(ctx context.Context) error {
			return w.repo.InsertReceipts(ctx, all.Receipts)
		}},
		{"action_receipt_actions", len(all.Actions), func(ctx context.Context) error {
			return w.repo.InsertActionReceiptActions(ctx, all.Actions)
		}},
		{"action_receipt_output_data", len(all.OutputData), func(ctx context.Context) error {
			return w.repo.InsertActionReceiptOutputData(ctx, all.OutputData)
		}},
		{"execution_outcomes", len(all.Outcomes), func(ctx context.Context) error {
			return w.repo.InsertExecutionOutcomes(ctx, all.Outcomes)
		}},
		{"execution_outcome_receipts", len(all.OutcomeReceipts), func(ctx context.Context) error {
			return w.repo.InsertExecutionOutcomeReceipts(ctx, all.OutcomeReceipts)
		}},
		{"ft_events", len(all.FtEvents), func(ctx context.Context) error {
			return w.repo.InsertFtEvents(ctx, all.FtEvents)
		}},
	}

	for _, tw := range writes {
		if tw.rows == 0 {
			continue
		}
		if err := w.write(ctx, tw); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) write(ctx context.Context, tw tableWrite) error {
	started := time.Now()
	if err := retry.Do(ctx, w.policy, tw.write); err != nil {
		w.logger.Error("table write failed",
			zap.String("table", tw.table),
			zap.Int("rows", tw.rows),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return fmt.Errorf("%w: write %d rows to %s: %w", model.ErrStoreUnavailable, tw.rows, tw.table, err)
	}
	w.logger.Debug("table written", zap.String("table", tw.table), zap.Int("rows", tw.rows))
	return nil
}

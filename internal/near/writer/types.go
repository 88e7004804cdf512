package writer

import (
	"context"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Repository inserts rows, ignoring rows whose natural key already exists.
	Repository interface {
		InsertTransactions(ctx context.Context, txs []model.TransactionRecord) error
		InsertReceipts(ctx context.Context, receipts []model.ReceiptRecord) error
		InsertActionReceiptActions(ctx context.Context, actions []model.ActionReceiptAction) error
		InsertActionReceiptOutputData(ctx context.Context, outputs []model.ActionReceiptOutputData) error
		InsertExecutionOutcomes(ctx context.Context, outcomes []model.ExecutionOutcomeRecord) error
		InsertExecutionOutcomeReceipts(ctx context.Context, links []model.ExecutionOutcomeReceipt) error
		InsertFtEvents(ctx context.Context, events []model.FtEvent) error
	}
)

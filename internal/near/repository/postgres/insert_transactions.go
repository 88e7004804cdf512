package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

// InsertTransactions stores transactions, skipping ones already present.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(txs))
	for _, tx := range txs {
		var timestamp, nonce, gas int64
		if timestamp, err = safe.Int64(tx.BlockTimestamp); err != nil {
			return fmt.Errorf("transaction %s timestamp: %w", tx.TransactionHash, err)
		}
		if nonce, err = safe.Int64(tx.Nonce); err != nil {
			return fmt.Errorf("transaction %s nonce: %w", tx.TransactionHash, err)
		}
		if gas, err = safe.Int64(tx.ReceiptConversionGasBurnt); err != nil {
			return fmt.Errorf("transaction %s gas burnt: %w", tx.TransactionHash, err)
		}
		rows = append(rows, []any{
			tx.TransactionHash,
			tx.IncludedInBlockHash,
			tx.IncludedInChunkHash,
			tx.IndexInChunk,
			timestamp,
			tx.SignerAccountID,
			tx.SignerPublicKey,
			nonce,
			tx.ReceiverAccountID,
			tx.Signature,
			string(tx.Status),
			tx.ConvertedIntoReceiptID,
			gas,
			tx.ReceiptConversionTokensBurnt,
		})
	}

	err = r.insertIgnore(ctx, transactionsTable, rows)
	return err
}

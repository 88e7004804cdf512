package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// InsertTransactions stores transactions in ClickHouse. Repeated rows collapse on merge.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.TransactionRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO near_transactions (
	transaction_hash,
	included_in_block_hash,
	included_in_chunk_hash,
	index_in_chunk,
	block_timestamp,
	signer_account_id,
	signer_public_key,
	nonce,
	receiver_account_id,
	signature,
	status,
	converted_into_receipt_id,
	receipt_conversion_gas_burnt,
	receipt_conversion_tokens_burnt
) VALUES`

	rows := make([][]any, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, []any{
			tx.TransactionHash,
			tx.IncludedInBlockHash,
			tx.IncludedInChunkHash,
			tx.IndexInChunk,
			tx.BlockTimestamp,
			tx.SignerAccountID,
			tx.SignerPublicKey,
			tx.Nonce,
			tx.ReceiverAccountID,
			tx.Signature,
			string(tx.Status),
			tx.ConvertedIntoReceiptID,
			tx.ReceiptConversionGasBurnt,
			tx.ReceiptConversionTokensBurnt,
		})
	}

	err = r.insertBatch(ctx, "near_transactions", query, rows)
	return err
}

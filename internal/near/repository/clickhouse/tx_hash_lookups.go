package clickhouse

import (
	"context"
	"time"
)

// TxHashesByOutputDataIDs resolves data ids through the receipt that declared the output.
func (r *Repository) TxHashesByOutputDataIDs(ctx context.Context, ids []string) (map[string]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_hashes_by_output_data_ids", err, start)
	}()

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	const query = `
SELECT
	ard.output_data_id,
	any(r.originated_from_transaction_hash) AS transaction_hash
FROM near_action_receipt_output_data AS ard
INNER JOIN near_receipts AS r ON r.receipt_id = ard.output_from_receipt_id
WHERE ard.output_data_id IN ?
GROUP BY ard.output_data_id`

	result, err := r.lookupPairs(ctx, query, ids)
	return result, err
}

// TxHashesByProducedReceiptIDs resolves receipts through the outcome that produced them.
func (r *Repository) TxHashesByProducedReceiptIDs(ctx context.Context, ids []string) (map[string]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_hashes_by_produced_receipt_ids", err, start)
	}()

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	const query = `
SELECT
	eor.produced_receipt_id,
	any(r.originated_from_transaction_hash) AS transaction_hash
FROM near_execution_outcome_receipts AS eor
INNER JOIN near_receipts AS r ON r.receipt_id = eor.executed_receipt_id
WHERE eor.produced_receipt_id IN ?
GROUP BY eor.produced_receipt_id`

	result, err := r.lookupPairs(ctx, query, ids)
	return result, err
}

// TxHashesByConvertedReceiptIDs resolves the first receipt of each transaction.
func (r *Repository) TxHashesByConvertedReceiptIDs(ctx context.Context, ids []string) (map[string]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_hashes_by_converted_receipt_ids", err, start)
	}()

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	const query = `
SELECT
	converted_into_receipt_id,
	any(transaction_hash) AS transaction_hash
FROM near_transactions
WHERE converted_into_receipt_id IN ?
GROUP BY converted_into_receipt_id`

	result, err := r.lookupPairs(ctx, query, ids)
	return result, err
}

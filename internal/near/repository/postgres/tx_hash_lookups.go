package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
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

	result, err := r.lookupPairs(ctx, sq.
		Select("ard.output_data_id", "r.originated_from_transaction_hash").
		From("action_receipt_output_data ard").
		Join("receipts r ON r.receipt_id = ard.output_from_receipt_id").
		Where(sq.Eq{"ard.output_data_id": ids}))
	return result, err
}

// TxHashesByProducedReceiptIDs resolves receipts through the outcome of the receipt that produced them.
func (r *Repository) TxHashesByProducedReceiptIDs(ctx context.Context, ids []string) (map[string]string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("tx_hashes_by_produced_receipt_ids", err, start)
	}()

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	result, err := r.lookupPairs(ctx, sq.
		Select("eor.produced_receipt_id", "r.originated_from_transaction_hash").
		From("execution_outcome_receipts eor").
		Join("receipts r ON r.receipt_id = eor.executed_receipt_id").
		Where(sq.Eq{"eor.produced_receipt_id": ids}))
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

	result, err := r.lookupPairs(ctx, sq.
		Select("converted_into_receipt_id", "transaction_hash").
		From("transactions").
		Where(sq.Eq{"converted_into_receipt_id": ids}))
	return result, err
}

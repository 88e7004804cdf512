package postgres

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// maxBindParams is the PostgreSQL limit of bind parameters per statement.
const maxBindParams = 65535

type table struct {
	name     string
	columns  []string
	conflict []string
}

var (
	transactionsTable = table{
		name: "transactions",
		columns: []string{
			"transaction_hash", "included_in_block_hash", "included_in_chunk_hash", "index_in_chunk",
			"block_timestamp", "signer_account_id", "signer_public_key", "nonce", "receiver_account_id",
			"signature", "status", "converted_into_receipt_id", "receipt_conversion_gas_burnt",
			"receipt_conversion_tokens_burnt",
		},
		conflict: []string{"transaction_hash", "block_timestamp"},
	}
	receiptsTable = table{
		name: "receipts",
		columns: []string{
			"receipt_id", "included_in_block_hash", "included_in_chunk_hash", "index_in_chunk",
			"included_in_block_timestamp", "predecessor_account_id", "receiver_account_id", "receipt_kind",
			"originated_from_transaction_hash",
		},
		conflict: []string{"receipt_id", "included_in_block_timestamp"},
	}
	actionReceiptActionsTable = table{
		name: "action_receipt_actions",
		columns: []string{
			"receipt_id", "index_in_action_receipt", "action_kind", "args",
			"receipt_predecessor_account_id", "receipt_receiver_account_id", "receipt_included_in_block_timestamp",
		},
		conflict: []string{"receipt_id", "index_in_action_receipt", "receipt_included_in_block_timestamp"},
	}
	actionReceiptOutputDataTable = table{
		name: "action_receipt_output_data",
		columns: []string{
			"output_data_id", "output_from_receipt_id", "receiver_account_id", "receipt_included_in_block_timestamp",
		},
		conflict: []string{"output_data_id", "output_from_receipt_id", "receipt_included_in_block_timestamp"},
	}
	executionOutcomesTable = table{
		name: "execution_outcomes",
		columns: []string{
			"receipt_id", "executed_in_block_hash", "executed_in_block_timestamp", "index_in_chunk",
			"gas_burnt", "tokens_burnt", "executor_account_id", "status", "shard_id",
		},
		conflict: []string{"receipt_id", "executed_in_block_timestamp"},
	}
	executionOutcomeReceiptsTable = table{
		name:     "execution_outcome_receipts",
		columns:  []string{"executed_receipt_id", "index_in_execution_outcome", "produced_receipt_id"},
		conflict: []string{"executed_receipt_id", "index_in_execution_outcome", "produced_receipt_id"},
	}
	ftEventsTable = table{
		name: "ft_events",
		columns: []string{
			"receipt_id", "event_index", "block_timestamp", "shard_id", "contract_account_id",
			"affected_account_id", "involved_account_id", "delta_amount", "cause", "memo",
		},
		conflict: []string{"receipt_id", "event_index", "block_timestamp"},
	}
)

// insertIgnore inserts rows with ON CONFLICT DO NOTHING over the natural key.
// Rows are split so that no statement exceeds the bind parameter limit.
func (r *Repository) insertIgnore(ctx context.Context, t table, rows [][]any) error {
	perStatement := maxBindParams / len(t.columns)
	suffix := fmt.Sprintf("ON CONFLICT (%s) DO NOTHING", strings.Join(t.conflict, ", "))

	for start := 0; start < len(rows); start += perStatement {
		end := min(start+perStatement, len(rows))

		stmt := sq.Insert(t.name).
			Columns(t.columns...).
			Suffix(suffix).
			PlaceholderFormat(sq.Dollar)
		for _, row := range rows[start:end] {
			stmt = stmt.Values(row...)
		}

		query, args, err := stmt.ToSql()
		if err != nil {
			return fmt.Errorf("build %s insert: %w", t.name, err)
		}
		if _, err := r.db.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %d rows into %s: %w", end-start, t.name, err)
		}
	}
	return nil
}

// lookupPairs runs a two column select and returns the first column mapped to the second.
func (r *Repository) lookupPairs(ctx context.Context, stmt sq.SelectBuilder) (result map[string]string, err error) {
	query, args, err := stmt.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lookup: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query lookup: %w", err)
	}
	defer rows.Close()

	result = make(map[string]string)
	for rows.Next() {
		var id, hash string
		if err = rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		result[id] = hash
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookup: %w", err)
	}
	return result, nil
}

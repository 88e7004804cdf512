package ingester

import (
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
)

func transactionRecords(msg *model.StreamerMessage) ([]model.TransactionRecord, error) {
	header := msg.Block.Header
	var txs []model.TransactionRecord
	for _, shard := range msg.Shards {
		if shard.Chunk == nil {
			continue
		}
		for i, t := range shard.Chunk.Transactions {
			index, err := safe.Int32(i)
			if err != nil {
				return nil, fmt.Errorf("transaction %s index: %w", t.Transaction.Hash, err)
			}
			outcome := t.Outcome.ExecutionOutcome.Outcome

			var converted string
			if len(outcome.ReceiptIDs) > 0 {
				converted = outcome.ReceiptIDs[0]
			}
			txs = append(txs, model.TransactionRecord{
				TransactionHash:              t.Transaction.Hash,
				IncludedInBlockHash:          header.Hash,
				IncludedInChunkHash:          shard.Chunk.Header.ChunkHash,
				IndexInChunk:                 index,
				BlockTimestamp:               header.Timestamp,
				SignerAccountID:              t.Transaction.SignerID,
				SignerPublicKey:              t.Transaction.PublicKey,
				Nonce:                        t.Transaction.Nonce,
				ReceiverAccountID:            t.Transaction.ReceiverID,
				Signature:                    t.Transaction.Signature,
				Status:                       outcome.Status.Kind,
				ConvertedIntoReceiptID:       converted,
				ReceiptConversionGasBurnt:    outcome.GasBurnt,
				ReceiptConversionTokensBurnt: amountOrZero(outcome.TokensBurnt),
			})
		}
	}
	return txs, nil
}

func outcomeRecords(msg *model.StreamerMessage) ([]model.ExecutionOutcomeRecord, []model.ExecutionOutcomeReceipt, error) {
	header := msg.Block.Header
	var (
		outcomes []model.ExecutionOutcomeRecord
		links    []model.ExecutionOutcomeReceipt
	)
	for _, shard := range msg.Shards {
		for i, o := range shard.ReceiptExecutionOutcomes {
			index, err := safe.Int32(i)
			if err != nil {
				return nil, nil, fmt.Errorf("outcome %s index: %w", o.ExecutionOutcome.ID, err)
			}
			view := o.ExecutionOutcome.Outcome
			outcomes = append(outcomes, model.ExecutionOutcomeRecord{
				ReceiptID:                o.ExecutionOutcome.ID,
				ExecutedInBlockHash:      header.Hash,
				ExecutedInBlockTimestamp: header.Timestamp,
				IndexInChunk:             index,
				GasBurnt:                 view.GasBurnt,
				TokensBurnt:              amountOrZero(view.TokensBurnt),
				ExecutorAccountID:        view.ExecutorID,
				Status:                   view.Status.Kind,
				ShardID:                  shard.ShardID,
			})
			for j, produced := range view.ReceiptIDs {
				position, err := safe.Int32(j)
				if err != nil {
					return nil, nil, fmt.Errorf("outcome %s receipt index: %w", o.ExecutionOutcome.ID, err)
				}
				links = append(links, model.ExecutionOutcomeReceipt{
					ExecutedReceiptID:       o.ExecutionOutcome.ID,
					IndexInExecutionOutcome: position,
					ProducedReceiptID:       produced,
				})
			}
		}
	}
	return outcomes, links, nil
}

func amountOrZero(amount string) string {
	if amount == "" {
		return "0"
	}
	return amount
}

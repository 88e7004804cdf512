// Package normalizer turns chunk receipts into receipt, action and output data records.
package normalizer

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/workerpool"
)

type Normalizer struct {
	resolver    Resolver
	workerCount int
}

func New(resolver Resolver, workerCount int) *Normalizer {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Normalizer{resolver: resolver, workerCount: workerCount}
}

// NormalizeBlock normalizes every chunk of msg concurrently. The result holds
// one entry per shard that carried a chunk, in shard order.
func (n *Normalizer) NormalizeBlock(ctx context.Context, msg *model.StreamerMessage) ([]model.ChunkRecords, error) {
	chunks := make([]*model.Chunk, 0, len(msg.Shards))
	for _, shard := range msg.Shards {
		if shard.Chunk != nil {
			chunks = append(chunks, shard.Chunk)
		}
	}

	header := msg.Block.Header
	return workerpool.Map(ctx, n.workerCount, chunks, func(ctx context.Context, chunk *model.Chunk) (model.ChunkRecords, error) {
		return n.Normalize(ctx, chunk.Header.ChunkHash, header.Hash, header.Timestamp, chunk.Receipts)
	})
}

// Normalize resolves the originating transaction of every receipt with a
// single resolver call and emits the records of the chunk in input order.
// Any receipt without a transaction hash fails the whole chunk.
func (n *Normalizer) Normalize(ctx context.Context, chunkHash, blockHash string, blockTimestamp uint64, receipts []model.Receipt) (model.ChunkRecords, error) {
	var out model.ChunkRecords
	if len(receipts) == 0 {
		return out, nil
	}

	ids := make([]string, len(receipts))
	for i, r := range receipts {
		ids[i] = r.ResolutionID()
	}
	hashes, err := n.resolver.Resolve(ctx, ids)
	if err != nil {
		return out, fmt.Errorf("resolve transaction hashes of chunk %s: %w", chunkHash, err)
	}

	out.Receipts = make([]model.ReceiptRecord, 0, len(receipts))
	for i, r := range receipts {
		txHash := hashes[ids[i]]
		if txHash == "" {
			return model.ChunkRecords{}, &model.UnresolvedReferenceError{IDs: []string{ids[i]}}
		}
		index, err := safe.Int32(i)
		if err != nil {
			return model.ChunkRecords{}, fmt.Errorf("receipt %s index: %w", r.ReceiptID, err)
		}

		out.Receipts = append(out.Receipts, model.ReceiptRecord{
			ReceiptID:                     r.ReceiptID,
			IncludedInBlockHash:           blockHash,
			IncludedInChunkHash:           chunkHash,
			IndexInChunk:                  index,
			IncludedInBlockTimestamp:      blockTimestamp,
			PredecessorAccountID:          r.PredecessorID,
			ReceiverAccountID:             r.ReceiverID,
			ReceiptKind:                   r.Body.Kind,
			OriginatedFromTransactionHash: txHash,
		})

		if r.Body.Kind != model.ReceiptAction || r.Body.Action == nil {
			continue
		}
		if err := appendActionReceipt(&out, r, blockTimestamp); err != nil {
			return model.ChunkRecords{}, err
		}
	}
	return out, nil
}

func appendActionReceipt(out *model.ChunkRecords, r model.Receipt, blockTimestamp uint64) error {
	for _, receiver := range r.Body.Action.OutputDataReceivers {
		out.OutputData = append(out.OutputData, model.ActionReceiptOutputData{
			OutputDataID:                    receiver.DataID,
			OutputFromReceiptID:             r.ReceiptID,
			ReceiverAccountID:               receiver.ReceiverID,
			ReceiptIncludedInBlockTimestamp: blockTimestamp,
		})
	}

	for i, action := range r.Body.Action.Actions {
		index, err := safe.Int32(i)
		if err != nil {
			return fmt.Errorf("receipt %s action index: %w", r.ReceiptID, err)
		}
		kind, args, err := ActionArgs(action)
		if err != nil {
			return fmt.Errorf("receipt %s action %d: %w", r.ReceiptID, i, err)
		}
		out.Actions = append(out.Actions, model.ActionReceiptAction{
			ReceiptID:                       r.ReceiptID,
			IndexInActionReceipt:            index,
			ActionKind:                      kind,
			Args:                            args,
			ReceiptPredecessorAccountID:     r.PredecessorID,
			ReceiptReceiverAccountID:        r.ReceiverID,
			ReceiptIncludedInBlockTimestamp: blockTimestamp,
		})
	}
	return nil
}

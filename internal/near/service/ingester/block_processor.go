package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/clock"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"go.uber.org/zap"
)

type blockProcessor struct {
	normalizer Normalizer
	decoder    Decoder
	resolver   Resolver
	cache      Cache
	metrics    Metrics
	logger     *zap.Logger
}

// Process derives every record of msg. The local cache is seeded with the
// transaction of each receipt, data id and produced receipt seen in the block,
// so the next block resolves without waiting for this one to be written.
func (p *blockProcessor) Process(ctx context.Context, msg *model.StreamerMessage) (records model.BlockRecords, err error) {
	started := time.Now()
	header := msg.Block.Header
	defer func() {
		p.metrics.ObserveProcessBlock(err, clock.FromNanos(header.Timestamp), started)
	}()

	records = model.BlockRecords{
		Height:    header.Height,
		Hash:      header.Hash,
		Timestamp: header.Timestamp,
	}

	if records.Transactions, err = transactionRecords(msg); err != nil {
		return model.BlockRecords{}, err
	}
	for _, tx := range records.Transactions {
		p.cache.Seed(tx.ConvertedIntoReceiptID, tx.TransactionHash)
	}

	chunks, err := p.normalizer.NormalizeBlock(ctx, msg)
	if err != nil {
		return model.BlockRecords{}, fmt.Errorf("normalize: %w", err)
	}
	for _, chunk := range chunks {
		records.AppendChunk(chunk)
	}

	origins := make(map[string]string, len(records.Receipts))
	for _, r := range records.Receipts {
		origins[r.ReceiptID] = r.OriginatedFromTransactionHash
		p.cache.Seed(r.ReceiptID, r.OriginatedFromTransactionHash)
	}
	for _, o := range records.OutputData {
		p.cache.Seed(o.OutputDataID, origins[o.OutputFromReceiptID])
	}

	if records.Outcomes, records.OutcomeReceipts, err = outcomeRecords(msg); err != nil {
		return model.BlockRecords{}, err
	}
	if err = p.seedProducedReceipts(ctx, origins, records.OutcomeReceipts); err != nil {
		return model.BlockRecords{}, err
	}

	if records.FtEvents, err = p.decoder.DecodeBlock(ctx, msg); err != nil {
		return model.BlockRecords{}, fmt.Errorf("decode contract events: %w", err)
	}

	p.logger.Debug("block processed",
		zap.Uint64("height", header.Height),
		zap.Int("receipts", len(records.Receipts)),
		zap.Int("ft_events", len(records.FtEvents)),
	)
	return records, nil
}

// seedProducedReceipts maps receipts produced by this block's outcomes to the
// transaction of the receipt that produced them. Executed receipts included
// in earlier blocks are resolved first.
func (p *blockProcessor) seedProducedReceipts(ctx context.Context, origins map[string]string, links []model.ExecutionOutcomeReceipt) error {
	var missing []string
	for _, l := range links {
		if _, ok := origins[l.ExecutedReceiptID]; !ok {
			missing = append(missing, l.ExecutedReceiptID)
		}
	}

	if len(missing) > 0 {
		resolved, err := p.resolver.Resolve(ctx, missing)
		var unresolved *model.UnresolvedReferenceError
		switch {
		case errors.As(err, &unresolved):
			p.logger.Warn("executed receipts without known transaction", zap.Strings("receipt_ids", unresolved.IDs))
		case err != nil:
			return fmt.Errorf("resolve executed receipts: %w", err)
		}
		for id, hash := range resolved {
			origins[id] = hash
		}
	}

	for _, l := range links {
		if hash := origins[l.ExecutedReceiptID]; hash != "" {
			p.cache.Seed(l.ProducedReceiptID, hash)
		}
	}
	return nil
}

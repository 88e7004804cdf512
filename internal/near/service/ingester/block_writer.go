package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/batcher"
	"go.uber.org/zap"
)

// blockWriter batches consecutive blocks and advances the cursor after each
// successful flush.
type blockWriter struct {
	writer       Writer
	cursors      CursorStore
	cursorName   string
	metrics      Metrics
	logger       *zap.Logger
	blockBatcher *batcher.Batcher[model.BlockRecords]
}

func newBlockWriter(
	writer Writer,
	cursors CursorStore,
	cursorName string,
	metrics Metrics,
	logger *zap.Logger,
	flushSize int,
	flushInterval time.Duration,
	rate int,
) *blockWriter {
	w := &blockWriter{
		writer:     writer,
		cursors:    cursors,
		cursorName: cursorName,
		metrics:    metrics,
		logger:     logger,
	}

	w.blockBatcher = batcher.New[model.BlockRecords](
		logger.Named("blockBatcher"),
		w.flush,
		flushSize,
		flushInterval,
		rate,
	)
	return w
}

func (w *blockWriter) Start(ctx context.Context) {
	w.blockBatcher.Start(ctx)
}

func (w *blockWriter) Stop() error {
	return w.blockBatcher.Stop()
}

func (w *blockWriter) WriteBlock(ctx context.Context, b model.BlockRecords) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.blockBatcher.Add(ctx, b)
}

func (w *blockWriter) flush(ctx context.Context, blocks []model.BlockRecords) error {
	started := time.Now()
	err := w.writer.WriteBlocks(ctx, blocks)
	w.metrics.ObserveFlush(err, len(blocks), started)
	if err != nil {
		return err
	}

	last := blocks[len(blocks)-1].Height
	if err := w.cursors.SaveCursor(ctx, w.cursorName, last); err != nil {
		return fmt.Errorf("save cursor at %d: %w", last, err)
	}
	w.metrics.SetCursor(last)
	w.logger.Info("blocks written",
		zap.Uint64("from", blocks[0].Height),
		zap.Uint64("to", last),
		zap.Int("blocks", len(blocks)),
	)
	return nil
}

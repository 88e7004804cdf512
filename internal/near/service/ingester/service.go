// Package ingester drives the NEAR indexing pipeline: stream, normalize,
// decode, write and advance the cursor.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/clock"
	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Config struct {
	CursorName string
	// StartHeight is used only when no cursor has been saved yet.
	StartHeight uint64
	// EndHeight stops the service once it is written. Zero follows the chain.
	EndHeight     uint64
	FlushSize     int
	FlushInterval time.Duration
	FlushRate     int
}

// Service indexes blocks from the cursor onwards and restarts from the
// persisted cursor after any failure.
type Service struct {
	logger         *zap.Logger
	metrics        Metrics
	source         StreamSource
	cursors        CursorStore
	cursorName     string
	startHeight    uint64
	endHeight      uint64
	sleep          func(context.Context, time.Duration) error
	sleepDuration  time.Duration
	blockProcessor BlockProcessor
	newBlockWriter func() BlockWriter
}

func NewService(
	cfg Config,
	source StreamSource,
	normalizer Normalizer,
	decoder Decoder,
	resolver Resolver,
	cache Cache,
	writer Writer,
	cursors CursorStore,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if cfg.CursorName == "" {
		return nil, errors.New("cursor name is required")
	}
	if metrics == nil {
		return nil, errors.New("ingester metrics is required")
	}
	if cfg.EndHeight != 0 && cfg.EndHeight < cfg.StartHeight {
		return nil, fmt.Errorf("end height %d is below start height %d", cfg.EndHeight, cfg.StartHeight)
	}
	if cfg.FlushSize <= 0 {
		cfg.FlushSize = blockBatcherCapacity
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = blockBatcherFlushInterval
	}
	if cfg.FlushRate <= 0 {
		cfg.FlushRate = blockBatcherRate
	}

	logger = logger.With(zap.String("cursor", cfg.CursorName))
	return &Service{
		logger:        logger,
		metrics:       metrics,
		source:        source,
		cursors:       cursors,
		cursorName:    cfg.CursorName,
		startHeight:   cfg.StartHeight,
		endHeight:     cfg.EndHeight,
		sleep:         clock.SleepWithContext,
		sleepDuration: sleepDuration,
		blockProcessor: &blockProcessor{
			normalizer: normalizer,
			decoder:    decoder,
			resolver:   resolver,
			cache:      cache,
			metrics:    metrics,
			logger:     logger.Named("blockProcessor"),
		},
		newBlockWriter: func() BlockWriter {
			return newBlockWriter(writer, cursors, cfg.CursorName, metrics, logger.Named("blockWriter"),
				cfg.FlushSize, cfg.FlushInterval, cfg.FlushRate)
		},
	}, nil
}

// Run indexes until ctx is canceled or, with an end height, until that
// height has been written.
func (s *Service) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err := s.run(ctx)
		if err == nil {
			s.logger.Info("end height reached", zap.Uint64("end_height", s.endHeight))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
		if sleepErr := s.sleep(ctx, s.sleepDuration); sleepErr != nil {
			return sleepErr
		}
	}
}

// run streams from the resume height once. It returns nil only when the end
// height has been written.
func (s *Service) run(ctx context.Context) error {
	from, err := s.resumeHeight(ctx)
	if err != nil {
		return err
	}
	if s.endHeight != 0 && from > s.endHeight {
		return nil
	}
	s.logger.Info("streaming blocks", zap.Uint64("from", from), zap.Uint64("to", s.endHeight))

	g, gctx := errgroup.WithContext(ctx)
	msgs := make(chan *model.StreamerMessage, streamBufferSize)

	g.Go(func() error {
		defer close(msgs)
		if err := s.source.Stream(gctx, from, s.endHeight, msgs); err != nil {
			return fmt.Errorf("stream from %d: %w", from, err)
		}
		return nil
	})

	g.Go(func() error {
		w := s.newBlockWriter()
		w.Start(gctx)
		for msg := range msgs {
			records, err := s.blockProcessor.Process(gctx, msg)
			if err != nil {
				_ = w.Stop()
				return fmt.Errorf("process block %d: %w", msg.Block.Header.Height, err)
			}
			if err := w.WriteBlock(gctx, records); err != nil {
				_ = w.Stop()
				return fmt.Errorf("queue block %d: %w", records.Height, err)
			}
		}
		if err := w.Stop(); err != nil {
			return fmt.Errorf("flush blocks: %w", err)
		}
		return gctx.Err()
	})

	return g.Wait()
}

func (s *Service) resumeHeight(ctx context.Context) (uint64, error) {
	height, ok, err := s.cursors.Cursor(ctx, s.cursorName)
	if err != nil {
		return 0, fmt.Errorf("load cursor %s: %w", s.cursorName, err)
	}
	if !ok {
		return s.startHeight, nil
	}
	s.metrics.SetCursor(height)
	return height + 1, nil
}

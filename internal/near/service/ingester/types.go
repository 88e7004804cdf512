package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StreamSource delivers blocks in increasing height order. It must not close out.
	StreamSource interface {
		Stream(ctx context.Context, from, to uint64, out chan<- *model.StreamerMessage) error
	}
	Normalizer interface {
		NormalizeBlock(ctx context.Context, msg *model.StreamerMessage) ([]model.ChunkRecords, error)
	}
	Decoder interface {
		DecodeBlock(ctx context.Context, msg *model.StreamerMessage) ([]model.FtEvent, error)
	}
	Resolver interface {
		Resolve(ctx context.Context, ids []string) (map[string]string, error)
	}
	Cache interface {
		Seed(id, txHash string)
	}
	Writer interface {
		WriteBlocks(ctx context.Context, blocks []model.BlockRecords) error
	}
	CursorStore interface {
		Cursor(ctx context.Context, name string) (uint64, bool, error)
		SaveCursor(ctx context.Context, name string, height uint64) error
	}
	Metrics interface {
		ObserveProcessBlock(err error, blockTime time.Time, started time.Time)
		ObserveFlush(err error, blocks int, started time.Time)
		SetCursor(height uint64)
	}

	BlockProcessor interface {
		Process(ctx context.Context, msg *model.StreamerMessage) (model.BlockRecords, error)
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop() error
		WriteBlock(ctx context.Context, b model.BlockRecords) error
	}
)

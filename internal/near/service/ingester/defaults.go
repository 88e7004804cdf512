package ingester

import "time"

const (
	sleepDuration = 5 * time.Second

	streamBufferSize = 16

	blockBatcherCapacity      = 50
	blockBatcherFlushInterval = 2 * time.Second
	blockBatcherRate          = 20
)

package contracts

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/safe"
	"github.com/goodnatureofminers/nearinsight-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// Runner applies registered decoders to the executed receipts of a block.
// Decoder failures are logged and skipped; they never fail the block.
type Runner struct {
	registry    *Registry
	workerCount int
	metrics     Metrics
	logger      *zap.Logger
}

func NewRunner(registry *Registry, workerCount int, metrics Metrics, logger *zap.Logger) *Runner {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Runner{
		registry:    registry,
		workerCount: workerCount,
		metrics:     metrics,
		logger:      logger,
	}
}

type shardOutcome struct {
	shardID uint64
	outcome *model.ExecutionOutcomeWithReceipt
}

// DecodeBlock decodes all receipt outcomes of msg concurrently and returns the
// events in shard and outcome order.
func (r *Runner) DecodeBlock(ctx context.Context, msg *model.StreamerMessage) ([]model.FtEvent, error) {
	var work []shardOutcome
	for si := range msg.Shards {
		shard := &msg.Shards[si]
		for oi := range shard.ReceiptExecutionOutcomes {
			outcome := &shard.ReceiptExecutionOutcomes[oi]
			if _, ok := r.registry.Lookup(outcome.Receipt.ReceiverID); ok {
				work = append(work, shardOutcome{shardID: shard.ShardID, outcome: outcome})
			}
		}
	}
	if len(work) == 0 {
		return nil, nil
	}

	timestamp := msg.Block.Header.Timestamp
	perOutcome, err := workerpool.Map(ctx, r.workerCount, work, func(_ context.Context, w shardOutcome) ([]model.FtEvent, error) {
		return r.Decode(w.shardID, timestamp, *w.outcome), nil
	})
	if err != nil {
		return nil, err
	}

	var events []model.FtEvent
	for _, e := range perOutcome {
		events = append(events, e...)
	}
	return events, nil
}

// Decode runs the decoder of the receipt receiver once per function call
// action, only for successfully executed action receipts. Event indexes are
// sequential within the receipt.
func (r *Runner) Decode(shardID, blockTimestamp uint64, outcome model.ExecutionOutcomeWithReceipt) []model.FtEvent {
	receipt := outcome.Receipt
	if receipt.Body.Kind != model.ReceiptAction || receipt.Body.Action == nil {
		return nil
	}
	if !outcome.ExecutionOutcome.Outcome.Status.IsSuccess() {
		return nil
	}
	decode, ok := r.registry.Lookup(receipt.ReceiverID)
	if !ok {
		return nil
	}

	logs := outcome.ExecutionOutcome.Outcome.Logs
	var events []model.FtEvent
	for i, action := range receipt.Body.Action.Actions {
		if action.Kind != model.ActionFunctionCall || action.FunctionCall == nil {
			continue
		}
		call := *action.FunctionCall

		drafts, err := safeDecode(decode, call, receipt.PredecessorID, logs)
		r.observe(receipt.ReceiverID, call.MethodName, len(drafts), err)
		if err != nil {
			r.logger.Warn("contract event decode failed", zap.Error(&model.DecodeError{
				ReceiptID:   receipt.ReceiptID,
				ActionIndex: i,
				Contract:    receipt.ReceiverID,
				Method:      call.MethodName,
				Err:         err,
			}))
			continue
		}

		for _, d := range drafts {
			index, err := safe.Int32(len(events))
			if err != nil {
				r.logger.Error("too many events in receipt", zap.String("receipt_id", receipt.ReceiptID), zap.Error(err))
				return events
			}
			events = append(events, model.FtEvent{
				ReceiptID:         receipt.ReceiptID,
				EventIndex:        index,
				BlockTimestamp:    blockTimestamp,
				ShardID:           shardID,
				ContractAccountID: receipt.ReceiverID,
				AffectedAccountID: d.AffectedAccountID,
				InvolvedAccountID: d.InvolvedAccountID,
				DeltaAmount:       d.DeltaAmount,
				Cause:             d.Cause,
				Memo:              d.Memo,
			})
		}
	}
	return events
}

func safeDecode(decode DecodeFunc, call model.FunctionCallAction, predecessor string, logs []string) (drafts []model.FtEventDraft, err error) {
	defer func() {
		if p := recover(); p != nil {
			drafts, err = nil, fmt.Errorf("decoder panic: %v", p)
		}
	}()
	return decode(call, predecessor, logs)
}

func (r *Runner) observe(contract, method string, events int, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.ObserveDecode(contract, method, events, err)
}

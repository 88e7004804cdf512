package model

import "encoding/json"

// Receipt row of the receipts table.
type ReceiptRecord struct {
	ReceiptID                     string
	IncludedInBlockHash           string
	IncludedInChunkHash           string
	IndexInChunk                  int32
	IncludedInBlockTimestamp      uint64
	PredecessorAccountID          string
	ReceiverAccountID             string
	ReceiptKind                   ReceiptKind
	OriginatedFromTransactionHash string
}

type ActionReceiptAction struct {
	ReceiptID                       string
	IndexInActionReceipt            int32
	ActionKind                      ActionKind
	Args                            json.RawMessage
	ReceiptPredecessorAccountID     string
	ReceiptReceiverAccountID        string
	ReceiptIncludedInBlockTimestamp uint64
}

type ActionReceiptOutputData struct {
	OutputDataID                    string
	OutputFromReceiptID             string
	ReceiverAccountID               string
	ReceiptIncludedInBlockTimestamp uint64
}

type TransactionRecord struct {
	TransactionHash              string
	IncludedInBlockHash          string
	IncludedInChunkHash          string
	IndexInChunk                 int32
	BlockTimestamp               uint64
	SignerAccountID              string
	SignerPublicKey              string
	Nonce                        uint64
	ReceiverAccountID            string
	Signature                    string
	Status                       ExecutionStatusKind
	ConvertedIntoReceiptID       string
	ReceiptConversionGasBurnt    uint64
	ReceiptConversionTokensBurnt string
}

type ExecutionOutcomeRecord struct {
	ReceiptID                string
	ExecutedInBlockHash      string
	ExecutedInBlockTimestamp uint64
	IndexInChunk             int32
	GasBurnt                 uint64
	TokensBurnt              string
	ExecutorAccountID        string
	Status                   ExecutionStatusKind
	ShardID                  uint64
}

type ExecutionOutcomeReceipt struct {
	ExecutedReceiptID       string
	IndexInExecutionOutcome int32
	ProducedReceiptID       string
}

// ChunkRecords is the normalized output of one chunk.
type ChunkRecords struct {
	Receipts   []ReceiptRecord
	Actions    []ActionReceiptAction
	OutputData []ActionReceiptOutputData
}

// BlockRecords groups every record derived from one block for a single write.
type BlockRecords struct {
	Height          uint64
	Hash            string
	Timestamp       uint64
	Transactions    []TransactionRecord
	Receipts        []ReceiptRecord
	Actions         []ActionReceiptAction
	OutputData      []ActionReceiptOutputData
	Outcomes        []ExecutionOutcomeRecord
	OutcomeReceipts []ExecutionOutcomeReceipt
	FtEvents        []FtEvent
}

// AppendChunk concatenates a chunk's records after the ones already collected.
func (b *BlockRecords) AppendChunk(c ChunkRecords) {
	b.Receipts = append(b.Receipts, c.Receipts...)
	b.Actions = append(b.Actions, c.Actions...)
	b.OutputData = append(b.OutputData, c.OutputData...)
}

// Package model holds stream message shapes and stored record types for the NEAR indexer.
package model

// StreamerMessage is one block together with the payloads of all its shards.
type StreamerMessage struct {
	Block  Block   `json:"block"`
	Shards []Shard `json:"shards"`
}

type Block struct {
	Author string        `json:"author"`
	Header BlockHeader   `json:"header"`
	Chunks []ChunkHeader `json:"chunks"`
}

type BlockHeader struct {
	Height    uint64 `json:"height"`
	Hash      string `json:"hash"`
	PrevHash  string `json:"prev_hash"`
	Timestamp uint64 `json:"timestamp"`
}

type ChunkHeader struct {
	ChunkHash string `json:"chunk_hash"`
	ShardID   uint64 `json:"shard_id"`
}

type Shard struct {
	ShardID                  uint64                        `json:"shard_id"`
	Chunk                    *Chunk                        `json:"chunk"`
	ReceiptExecutionOutcomes []ExecutionOutcomeWithReceipt `json:"receipt_execution_outcomes"`
}

type Chunk struct {
	Author       string                   `json:"author"`
	Header       ChunkHeader              `json:"header"`
	Transactions []TransactionWithOutcome `json:"transactions"`
	Receipts     []Receipt                `json:"receipts"`
}

type TransactionWithOutcome struct {
	Transaction SignedTransaction                   `json:"transaction"`
	Outcome     ExecutionOutcomeWithOptionalReceipt `json:"outcome"`
}

type SignedTransaction struct {
	SignerID   string   `json:"signer_id"`
	PublicKey  string   `json:"public_key"`
	Nonce      uint64   `json:"nonce"`
	ReceiverID string   `json:"receiver_id"`
	Actions    []Action `json:"actions"`
	Signature  string   `json:"signature"`
	Hash       string   `json:"hash"`
}

type ExecutionOutcomeWithOptionalReceipt struct {
	ExecutionOutcome ExecutionOutcomeWithID `json:"execution_outcome"`
	Receipt          *Receipt               `json:"receipt"`
}

// ExecutionOutcomeWithReceipt is the outcome of a receipt executed in the block.
type ExecutionOutcomeWithReceipt struct {
	ExecutionOutcome ExecutionOutcomeWithID `json:"execution_outcome"`
	Receipt          Receipt                `json:"receipt"`
}

type ExecutionOutcomeWithID struct {
	ID        string               `json:"id"`
	BlockHash string               `json:"block_hash"`
	Outcome   ExecutionOutcomeView `json:"outcome"`
}

type ExecutionOutcomeView struct {
	Logs        []string        `json:"logs"`
	ReceiptIDs  []string        `json:"receipt_ids"`
	GasBurnt    uint64          `json:"gas_burnt"`
	TokensBurnt string          `json:"tokens_burnt"`
	ExecutorID  string          `json:"executor_id"`
	Status      ExecutionStatus `json:"status"`
}

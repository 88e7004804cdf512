package model

type FtEventCause string

const (
	FtCauseTransfer FtEventCause = "TRANSFER"
	FtCauseRefund   FtEventCause = "REFUND"
	FtCauseMint     FtEventCause = "MINT"
	FtCauseBurn     FtEventCause = "BURN"
)

// FtEventDraft is a decoder result before it is bound to a receipt.
type FtEventDraft struct {
	AffectedAccountID string
	InvolvedAccountID string
	DeltaAmount       string
	Cause             FtEventCause
	Memo              string
}

// FtEvent is a fungible token balance change row.
type FtEvent struct {
	ReceiptID         string
	EventIndex        int32
	BlockTimestamp    uint64
	ShardID           uint64
	ContractAccountID string
	AffectedAccountID string
	InvolvedAccountID string
	DeltaAmount       string
	Cause             FtEventCause
	Memo              string
}

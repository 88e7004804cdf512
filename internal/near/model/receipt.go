package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type ReceiptKind string

const (
	ReceiptAction  ReceiptKind = "ACTION"
	ReceiptData    ReceiptKind = "DATA"
	ReceiptUnknown ReceiptKind = "UNKNOWN"
)

type Receipt struct {
	ReceiptID     string      `json:"receipt_id"`
	PredecessorID string      `json:"predecessor_id"`
	ReceiverID    string      `json:"receiver_id"`
	Body          ReceiptBody `json:"receipt"`
}

// ResolutionID is the identifier whose originating transaction is looked up:
// the data id for Data receipts, the receipt id otherwise.
func (r Receipt) ResolutionID() string {
	if r.Body.Kind == ReceiptData && r.Body.Data != nil {
		return r.Body.Data.DataID
	}
	return r.ReceiptID
}

// ReceiptBody is a tagged union of Action and Data receipt payloads.
type ReceiptBody struct {
	Kind   ReceiptKind
	Action *ActionReceipt
	Data   *DataReceipt
	Raw    json.RawMessage
}

type ActionReceipt struct {
	SignerID            string               `json:"signer_id"`
	SignerPublicKey     string               `json:"signer_public_key"`
	GasPrice            string               `json:"gas_price"`
	OutputDataReceivers []OutputDataReceiver `json:"output_data_receivers"`
	InputDataIDs        []string             `json:"input_data_ids"`
	Actions             []Action             `json:"actions"`
}

type OutputDataReceiver struct {
	DataID     string `json:"data_id"`
	ReceiverID string `json:"receiver_id"`
}

type DataReceipt struct {
	DataID string  `json:"data_id"`
	Data   *string `json:"data"`
}

func (b *ReceiptBody) UnmarshalJSON(data []byte) error {
	*b = ReceiptBody{Kind: ReceiptUnknown, Raw: append(json.RawMessage(nil), data...)}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("receipt body: %w", err)
	}
	if raw, ok := obj["Action"]; ok {
		var action ActionReceipt
		if err := json.Unmarshal(raw, &action); err != nil {
			return fmt.Errorf("action receipt: %w", err)
		}
		b.Kind = ReceiptAction
		b.Action = &action
		return nil
	}
	if raw, ok := obj["Data"]; ok {
		var d DataReceipt
		if err := json.Unmarshal(raw, &d); err != nil {
			return fmt.Errorf("data receipt: %w", err)
		}
		b.Kind = ReceiptData
		b.Data = &d
	}
	return nil
}

type ExecutionStatusKind string

const (
	StatusSuccessValue     ExecutionStatusKind = "SUCCESS_VALUE"
	StatusSuccessReceiptID ExecutionStatusKind = "SUCCESS_RECEIPT_ID"
	StatusFailure          ExecutionStatusKind = "FAILURE"
	StatusUnknown          ExecutionStatusKind = "UNKNOWN"
)

type ExecutionStatus struct {
	Kind             ExecutionStatusKind
	SuccessValue     string
	SuccessReceiptID string
	Failure          json.RawMessage
}

func (s ExecutionStatus) IsSuccess() bool {
	return s.Kind == StatusSuccessValue || s.Kind == StatusSuccessReceiptID
}

func (s *ExecutionStatus) UnmarshalJSON(data []byte) error {
	*s = ExecutionStatus{Kind: StatusUnknown}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("execution status: %w", err)
	}
	switch {
	case obj["SuccessValue"] != nil:
		s.Kind = StatusSuccessValue
		if err := json.Unmarshal(obj["SuccessValue"], &s.SuccessValue); err != nil {
			return fmt.Errorf("success value: %w", err)
		}
	case obj["SuccessReceiptId"] != nil:
		s.Kind = StatusSuccessReceiptID
		if err := json.Unmarshal(obj["SuccessReceiptId"], &s.SuccessReceiptID); err != nil {
			return fmt.Errorf("success receipt id: %w", err)
		}
	case obj["Failure"] != nil:
		s.Kind = StatusFailure
		s.Failure = append(json.RawMessage(nil), obj["Failure"]...)
	}
	return nil
}

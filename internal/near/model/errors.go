package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrStoreUnavailable marks store failures that outlived the retry policy.
var ErrStoreUnavailable = errors.New("store unavailable")

// UnresolvedReferenceError lists identifiers with no originating transaction.
type UnresolvedReferenceError struct {
	IDs []string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved transaction hash for %d ids: %s", len(e.IDs), strings.Join(e.IDs, ","))
}

// DecodeError is a failed contract event decode for a single action.
type DecodeError struct {
	ReceiptID   string
	ActionIndex int
	Contract    string
	Method      string
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s.%s in receipt %s action %d: %v", e.Contract, e.Method, e.ReceiptID, e.ActionIndex, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Package contracts runs per-contract event decoders over executed receipts.
package contracts

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

// DecodeFunc extracts balance changes from one function call. It must not do
// I/O. logs are all logs of the receipt the call belongs to.
type DecodeFunc func(call model.FunctionCallAction, predecessor string, logs []string) ([]model.FtEventDraft, error)

type Entry struct {
	AccountID string
	Decode    DecodeFunc
}

// Registry maps a contract account to its decoder. It is built once and only
// read afterwards, so lookups need no locking.
type Registry struct {
	decoders map[string]DecodeFunc
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	decoders := make(map[string]DecodeFunc, len(entries))
	for _, e := range entries {
		if e.AccountID == "" {
			return nil, errors.New("decoder account id is empty")
		}
		if e.Decode == nil {
			return nil, fmt.Errorf("decoder for %s is nil", e.AccountID)
		}
		if _, dup := decoders[e.AccountID]; dup {
			return nil, fmt.Errorf("duplicate decoder for %s", e.AccountID)
		}
		decoders[e.AccountID] = e.Decode
	}
	return &Registry{decoders: decoders}, nil
}

func (r *Registry) Lookup(accountID string) (DecodeFunc, bool) {
	decode, ok := r.decoders[accountID]
	return decode, ok
}

func (r *Registry) Len() int {
	return len(r.decoders)
}

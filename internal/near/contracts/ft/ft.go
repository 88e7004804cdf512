// Package ft decodes NEP-141 fungible token balance changes from function calls.
package ft

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
	"github.com/shopspring/decimal"
)

const (
	MethodTransfer        = "ft_transfer"
	MethodTransferCall    = "ft_transfer_call"
	MethodResolveTransfer = "ft_resolve_transfer"
	MethodNearDeposit     = "near_deposit"
	MethodNearWithdraw    = "near_withdraw"
)

type transferArgs struct {
	ReceiverID string  `json:"receiver_id"`
	Amount     string  `json:"amount"`
	Memo       *string `json:"memo"`
	Msg        *string `json:"msg"`
}

// Decode returns the balance changes one function call caused on a token
// contract. Transfers are read from call arguments, refunds and supply
// changes from the receipt logs. Methods that move no tokens yield nothing.
func Decode(call model.FunctionCallAction, predecessor string, logs []string) ([]model.FtEventDraft, error) {
	switch call.MethodName {
	case MethodTransfer, MethodTransferCall:
		return decodeTransfer(call, predecessor)
	case MethodResolveTransfer:
		return fromLogs(logs, eventTransfer, eventBurn)
	case MethodNearDeposit:
		return fromLogs(logs, eventMint)
	case MethodNearWithdraw:
		return fromLogs(logs, eventBurn)
	default:
		return nil, nil
	}
}

func decodeTransfer(call model.FunctionCallAction, sender string) ([]model.FtEventDraft, error) {
	raw, err := call.DecodedArgs()
	if err != nil {
		return nil, fmt.Errorf("decode %s args: %w", call.MethodName, err)
	}
	var args transferArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("parse %s args: %w", call.MethodName, err)
	}
	if args.ReceiverID == "" {
		return nil, errors.New("receiver_id is empty")
	}

	// ft_transfer_call forwards msg to the receiver; it is kept when no memo is given.
	memo := args.Memo
	if memo == nil {
		memo = args.Msg
	}
	return transferPair(sender, args.ReceiverID, args.Amount, model.FtCauseTransfer, deref(memo))
}

// transferPair records a movement as a debit of from and a credit of to.
func transferPair(from, to, amount string, cause model.FtEventCause, memo string) ([]model.FtEventDraft, error) {
	if err := checkAccounts(from, to); err != nil {
		return nil, err
	}
	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	memo = cleanMemo(memo)
	return []model.FtEventDraft{
		{
			AffectedAccountID: from,
			InvolvedAccountID: to,
			DeltaAmount:       value.Neg().String(),
			Cause:             cause,
			Memo:              memo,
		},
		{
			AffectedAccountID: to,
			InvolvedAccountID: from,
			DeltaAmount:       value.String(),
			Cause:             cause,
			Memo:              memo,
		},
	}, nil
}

func supplyChange(owner, amount string, cause model.FtEventCause, memo string) ([]model.FtEventDraft, error) {
	if err := checkAccounts(owner); err != nil {
		return nil, err
	}
	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}
	memo = cleanMemo(memo)
	if cause == model.FtCauseBurn {
		value = value.Neg()
	}
	return []model.FtEventDraft{{
		AffectedAccountID: owner,
		DeltaAmount:       value.String(),
		Cause:             cause,
		Memo:              memo,
	}}, nil
}

// parseAmount accepts a non-negative integer amount of any size.
func parseAmount(amount string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", amount, err)
	}
	if value.IsNegative() || !value.IsInteger() {
		return decimal.Decimal{}, fmt.Errorf("amount %q is not a non-negative integer", amount)
	}
	return value, nil
}

// cleanMemo drops NUL characters, which text columns reject.
func cleanMemo(memo string) string {
	return strings.ReplaceAll(memo, "\x00", "")
}

func checkAccounts(ids ...string) error {
	for _, id := range ids {
		if strings.ContainsRune(id, 0) {
			return fmt.Errorf("account id %q contains NUL", id)
		}
	}
	return nil
}

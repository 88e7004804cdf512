package normalizer

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goodnatureofminers/nearinsight-indexer/internal/near/model"
)

type functionCallArgs struct {
	MethodName string          `json:"method_name"`
	ArgsBase64 string          `json:"args_base64"`
	ArgsJSON   json.RawMessage `json:"args_json,omitempty"`
	Gas        uint64          `json:"gas"`
	Deposit    string          `json:"deposit"`
}

type deployContractArgs struct {
	CodeSHA256 string `json:"code_sha256"`
}

type transferArgs struct {
	Deposit string `json:"deposit"`
}

type stakeArgs struct {
	Stake     string `json:"stake"`
	PublicKey string `json:"public_key"`
}

type addKeyArgs struct {
	PublicKey string        `json:"public_key"`
	AccessKey accessKeyArgs `json:"access_key"`
}

type accessKeyArgs struct {
	Nonce      uint64         `json:"nonce"`
	Permission permissionArgs `json:"permission"`
}

type permissionArgs struct {
	Kind    model.PermissionKind          `json:"permission_kind"`
	Details *model.FunctionCallPermission `json:"permission_details,omitempty"`
}

type deleteKeyArgs struct {
	PublicKey string `json:"public_key"`
}

type deleteAccountArgs struct {
	BeneficiaryID string `json:"beneficiary_id"`
}

type delegateArgs struct {
	SenderID       string            `json:"sender_id"`
	ReceiverID     string            `json:"receiver_id"`
	Nonce          uint64            `json:"nonce"`
	MaxBlockHeight uint64            `json:"max_block_height"`
	PublicKey      string            `json:"public_key"`
	Signature      string            `json:"signature"`
	Actions        []delegatedAction `json:"actions"`
}

type delegatedAction struct {
	ActionKind model.ActionKind `json:"action_kind"`
	Args       json.RawMessage  `json:"args"`
}

var emptyArgs = json.RawMessage(`{}`)

// ActionArgs returns the stored kind tag and the canonical JSON arguments of
// an action. Variants without a recognized payload are tagged UNKNOWN and keep
// their raw JSON.
func ActionArgs(a model.Action) (model.ActionKind, json.RawMessage, error) {
	var v any
	switch {
	case a.Kind == model.ActionCreateAccount:
		return model.ActionCreateAccount, emptyArgs, nil
	case a.Kind == model.ActionFunctionCall && a.FunctionCall != nil:
		v = functionCall(*a.FunctionCall)
	case a.Kind == model.ActionDeployContract && a.DeployContract != nil:
		v = deployContractArgs{CodeSHA256: codeHash(a.DeployContract.Code)}
	case a.Kind == model.ActionTransfer && a.Transfer != nil:
		v = transferArgs{Deposit: a.Transfer.Deposit}
	case a.Kind == model.ActionStake && a.Stake != nil:
		v = stakeArgs{Stake: a.Stake.Stake, PublicKey: a.Stake.PublicKey}
	case a.Kind == model.ActionAddKey && a.AddKey != nil:
		v = addKeyArgs{
			PublicKey: a.AddKey.PublicKey,
			AccessKey: accessKeyArgs{
				Nonce: a.AddKey.AccessKey.Nonce,
				Permission: permissionArgs{
					Kind:    a.AddKey.AccessKey.Permission.Kind,
					Details: a.AddKey.AccessKey.Permission.FunctionCall,
				},
			},
		}
	case a.Kind == model.ActionDeleteKey && a.DeleteKey != nil:
		v = deleteKeyArgs{PublicKey: a.DeleteKey.PublicKey}
	case a.Kind == model.ActionDeleteAccount && a.DeleteAccount != nil:
		v = deleteAccountArgs{BeneficiaryID: a.DeleteAccount.BeneficiaryID}
	case a.Kind == model.ActionDelegate && a.Delegate != nil:
		args, err := delegate(*a.Delegate)
		if err != nil {
			return "", nil, err
		}
		v = args
	default:
		return model.ActionUnknown, unknownArgs(a.Raw), nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	return a.Kind, raw, nil
}

func functionCall(fc model.FunctionCallAction) functionCallArgs {
	args := functionCallArgs{
		MethodName: fc.MethodName,
		ArgsBase64: fc.Args,
		Gas:        fc.Gas,
		Deposit:    fc.Deposit,
	}
	if decoded, err := fc.DecodedArgs(); err == nil && storableJSON(decoded) {
		args.ArgsJSON = decoded
	}
	return args
}

// storableJSON reports whether raw is a JSON document the stores accept as
// text: valid UTF-8 with no NUL character in any key or string value.
func storableJSON(raw []byte) bool {
	if len(raw) == 0 || !utf8.Valid(raw) || !json.Valid(raw) {
		return false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return true
		}
		if err != nil {
			return false
		}
		if s, ok := tok.(string); ok && strings.ContainsRune(s, 0) {
			return false
		}
	}
}

func delegate(d model.DelegateAction) (delegateArgs, error) {
	p := d.DelegateAction
	args := delegateArgs{
		SenderID:       p.SenderID,
		ReceiverID:     p.ReceiverID,
		Nonce:          p.Nonce,
		MaxBlockHeight: p.MaxBlockHeight,
		PublicKey:      p.PublicKey,
		Signature:      d.Signature,
		Actions:        make([]delegatedAction, 0, len(p.Actions)),
	}
	for _, inner := range p.Actions {
		kind, raw, err := ActionArgs(inner)
		if err != nil {
			return delegateArgs{}, err
		}
		args.Actions = append(args.Actions, delegatedAction{ActionKind: kind, Args: raw})
	}
	return args, nil
}

// codeHash is the hex sha256 of the deployed wasm. Code that is not valid
// base64 is hashed as given.
func codeHash(code string) string {
	wasm, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		wasm = []byte(code)
	}
	sum := sha256.Sum256(wasm)
	return hex.EncodeToString(sum[:])
}

func unknownArgs(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || !json.Valid(raw) {
		return emptyArgs
	}
	return raw
}

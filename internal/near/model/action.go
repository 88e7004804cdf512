package model

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

type ActionKind string

const (
	ActionCreateAccount  ActionKind = "CREATE_ACCOUNT"
	ActionDeployContract ActionKind = "DEPLOY_CONTRACT"
	ActionFunctionCall   ActionKind = "FUNCTION_CALL"
	ActionTransfer       ActionKind = "TRANSFER"
	ActionStake          ActionKind = "STAKE"
	ActionAddKey         ActionKind = "ADD_KEY"
	ActionDeleteKey      ActionKind = "DELETE_KEY"
	ActionDeleteAccount  ActionKind = "DELETE_ACCOUNT"
	ActionDelegate       ActionKind = "DELEGATE_ACTION"
	ActionUnknown        ActionKind = "UNKNOWN"
)

// Action is a tagged union over the protocol action variants. Exactly one payload
// pointer matching Kind is set; CreateAccount has no payload and Unknown keeps Raw.
type Action struct {
	Kind           ActionKind
	DeployContract *DeployContractAction
	FunctionCall   *FunctionCallAction
	Transfer       *TransferAction
	Stake          *StakeAction
	AddKey         *AddKeyAction
	DeleteKey      *DeleteKeyAction
	DeleteAccount  *DeleteAccountAction
	Delegate       *DelegateAction
	Raw            json.RawMessage
}

type DeployContractAction struct {
	Code string `json:"code"`
}

type FunctionCallAction struct {
	MethodName string `json:"method_name"`
	Args       string `json:"args"`
	Gas        uint64 `json:"gas"`
	Deposit    string `json:"deposit"`
}

// DecodedArgs returns the base64-decoded call arguments.
func (a FunctionCallAction) DecodedArgs() ([]byte, error) {
	return base64.StdEncoding.DecodeString(a.Args)
}

type TransferAction struct {
	Deposit string `json:"deposit"`
}

type StakeAction struct {
	Stake     string `json:"stake"`
	PublicKey string `json:"public_key"`
}

type AddKeyAction struct {
	PublicKey string    `json:"public_key"`
	AccessKey AccessKey `json:"access_key"`
}

type AccessKey struct {
	Nonce      uint64              `json:"nonce"`
	Permission AccessKeyPermission `json:"permission"`
}

type PermissionKind string

const (
	PermissionFullAccess   PermissionKind = "FULL_ACCESS"
	PermissionFunctionCall PermissionKind = "FUNCTION_CALL"
	PermissionUnknown      PermissionKind = "UNKNOWN"
)

// AccessKeyPermission is either the "FullAccess" string or a FunctionCall object.
type AccessKeyPermission struct {
	Kind         PermissionKind
	FunctionCall *FunctionCallPermission
	Raw          json.RawMessage
}

type FunctionCallPermission struct {
	Allowance   *string  `json:"allowance"`
	ReceiverID  string   `json:"receiver_id"`
	MethodNames []string `json:"method_names"`
}

func (p *AccessKeyPermission) UnmarshalJSON(data []byte) error {
	*p = AccessKeyPermission{Kind: PermissionUnknown, Raw: append(json.RawMessage(nil), data...)}

	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name == "FullAccess" {
			p.Kind = PermissionFullAccess
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("access key permission: %w", err)
	}
	if raw, ok := obj["FunctionCall"]; ok && len(obj) == 1 {
		var fc FunctionCallPermission
		if err := json.Unmarshal(raw, &fc); err != nil {
			return fmt.Errorf("function call permission: %w", err)
		}
		p.Kind = PermissionFunctionCall
		p.FunctionCall = &fc
	}
	return nil
}

type DeleteKeyAction struct {
	PublicKey string `json:"public_key"`
}

type DeleteAccountAction struct {
	BeneficiaryID string `json:"beneficiary_id"`
}

type DelegateAction struct {
	DelegateAction DelegatePayload `json:"delegate_action"`
	Signature      string          `json:"signature"`
}

type DelegatePayload struct {
	SenderID       string   `json:"sender_id"`
	ReceiverID     string   `json:"receiver_id"`
	Actions        []Action `json:"actions"`
	Nonce          uint64   `json:"nonce"`
	MaxBlockHeight uint64   `json:"max_block_height"`
	PublicKey      string   `json:"public_key"`
}

// UnmarshalJSON decodes either a bare variant name ("CreateAccount") or a
// single-key object naming the variant. Anything else becomes ActionUnknown.
func (a *Action) UnmarshalJSON(data []byte) error {
	*a = Action{Kind: ActionUnknown, Raw: append(json.RawMessage(nil), data...)}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return fmt.Errorf("action name: %w", err)
		}
		if name == "CreateAccount" {
			a.Kind = ActionCreateAccount
		}
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("action: %w", err)
	}
	if len(obj) != 1 {
		return nil
	}

	for name, raw := range obj {
		var err error
		switch name {
		case "CreateAccount":
			a.Kind = ActionCreateAccount
		case "DeployContract":
			a.DeployContract = &DeployContractAction{}
			err = decodeVariant(raw, a.DeployContract, a, ActionDeployContract)
		case "FunctionCall":
			a.FunctionCall = &FunctionCallAction{}
			err = decodeVariant(raw, a.FunctionCall, a, ActionFunctionCall)
		case "Transfer":
			a.Transfer = &TransferAction{}
			err = decodeVariant(raw, a.Transfer, a, ActionTransfer)
		case "Stake":
			a.Stake = &StakeAction{}
			err = decodeVariant(raw, a.Stake, a, ActionStake)
		case "AddKey":
			a.AddKey = &AddKeyAction{}
			err = decodeVariant(raw, a.AddKey, a, ActionAddKey)
		case "DeleteKey":
			a.DeleteKey = &DeleteKeyAction{}
			err = decodeVariant(raw, a.DeleteKey, a, ActionDeleteKey)
		case "DeleteAccount":
			a.DeleteAccount = &DeleteAccountAction{}
			err = decodeVariant(raw, a.DeleteAccount, a, ActionDeleteAccount)
		case "Delegate":
			a.Delegate = &DelegateAction{}
			err = decodeVariant(raw, a.Delegate, a, ActionDelegate)
		}
		if err != nil {
			return fmt.Errorf("action %s: %w", name, err)
		}
	}
	return nil
}

func decodeVariant(raw json.RawMessage, dst any, a *Action, kind ActionKind) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return err
	}
	a.Kind = kind
	return nil
}

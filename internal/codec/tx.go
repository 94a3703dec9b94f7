package codec

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"onchainarcade/x/arcade/types"
)

// Host-level transaction types. Everything else is routed to the arcade.
const (
	TypeBankMint = "bank/mint"
	TypeBankSend = "bank/send"
)

// TxEnvelope is the transaction container delivered to the host.
//
// Sender and Funds are the authenticated caller and the coins it attaches; they
// are copied onto the decoded message and never read from Value.
type TxEnvelope struct {
	Type   string          `json:"type"`
	Sender string          `json:"sender,omitempty"`
	Funds  sdk.Coins       `json:"funds,omitempty"`
	Value  json.RawMessage `json:"value,omitempty"`

	// Nonce lets clients keep otherwise identical tx bytes unique. Ignored.
	Nonce string `json:"nonce,omitempty"`
}

// Msg is any decoded host or arcade message.
type Msg interface {
	MsgType() string
	GetSender() string
	ValidateBasic() error
}

func DecodeTxEnvelope(txBytes []byte) (TxEnvelope, error) {
	var env TxEnvelope
	if err := json.Unmarshal(txBytes, &env); err != nil {
		return TxEnvelope{}, sdkerrors.ErrTxDecode.Wrapf("invalid tx json: %v", err)
	}
	if env.Type == "" {
		return TxEnvelope{}, sdkerrors.ErrTxDecode.Wrap("missing tx.type")
	}
	if len(env.Funds) > 0 {
		if err := env.Funds.Validate(); err != nil {
			return TxEnvelope{}, sdkerrors.ErrInvalidCoins.Wrapf("tx.funds: %v", err)
		}
	}
	return env, nil
}

// DecodeMsg decodes env.Value into the message registered for env.Type and
// stamps it with the envelope's sender (and funds, for arcade/play).
func DecodeMsg(env TxEnvelope) (Msg, error) {
	if len(env.Funds) > 0 && env.Type != types.TypeMsgPlay {
		return nil, sdkerrors.ErrInvalidRequest.Wrapf("%s does not accept funds", env.Type)
	}

	var msg Msg
	switch env.Type {
	case TypeBankMint:
		m := &BankMintTx{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case TypeBankSend:
		m := &BankSendTx{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case types.TypeMsgInstantiate:
		m := &types.MsgInstantiate{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case types.TypeMsgAddAdmins:
		m := &types.MsgAddAdmins{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case types.TypeMsgLeave:
		msg = &types.MsgLeave{Sender: env.Sender}
	case types.TypeMsgUpdatePrice:
		m := &types.MsgUpdatePrice{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case types.TypeMsgAddTopUser:
		m := &types.MsgAddTopUser{}
		if err := unmarshalValue(env, m); err != nil {
			return nil, err
		}
		m.Sender = env.Sender
		msg = m
	case types.TypeMsgPlay:
		msg = &types.MsgPlay{Sender: env.Sender, Funds: env.Funds}
	default:
		return nil, sdkerrors.ErrUnknownRequest.Wrapf("unknown tx type %q", env.Type)
	}
	return msg, nil
}

func unmarshalValue(env TxEnvelope, dst any) error {
	if len(env.Value) == 0 {
		return sdkerrors.ErrTxDecode.Wrapf("missing %s value", env.Type)
	}
	if err := json.Unmarshal(env.Value, dst); err != nil {
		return sdkerrors.ErrTxDecode.Wrapf("bad %s value: %v", env.Type, err)
	}
	return nil
}

// ---- Bank ----

// BankMintTx credits fresh coins to an account. Localnet faucet; any sender.
type BankMintTx struct {
	Sender string      `json:"-"`
	To     string      `json:"to"`
	Amount sdkmath.Int `json:"amount"`
	Denom  string      `json:"denom"`
}

func (m *BankMintTx) MsgType() string   { return TypeBankMint }
func (m *BankMintTx) GetSender() string { return m.Sender }

func (m *BankMintTx) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid to %q: %v", m.To, err)
	}
	_, err := m.Coins()
	return err
}

func (m *BankMintTx) Coins() (sdk.Coins, error) {
	return positiveCoins(m.Denom, m.Amount)
}

// BankSendTx moves coins from the envelope sender to To.
type BankSendTx struct {
	Sender string      `json:"-"`
	To     string      `json:"to"`
	Amount sdkmath.Int `json:"amount"`
	Denom  string      `json:"denom"`
}

func (m *BankSendTx) MsgType() string   { return TypeBankSend }
func (m *BankSendTx) GetSender() string { return m.Sender }

func (m *BankSendTx) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender %q: %v", m.Sender, err)
	}
	if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid to %q: %v", m.To, err)
	}
	_, err := m.Coins()
	return err
}

func (m *BankSendTx) Coins() (sdk.Coins, error) {
	return positiveCoins(m.Denom, m.Amount)
}

func positiveCoins(denom string, amount sdkmath.Int) (sdk.Coins, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return nil, sdkerrors.ErrInvalidCoins.Wrap(err.Error())
	}
	if amount.IsNil() || !amount.IsPositive() {
		return nil, sdkerrors.ErrInvalidCoins.Wrapf("amount must be positive, got %s", amount)
	}
	return sdk.NewCoins(sdk.NewCoin(denom, amount)), nil
}

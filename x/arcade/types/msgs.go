package types

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgInstantiate = "arcade/instantiate"
	TypeMsgAddAdmins   = "arcade/add_admins"
	TypeMsgLeave       = "arcade/leave"
	TypeMsgUpdatePrice = "arcade/update_price"
	TypeMsgAddTopUser  = "arcade/add_top_user"
	TypeMsgPlay        = "arcade/play"
)

// Msg is a decoded arcade command. Sender and funds are filled in by the host
// from the authenticated envelope, never from the message body.
type Msg interface {
	MsgType() string
	GetSender() string
	ValidateBasic() error
}

// MsgServer is the arcade command surface.
type MsgServer interface {
	Instantiate(ctx context.Context, req *MsgInstantiate) (*Response, error)
	AddAdmins(ctx context.Context, req *MsgAddAdmins) (*Response, error)
	Leave(ctx context.Context, req *MsgLeave) (*Response, error)
	UpdatePrice(ctx context.Context, req *MsgUpdatePrice) (*Response, error)
	AddTopUser(ctx context.Context, req *MsgAddTopUser) (*Response, error)
	Play(ctx context.Context, req *MsgPlay) (*Response, error)
}

var (
	_ Msg = &MsgInstantiate{}
	_ Msg = &MsgAddAdmins{}
	_ Msg = &MsgLeave{}
	_ Msg = &MsgUpdatePrice{}
	_ Msg = &MsgAddTopUser{}
	_ Msg = &MsgPlay{}
)

type MsgInstantiate struct {
	Sender       string      `json:"-"`
	Arcade       string      `json:"arcade"`
	Admins       []string    `json:"admins"`
	Denom        string      `json:"denom"`
	PricePerPlay sdkmath.Int `json:"pricePerPlay"`
	MaxTopScores uint32      `json:"maxTopScores"`
}

func (m *MsgInstantiate) MsgType() string   { return TypeMsgInstantiate }
func (m *MsgInstantiate) GetSender() string { return m.Sender }

func (m *MsgInstantiate) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if m.Arcade == "" {
		return ErrValidation.Wrap("missing arcade name")
	}
	if err := sdk.ValidateDenom(m.Denom); err != nil {
		return ErrValidation.Wrapf("invalid denom: %v", err)
	}
	if err := ValidateAddresses(m.Admins); err != nil {
		return err
	}
	if err := validateAmount(m.PricePerPlay, "price_per_play"); err != nil {
		return err
	}
	if m.MaxTopScores == 0 {
		return ErrValidation.Wrap("max_top_scores must be > 0")
	}
	return nil
}

type MsgAddAdmins struct {
	Sender string   `json:"-"`
	Admins []string `json:"admins"`
}

func (m *MsgAddAdmins) MsgType() string   { return TypeMsgAddAdmins }
func (m *MsgAddAdmins) GetSender() string { return m.Sender }

// ValidateBasic checks only the sender; the admin ids are validated by the
// keeper once the sender is known to be an admin.
func (m *MsgAddAdmins) ValidateBasic() error {
	return validateSender(m.Sender)
}

type MsgLeave struct {
	Sender string `json:"-"`
}

func (m *MsgLeave) MsgType() string      { return TypeMsgLeave }
func (m *MsgLeave) GetSender() string    { return m.Sender }
func (m *MsgLeave) ValidateBasic() error { return validateSender(m.Sender) }

type MsgUpdatePrice struct {
	Sender string      `json:"-"`
	Price  sdkmath.Int `json:"price"`
}

func (m *MsgUpdatePrice) MsgType() string   { return TypeMsgUpdatePrice }
func (m *MsgUpdatePrice) GetSender() string { return m.Sender }

func (m *MsgUpdatePrice) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	return validateAmount(m.Price, "price")
}

type MsgAddTopUser struct {
	Sender string           `json:"-"`
	Entry  LeaderboardEntry `json:"entry"`
}

func (m *MsgAddTopUser) MsgType() string   { return TypeMsgAddTopUser }
func (m *MsgAddTopUser) GetSender() string { return m.Sender }

// ValidateBasic checks only the sender; the entry is validated by the keeper
// behind the admin gate.
func (m *MsgAddTopUser) ValidateBasic() error {
	return validateSender(m.Sender)
}

type MsgPlay struct {
	Sender string    `json:"-"`
	Funds  sdk.Coins `json:"-"`
}

func (m *MsgPlay) MsgType() string   { return TypeMsgPlay }
func (m *MsgPlay) GetSender() string { return m.Sender }

func (m *MsgPlay) ValidateBasic() error {
	if err := validateSender(m.Sender); err != nil {
		return err
	}
	if len(m.Funds) == 0 {
		return nil
	}
	if err := m.Funds.Validate(); err != nil {
		return ErrValidation.Wrapf("invalid funds: %v", err)
	}
	return nil
}

// ValidateAddresses checks every entry is a bech32 account address.
func ValidateAddresses(addrs []string) error {
	for _, a := range addrs {
		if _, err := sdk.AccAddressFromBech32(a); err != nil {
			return ErrValidation.Wrapf("invalid address %q: %v", a, err)
		}
	}
	return nil
}

func validateSender(sender string) error {
	if sender == "" {
		return ErrValidation.Wrap("missing sender")
	}
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errorsmod.Wrapf(ErrValidation, "invalid sender %q: %v", sender, err)
	}
	return nil
}

func validateAmount(v sdkmath.Int, field string) error {
	if v.IsNil() {
		return ErrValidation.Wrapf("missing %s", field)
	}
	if v.IsNegative() {
		return ErrValidation.Wrapf("%s must not be negative", field)
	}
	return nil
}

package keeper

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/types"
)

type msgServer struct {
	Keeper
}

var _ types.MsgServer = msgServer{}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

func (m msgServer) Instantiate(ctx context.Context, req *types.MsgInstantiate) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := m.InitArcade(ctx, req); err != nil {
		return nil, err
	}

	resp := types.NewResponse().AddEvent(types.EventTypeInstantiated,
		sdk.NewAttribute(types.AttributeKeyAction, "instantiate"),
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyArcade, req.Arcade),
		sdk.NewAttribute(types.AttributeKeyDenom, req.Denom),
		sdk.NewAttribute(types.AttributeKeyPrice, req.PricePerPlay.String()),
		sdk.NewAttribute(types.AttributeKeyAdmins, strings.Join(req.Admins, ",")),
	)
	return resp, nil
}

func (m msgServer) AddAdmins(ctx context.Context, req *types.MsgAddAdmins) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	added, err := m.Keeper.AddAdmins(ctx, req.Sender, req.Admins)
	if err != nil {
		return nil, err
	}

	resp := types.NewResponse().AddEvent(types.EventTypeAdminsAdded,
		sdk.NewAttribute(types.AttributeKeyAction, "add_admins"),
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyAdmins, strings.Join(added, ",")),
	)
	return resp, nil
}

func (m msgServer) Leave(ctx context.Context, req *types.MsgLeave) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	removed, remaining, err := m.RemoveAdmin(ctx, req.Sender)
	if err != nil {
		return nil, err
	}

	resp := types.NewResponse()
	if removed {
		resp.AddEvent(types.EventTypeAdminLeft,
			sdk.NewAttribute(types.AttributeKeyAction, "leave"),
			sdk.NewAttribute(types.AttributeKeyAdmin, req.Sender),
			sdk.NewAttribute(types.AttributeKeyRemainingAdmins, fmt.Sprintf("%d", remaining)),
		)
	}
	return resp, nil
}

func (m msgServer) UpdatePrice(ctx context.Context, req *types.MsgUpdatePrice) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	if err := m.Keeper.UpdatePrice(ctx, req.Sender, req.Price); err != nil {
		return nil, err
	}

	resp := types.NewResponse().AddEvent(types.EventTypePriceUpdated,
		sdk.NewAttribute(types.AttributeKeyAction, "update_price"),
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyPrice, req.Price.String()),
	)
	return resp, nil
}

func (m msgServer) AddTopUser(ctx context.Context, req *types.MsgAddTopUser) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	outcome, transfer, err := m.SubmitScore(ctx, req.Sender, req.Entry)
	if err != nil {
		return nil, err
	}

	resp := types.NewResponse()
	if !outcome.Accepted {
		resp.AddEvent(types.EventTypeScoreRejected,
			sdk.NewAttribute(types.AttributeKeyAction, "add_top_user"),
			sdk.NewAttribute(types.AttributeKeyAccount, req.Entry.Account),
			sdk.NewAttribute(types.AttributeKeyScore, fmt.Sprintf("%d", req.Entry.Score)),
		)
		return resp, nil
	}

	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyAction, "add_top_user"),
		sdk.NewAttribute(types.AttributeKeyName, req.Entry.Name),
		sdk.NewAttribute(types.AttributeKeyAccount, req.Entry.Account),
		sdk.NewAttribute(types.AttributeKeyScore, fmt.Sprintf("%d", req.Entry.Score)),
	}
	if outcome.Evicted != nil {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyEvicted, outcome.Evicted.Account))
	}
	resp.AddEvent(types.EventTypeTopUserAdded, attrs...)

	if transfer != nil {
		resp.AddTransfers(*transfer)
		resp.AddEvent(types.EventTypePrizeDistributed,
			sdk.NewAttribute(types.AttributeKeyAction, "send_coins"),
			sdk.NewAttribute(types.AttributeKeyBeneficiary, transfer.ToAddress),
			sdk.NewAttribute(types.AttributeKeyAmount, transfer.Amount.String()),
		)
	}
	return resp, nil
}

// Play returns a refund transfer together with the error when the payment is
// rejected, so the host can hand the funds back.
func (m msgServer) Play(ctx context.Context, req *types.MsgPlay) (*types.Response, error) {
	if req == nil {
		return nil, types.ErrInvalidRequest.Wrap("nil request")
	}
	if err := req.ValidateBasic(); err != nil {
		return nil, err
	}
	outcome, err := m.Keeper.Play(ctx, req.Sender, req.Funds)
	if err != nil {
		if outcome.Refund == nil {
			return nil, err
		}
		resp := types.NewResponse().AddTransfers(*outcome.Refund).AddEvent(types.EventTypePaymentRefunded,
			sdk.NewAttribute(types.AttributeKeyAction, "refund"),
			sdk.NewAttribute(types.AttributeKeySender, req.Sender),
			sdk.NewAttribute(types.AttributeKeyAmount, outcome.Refund.Amount.String()),
		)
		return resp, err
	}

	resp := types.NewResponse().AddTransfers(outcome.Transfers...).AddEvent(types.EventTypePlayed,
		sdk.NewAttribute(types.AttributeKeyAction, "play"),
		sdk.NewAttribute(types.AttributeKeySender, req.Sender),
		sdk.NewAttribute(types.AttributeKeyReceivedTokens, outcome.Received.String()),
		sdk.NewAttribute(types.AttributeKeyGameCounter, fmt.Sprintf("%d", outcome.GameCounter)),
		sdk.NewAttribute(types.AttributeKeyShare, outcome.Share.String()),
		sdk.NewAttribute(types.AttributeKeyRetained, outcome.Retained.String()),
	)
	return resp, nil
}

// Package arcade wires the arcade keeper to the host: NewHandler routes decoded
// commands and NewQuerier routes read paths.
package arcade

import (
	"context"

	"onchainarcade/x/arcade/types"
)

// Handler executes one decoded arcade command.
type Handler func(ctx context.Context, msg types.Msg) (*types.Response, error)

func NewHandler(ms types.MsgServer) Handler {
	return func(ctx context.Context, msg types.Msg) (*types.Response, error) {
		switch msg := msg.(type) {
		case *types.MsgInstantiate:
			return ms.Instantiate(ctx, msg)
		case *types.MsgAddAdmins:
			return ms.AddAdmins(ctx, msg)
		case *types.MsgLeave:
			return ms.Leave(ctx, msg)
		case *types.MsgUpdatePrice:
			return ms.UpdatePrice(ctx, msg)
		case *types.MsgAddTopUser:
			return ms.AddTopUser(ctx, msg)
		case *types.MsgPlay:
			return ms.Play(ctx, msg)
		default:
			return nil, types.ErrInvalidRequest.Wrapf("unrecognized arcade message type: %T", msg)
		}
	}
}

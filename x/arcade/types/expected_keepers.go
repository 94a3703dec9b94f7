package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the balance oracle the arcade reads its prize pool from.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// TransferSink settles transfers emitted by the arcade. The method set matches
// x/bank so a real bank keeper can be plugged in by the host.
type TransferSink interface {
	SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error
}

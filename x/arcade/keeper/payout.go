package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/types"
)

// PrizePool is the arcade account's current balance in the arcade denom.
func (k Keeper) PrizePool(ctx context.Context) (sdk.Coin, error) {
	denom, err := k.GetDenom(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}
	bal := k.bankKeeper.GetBalance(ctx, k.arcadeAddr, denom)
	if bal.Amount.IsNil() {
		return sdk.NewInt64Coin(denom, 0), nil
	}
	return bal, nil
}

// DistributeTo pays the whole prize pool to beneficiary. An empty pool is a no-op
// and returns a nil transfer. total_distributed is recorded when the transfer is
// emitted, not when it settles.
func (k Keeper) DistributeTo(ctx context.Context, beneficiary string) (*types.Transfer, error) {
	addr, err := sdk.AccAddressFromBech32(beneficiary)
	if err != nil {
		return nil, types.ErrValidation.Wrapf("invalid beneficiary %q: %v", beneficiary, err)
	}
	if addr.Equals(k.arcadeAddr) {
		return nil, types.ErrValidation.Wrap("arcade account cannot receive its own prize pool")
	}
	pool, err := k.PrizePool(ctx)
	if err != nil {
		return nil, err
	}
	if !pool.IsPositive() {
		return nil, nil
	}

	total, err := k.GetTotalDistributed(ctx)
	if err != nil {
		return nil, err
	}
	if err := k.TotalDistributed.Set(ctx, total.Add(pool.Amount)); err != nil {
		return nil, storageErr("save total distributed", err)
	}

	k.Logger().Info("prize distributed", "beneficiary", beneficiary, "amount", pool.String())
	return &types.Transfer{
		ToAddress: beneficiary,
		Amount:    sdk.NewCoins(pool),
	}, nil
}

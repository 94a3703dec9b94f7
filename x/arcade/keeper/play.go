package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/types"
)

// PlayOutcome describes a play. On a rejected play only Refund is set.
type PlayOutcome struct {
	GameCounter uint32
	Received    sdk.Coin
	// Share is what each admin receives; Retained is the arcade's share plus the
	// division remainder.
	Share     sdkmath.Int
	Retained  sdkmath.Int
	Transfers []types.Transfer

	Refund *types.Transfer
}

// Play charges payer for one game. funds must already sit in the arcade account.
//
// The payment is split evenly across the admins and the arcade account; the
// remainder of the integer division stays with the arcade. A payment below the
// price is rejected with ErrInsufficientPayment and the outcome carries a refund of
// everything attached.
func (k Keeper) Play(ctx context.Context, payer string, funds sdk.Coins) (PlayOutcome, error) {
	payerAddr, err := sdk.AccAddressFromBech32(payer)
	if err != nil {
		return PlayOutcome{}, types.ErrValidation.Wrapf("invalid payer %q: %v", payer, err)
	}
	if payerAddr.Equals(k.arcadeAddr) {
		return PlayOutcome{}, types.ErrInvalidRequest.Wrap("arcade account cannot play")
	}

	denom, err := k.GetDenom(ctx)
	if err != nil {
		return PlayOutcome{}, err
	}
	price, err := k.GetPrice(ctx)
	if err != nil {
		return PlayOutcome{}, err
	}
	admins, err := k.GetAdmins(ctx)
	if err != nil {
		return PlayOutcome{}, err
	}
	counter, err := k.GetGameCounter(ctx)
	if err != nil {
		return PlayOutcome{}, err
	}

	rejected := PlayOutcome{Refund: refundOf(payer, funds)}
	for _, c := range funds {
		if c.Denom != denom {
			return rejected, types.ErrValidation.Wrapf("unexpected denom %q, arcade accepts %q", c.Denom, denom)
		}
	}
	paid := funds.AmountOf(denom)
	if paid.LT(price) {
		return rejected, types.ErrInsufficientPayment.Wrapf("paid %s%s, price is %s%s", paid, denom, price, denom)
	}
	next, err := addUint32Checked(counter, 1, "game_counter")
	if err != nil {
		return rejected, types.ErrGameCounterOverflow.Wrap(err.Error())
	}

	share, retained := splitPayment(paid, len(admins))
	transfers := make([]types.Transfer, 0, len(admins)+1)
	if share.IsPositive() {
		for _, a := range admins {
			transfers = append(transfers, types.Transfer{
				ToAddress: a,
				Amount:    sdk.NewCoins(sdk.NewCoin(denom, share)),
			})
		}
	}
	if retained.IsPositive() {
		transfers = append(transfers, types.Transfer{
			ToAddress: k.arcadeAddr.String(),
			Amount:    sdk.NewCoins(sdk.NewCoin(denom, retained)),
		})
	}

	if err := k.GameCounter.Set(ctx, uint64(next)); err != nil {
		return PlayOutcome{}, storageErr("save game counter", err)
	}

	k.Logger().Debug("game played", "payer", payer, "paid", paid.String(), "game_counter", next)
	return PlayOutcome{
		GameCounter: next,
		Received:    sdk.NewCoin(denom, paid),
		Share:       share,
		Retained:    retained,
		Transfers:   transfers,
	}, nil
}

// splitPayment divides amount across numAdmins admins plus the arcade account.
// share goes to each admin; retained (share plus remainder) stays with the arcade.
func splitPayment(amount sdkmath.Int, numAdmins int) (share sdkmath.Int, retained sdkmath.Int) {
	recipients := int64(numAdmins) + 1
	share = amount.QuoRaw(recipients)
	retained = share.Add(amount.ModRaw(recipients))
	return share, retained
}

func refundOf(payer string, funds sdk.Coins) *types.Transfer {
	if funds.IsZero() {
		return nil
	}
	return &types.Transfer{
		ToAddress: payer,
		Amount:    funds,
	}
}

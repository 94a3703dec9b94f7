// Package ledger is the host bank: per-account, per-denom balances kept in
// collections, with the x/bank method set the arcade keeper expects.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
)

const ModuleName = banktypes.ModuleName

var BalancesKey = collections.NewPrefix(0)

type Keeper struct {
	logger log.Logger

	Schema   collections.Schema
	Balances collections.Map[collections.Pair[sdk.AccAddress, string], sdkmath.Int]
}

func NewKeeper(storeService corestore.KVStoreService, logger log.Logger) Keeper {
	if storeService == nil {
		panic("ledger: nil store service")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		logger: logger.With("module", "ledger"),
		Balances: collections.NewMap(
			sb,
			BalancesKey,
			"balances",
			collections.PairKeyCodec(sdk.AccAddressKey, collections.StringKey),
			sdk.IntValue,
		),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// GetBalance returns the balance of addr in denom. Unknown accounts and store
// errors read as zero.
func (k Keeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	amt, err := k.Balances.Get(ctx, collections.Join(addr, denom))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			k.logger.Error("read balance", "addr", addr.String(), "denom", denom, "err", err)
		}
		return sdk.NewCoin(denom, sdkmath.ZeroInt())
	}
	return sdk.NewCoin(denom, amt)
}

func (k Keeper) GetAllBalances(ctx context.Context, addr sdk.AccAddress) (sdk.Coins, error) {
	var out sdk.Coins
	rng := collections.NewPrefixedPairRange[sdk.AccAddress, string](addr)
	err := k.Balances.Walk(ctx, rng, func(key collections.Pair[sdk.AccAddress, string], amt sdkmath.Int) (bool, error) {
		out = append(out, sdk.NewCoin(key.K2(), amt))
		return false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk balances: %w", err)
	}
	return out.Sort(), nil
}

// MintCoins credits amt to addr out of thin air.
func (k Keeper) MintCoins(ctx context.Context, to sdk.AccAddress, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return sdkerrors.ErrInvalidCoins.Wrap(err.Error())
	}
	for _, c := range amt {
		if err := k.credit(ctx, to, c); err != nil {
			return err
		}
	}
	k.logger.Debug("minted", "to", to.String(), "amount", amt.String())
	return nil
}

// SendCoins moves amt from one account to another. Sending to oneself is
// validated against the balance and otherwise changes nothing.
func (k Keeper) SendCoins(ctx context.Context, fromAddr sdk.AccAddress, toAddr sdk.AccAddress, amt sdk.Coins) error {
	if err := amt.Validate(); err != nil {
		return sdkerrors.ErrInvalidCoins.Wrap(err.Error())
	}
	for _, c := range amt {
		if err := k.debit(ctx, fromAddr, c); err != nil {
			return err
		}
		if err := k.credit(ctx, toAddr, c); err != nil {
			return err
		}
	}
	k.logger.Debug("sent", "from", fromAddr.String(), "to", toAddr.String(), "amount", amt.String())
	return nil
}

func (k Keeper) credit(ctx context.Context, addr sdk.AccAddress, c sdk.Coin) error {
	bal := k.GetBalance(ctx, addr, c.Denom)
	next, err := bal.Amount.SafeAdd(c.Amount)
	if err != nil {
		return sdkerrors.ErrInvalidCoins.Wrapf("balance overflow: have=%s add=%s", bal, c)
	}
	return k.setBalance(ctx, addr, c.Denom, next)
}

func (k Keeper) debit(ctx context.Context, addr sdk.AccAddress, c sdk.Coin) error {
	bal := k.GetBalance(ctx, addr, c.Denom)
	if bal.Amount.LT(c.Amount) {
		return sdkerrors.ErrInsufficientFunds.Wrapf("%s has %s, needs %s", addr, bal, c)
	}
	return k.setBalance(ctx, addr, c.Denom, bal.Amount.Sub(c.Amount))
}

func (k Keeper) setBalance(ctx context.Context, addr sdk.AccAddress, denom string, amt sdkmath.Int) error {
	key := collections.Join(addr, denom)
	if amt.IsZero() {
		if err := k.Balances.Remove(ctx, key); err != nil {
			return fmt.Errorf("remove balance: %w", err)
		}
		return nil
	}
	if err := k.Balances.Set(ctx, key, amt); err != nil {
		return fmt.Errorf("set balance: %w", err)
	}
	return nil
}

// TransferEvent describes a settled transfer the way x/bank does.
func TransferEvent(from, to sdk.AccAddress, amt sdk.Coins) sdk.Event {
	return sdk.NewEvent(banktypes.EventTypeTransfer,
		sdk.NewAttribute(banktypes.AttributeKeyRecipient, to.String()),
		sdk.NewAttribute(banktypes.AttributeKeySender, from.String()),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	)
}

func MintEvent(to sdk.AccAddress, amt sdk.Coins) sdk.Event {
	return sdk.NewEvent(banktypes.EventTypeCoinReceived,
		sdk.NewAttribute(banktypes.AttributeKeyReceiver, to.String()),
		sdk.NewAttribute(sdk.AttributeKeyAmount, amt.String()),
	)
}

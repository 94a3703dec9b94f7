package ledger_test

import (
	"bytes"
	"context"
	"math/big"
	"testing"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"onchainarcade/internal/ledger"
)

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

func newLedger(t *testing.T) (context.Context, ledger.Keeper) {
	t.Helper()
	key := storetypes.NewKVStoreKey(ledger.ModuleName)
	testCtx := testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_test"))
	k := ledger.NewKeeper(runtime.NewKVStoreService(key), log.NewNopLogger())
	return testCtx.Ctx, k
}

func coins(s string) sdk.Coins {
	c, err := sdk.ParseCoinsNormalized(s)
	if err != nil {
		panic(err)
	}
	return c
}

func TestMintAndSend(t *testing.T) {
	ctx, k := newLedger(t)

	require.NoError(t, k.MintCoins(ctx, addr(1), coins("100uarc,5ufoo")))
	require.NoError(t, k.SendCoins(ctx, addr(1), addr(2), coins("40uarc")))

	require.Equal(t, int64(60), k.GetBalance(ctx, addr(1), "uarc").Amount.Int64())
	require.Equal(t, int64(40), k.GetBalance(ctx, addr(2), "uarc").Amount.Int64())

	all, err := k.GetAllBalances(ctx, addr(1))
	require.NoError(t, err)
	require.Equal(t, "60uarc,5ufoo", all.String())
}

func TestSendCoins_InsufficientFundsChangesNothing(t *testing.T) {
	ctx, k := newLedger(t)
	require.NoError(t, k.MintCoins(ctx, addr(1), coins("10uarc")))

	err := k.SendCoins(ctx, addr(1), addr(2), coins("11uarc"))
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)
	require.Equal(t, int64(10), k.GetBalance(ctx, addr(1), "uarc").Amount.Int64())
	require.True(t, k.GetBalance(ctx, addr(2), "uarc").IsZero())
}

func TestSendCoins_SelfTransferIsNoop(t *testing.T) {
	ctx, k := newLedger(t)
	require.NoError(t, k.MintCoins(ctx, addr(1), coins("10uarc")))

	require.NoError(t, k.SendCoins(ctx, addr(1), addr(1), coins("10uarc")))
	require.Equal(t, int64(10), k.GetBalance(ctx, addr(1), "uarc").Amount.Int64())

	err := k.SendCoins(ctx, addr(1), addr(1), coins("11uarc"))
	require.ErrorIs(t, err, sdkerrors.ErrInsufficientFunds)
}

func TestSendCoins_DrainRemovesEntry(t *testing.T) {
	ctx, k := newLedger(t)
	require.NoError(t, k.MintCoins(ctx, addr(1), coins("10uarc")))
	require.NoError(t, k.SendCoins(ctx, addr(1), addr(2), coins("10uarc")))

	has, err := k.Balances.Has(ctx, collections.Join(addr(1), "uarc"))
	require.NoError(t, err)
	require.False(t, has)
}

func TestMintCoins_RejectsInvalid(t *testing.T) {
	ctx, k := newLedger(t)
	bad := sdk.Coins{sdk.Coin{Denom: "uarc", Amount: sdkmath.ZeroInt()}}
	require.ErrorIs(t, k.MintCoins(ctx, addr(1), bad), sdkerrors.ErrInvalidCoins)
}

func TestMintCoins_Overflow(t *testing.T) {
	ctx, k := newLedger(t)
	maxInt := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	require.NoError(t, k.MintCoins(ctx, addr(1), sdk.NewCoins(sdk.NewCoin("uarc", sdkmath.NewIntFromBigInt(maxInt)))))

	err := k.MintCoins(ctx, addr(1), coins("1uarc"))
	require.ErrorIs(t, err, sdkerrors.ErrInvalidCoins)
	require.ErrorContains(t, err, "overflow")
}

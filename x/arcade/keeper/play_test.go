package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"onchainarcade/x/arcade/types"
)

func uarc(n int64) sdk.Coins {
	return sdk.NewCoins(sdk.NewInt64Coin(testDenom, n))
}

func transfersByRecipient(resp *types.Response) map[string]string {
	out := make(map[string]string, len(resp.Transfers))
	for _, tr := range resp.Transfers {
		out[tr.ToAddress] = tr.Amount.String()
	}
	return out
}

func TestPlay_InsufficientPaymentRefunds(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 100, 3, addr(0x01))
	player := addr(0x30).String()

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: player, Funds: uarc(99)})
	require.ErrorIs(t, err, types.ErrInsufficientPayment)
	require.NotNil(t, resp)
	require.Equal(t, map[string]string{player: "99" + testDenom}, transfersByRecipient(resp))

	counter, err := f.k.GetGameCounter(f.ctx)
	require.NoError(t, err)
	require.Zero(t, counter)
}

func TestPlay_NoFundsBelowPrice(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 1, 3, addr(0x01))

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String()})
	require.ErrorIs(t, err, types.ErrInsufficientPayment)
	require.Nil(t, resp)
}

func TestPlay_SplitsEvenly(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 30, 3, addr(0x01), addr(0x02))

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String(), Funds: uarc(30)})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		addr(0x01).String():          "10" + testDenom,
		addr(0x02).String():          "10" + testDenom,
		f.k.ArcadeAddress().String(): "10" + testDenom,
	}, transfersByRecipient(resp))

	// Admins first in stored order, arcade last.
	require.Equal(t, addr(0x01).String(), resp.Transfers[0].ToAddress)
	require.Equal(t, f.k.ArcadeAddress().String(), resp.Transfers[2].ToAddress)

	counter, err := f.qs.GameCounter(f.ctx, &types.QueryGameCounterRequest{})
	require.NoError(t, err)
	require.Equal(t, uint32(1), counter.GameCounter)
}

// The payment is divided by len(admins)+1: one admin and the arcade each get
// 333/2 = 166, and the arcade also keeps the remainder of 1.
func TestPlay_RemainderStaysWithArcade(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 333, 3, addr(0x01))

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String(), Funds: uarc(333)})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		addr(0x01).String():          "166" + testDenom,
		f.k.ArcadeAddress().String(): "167" + testDenom,
	}, transfersByRecipient(resp))

	require.Len(t, resp.Events, 1)
	ev := resp.Events[0]
	require.Equal(t, types.EventTypePlayed, ev.Type)
	attrs := map[string]string{}
	for _, a := range ev.Attributes {
		attrs[a.Key] = a.Value
	}
	require.Equal(t, "333"+testDenom, attrs[types.AttributeKeyReceivedTokens])
	require.Equal(t, "1", attrs[types.AttributeKeyGameCounter])
	require.Equal(t, "166", attrs[types.AttributeKeyShare])
	require.Equal(t, "167", attrs[types.AttributeKeyRetained])
}

func TestPlay_ZeroSharesAreOmitted(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 10, 3, addr(0x01), addr(0x02), addr(0x03))

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String(), Funds: uarc(2)})
	require.ErrorIs(t, err, types.ErrInsufficientPayment)
	require.Len(t, resp.Transfers, 1)

	f2 := newFixture(t)
	f2.instantiate(t, 0, 3, addr(0x01), addr(0x02), addr(0x03))
	resp, err = f2.ms.Play(f2.ctx, &types.MsgPlay{Sender: addr(0x30).String(), Funds: uarc(2)})
	require.NoError(t, err)
	// Shares round down to zero; only the arcade is paid.
	require.Equal(t, map[string]string{f2.k.ArcadeAddress().String(): "2" + testDenom}, transfersByRecipient(resp))
}

func TestPlay_FreeGameWithoutFunds(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 0, 3, addr(0x01))

	for i := 1; i <= 3; i++ {
		resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String()})
		require.NoError(t, err)
		require.Empty(t, resp.Transfers)

		counter, err := f.k.GetGameCounter(f.ctx)
		require.NoError(t, err)
		require.Equal(t, uint32(i), counter)
	}
}

func TestPlay_NoAdminsPaysArcadeOnly(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 5, 3)

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: addr(0x30).String(), Funds: uarc(7)})
	require.NoError(t, err)
	require.Equal(t, map[string]string{f.k.ArcadeAddress().String(): "7" + testDenom}, transfersByRecipient(resp))
}

func TestPlay_WrongDenomRefunds(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 5, 3, addr(0x01))
	player := addr(0x30).String()
	funds := sdk.NewCoins(sdk.NewInt64Coin("ufoo", 50), sdk.NewInt64Coin(testDenom, 5))

	resp, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: player, Funds: funds})
	require.ErrorIs(t, err, types.ErrValidation)
	require.Len(t, resp.Transfers, 1)
	require.Equal(t, player, resp.Transfers[0].ToAddress)
	require.True(t, resp.Transfers[0].Amount.Equal(funds))

	counter, err := f.k.GetGameCounter(f.ctx)
	require.NoError(t, err)
	require.Zero(t, counter)
}

func TestPlay_ArcadeAccountCannotPlay(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 0, 3, addr(0x01))

	_, err := f.ms.Play(f.ctx, &types.MsgPlay{Sender: f.k.ArcadeAddress().String(), Funds: uarc(1)})
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}

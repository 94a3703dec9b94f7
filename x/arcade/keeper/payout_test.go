package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"onchainarcade/x/arcade/types"
)

func TestDistributeTo_ZeroBalanceIsIdempotentNoop(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 1, 1, addr(0x01))

	for i := 0; i < 2; i++ {
		tr, err := f.k.DistributeTo(f.ctx, addr(0x10).String())
		require.NoError(t, err)
		require.Nil(t, tr)
	}

	total, err := f.k.GetTotalDistributed(f.ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

func TestDistributeTo_AccumulatesTotal(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 1, 1, addr(0x01))

	f.bank.setBalance(f.k.ArcadeAddress(), 70)
	tr, err := f.k.DistributeTo(f.ctx, addr(0x10).String())
	require.NoError(t, err)
	require.NotNil(t, tr)
	require.Equal(t, "70"+testDenom, tr.Amount.String())

	// Settlement drains the pool, then fees refill it.
	f.bank.setBalance(f.k.ArcadeAddress(), 30)
	tr, err = f.k.DistributeTo(f.ctx, addr(0x11).String())
	require.NoError(t, err)
	require.Equal(t, addr(0x11).String(), tr.ToAddress)

	total, err := f.k.GetTotalDistributed(f.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(100), total.Int64())

	pool, err := f.qs.PrizePool(f.ctx, &types.QueryPrizePoolRequest{})
	require.NoError(t, err)
	require.Equal(t, "30"+testDenom, pool.PrizePool.String())
}

func TestDistributeTo_RejectsInvalidBeneficiary(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 1, 1, addr(0x01))
	f.bank.setBalance(f.k.ArcadeAddress(), 70)

	_, err := f.k.DistributeTo(f.ctx, "nobody")
	require.ErrorIs(t, err, types.ErrValidation)

	total, err := f.k.GetTotalDistributed(f.ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

func TestDistributeTo_RejectsArcadeAccount(t *testing.T) {
	f := newFixture(t)
	f.instantiate(t, 1, 1, addr(0x01))
	f.bank.setBalance(f.k.ArcadeAddress(), 100)

	tr, err := f.k.DistributeTo(f.ctx, f.k.ArcadeAddress().String())
	require.ErrorIs(t, err, types.ErrValidation)
	require.Nil(t, tr)

	total, err := f.k.GetTotalDistributed(f.ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())
}

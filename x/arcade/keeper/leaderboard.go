package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/leaderboard"
	"onchainarcade/x/arcade/types"
)

// GetTopUsers returns the held leaderboard entries, best first.
func (k Keeper) GetTopUsers(ctx context.Context) ([]types.LeaderboardEntry, error) {
	board, err := k.loadBoard(ctx)
	if err != nil {
		return nil, err
	}
	return board.Entries(), nil
}

func (k Keeper) loadBoard(ctx context.Context) (*leaderboard.Board, error) {
	capacity, err := k.GetMaxTopScores(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := getItem(ctx, k.TopUsers, "top users")
	if err != nil {
		return nil, err
	}
	board, err := leaderboard.FromEntries(capacity, entries)
	if err != nil {
		return nil, storageErr("load top users", err)
	}
	return board, nil
}

// SubmitScore offers entry to the leaderboard on behalf of requester. Admin-gated.
//
// When the entry displaces another and outranks everything previously held, the
// whole prize pool is paid to entry.Account and the payout transfer is returned.
func (k Keeper) SubmitScore(ctx context.Context, requester string, entry types.LeaderboardEntry) (leaderboard.Outcome, *types.Transfer, error) {
	if err := k.requireAdmin(ctx, requester); err != nil {
		return leaderboard.Outcome{}, nil, err
	}
	account, err := sdk.AccAddressFromBech32(entry.Account)
	if err != nil {
		return leaderboard.Outcome{}, nil, types.ErrValidation.Wrapf("invalid entry account %q: %v", entry.Account, err)
	}
	if account.Equals(k.arcadeAddr) {
		return leaderboard.Outcome{}, nil, types.ErrValidation.Wrap("entry account cannot be the arcade account")
	}

	board, err := k.loadBoard(ctx)
	if err != nil {
		return leaderboard.Outcome{}, nil, err
	}
	outcome := board.Submit(entry)
	if !outcome.Accepted {
		return outcome, nil, nil
	}

	if err := k.TopUsers.Set(ctx, board.Entries()); err != nil {
		return leaderboard.Outcome{}, nil, storageErr("save top users", err)
	}
	if !outcome.TookTop {
		return outcome, nil, nil
	}

	transfer, err := k.DistributeTo(ctx, entry.Account)
	if err != nil {
		return leaderboard.Outcome{}, nil, err
	}
	return outcome, transfer, nil
}

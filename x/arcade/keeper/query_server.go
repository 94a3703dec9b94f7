package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/x/arcade/types"
)

type queryServer struct {
	Keeper
}

var _ types.QueryServer = queryServer{}

func NewQueryServerImpl(k Keeper) types.QueryServer {
	return &queryServer{Keeper: k}
}

func (q queryServer) Arcade(ctx context.Context, _ *types.QueryArcadeRequest) (*types.QueryArcadeResponse, error) {
	name, err := q.GetArcadeName(ctx)
	if err != nil {
		return nil, err
	}
	denom, err := q.GetDenom(ctx)
	if err != nil {
		return nil, err
	}
	k, err := q.GetMaxTopScores(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryArcadeResponse{Arcade: name, Denom: denom, MaxTopScores: k}, nil
}

func (q queryServer) AdminsList(ctx context.Context, _ *types.QueryAdminsListRequest) (*types.QueryAdminsListResponse, error) {
	admins, err := q.GetAdmins(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryAdminsListResponse{Admins: admins}, nil
}

func (q queryServer) ScoreList(ctx context.Context, _ *types.QueryScoreListRequest) (*types.QueryScoreListResponse, error) {
	scores, err := q.GetTopUsers(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryScoreListResponse{Scores: scores}, nil
}

func (q queryServer) GameCounter(ctx context.Context, _ *types.QueryGameCounterRequest) (*types.QueryGameCounterResponse, error) {
	n, err := q.GetGameCounter(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryGameCounterResponse{GameCounter: n}, nil
}

func (q queryServer) Price(ctx context.Context, _ *types.QueryPriceRequest) (*types.QueryPriceResponse, error) {
	denom, err := q.GetDenom(ctx)
	if err != nil {
		return nil, err
	}
	price, err := q.GetPrice(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPriceResponse{Price: sdk.NewCoin(denom, price)}, nil
}

func (q queryServer) PrizePool(ctx context.Context, _ *types.QueryPrizePoolRequest) (*types.QueryPrizePoolResponse, error) {
	pool, err := q.Keeper.PrizePool(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPrizePoolResponse{PrizePool: pool}, nil
}

func (q queryServer) TotalDistributed(ctx context.Context, _ *types.QueryTotalDistributedRequest) (*types.QueryTotalDistributedResponse, error) {
	denom, err := q.GetDenom(ctx)
	if err != nil {
		return nil, err
	}
	total, err := q.GetTotalDistributed(ctx)
	if err != nil {
		return nil, err
	}
	return &types.QueryTotalDistributedResponse{TotalDistributed: sdk.NewCoin(denom, total)}, nil
}

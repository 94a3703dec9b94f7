package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// QueryServer is the read-only arcade surface.
type QueryServer interface {
	Arcade(ctx context.Context, req *QueryArcadeRequest) (*QueryArcadeResponse, error)
	AdminsList(ctx context.Context, req *QueryAdminsListRequest) (*QueryAdminsListResponse, error)
	ScoreList(ctx context.Context, req *QueryScoreListRequest) (*QueryScoreListResponse, error)
	GameCounter(ctx context.Context, req *QueryGameCounterRequest) (*QueryGameCounterResponse, error)
	Price(ctx context.Context, req *QueryPriceRequest) (*QueryPriceResponse, error)
	PrizePool(ctx context.Context, req *QueryPrizePoolRequest) (*QueryPrizePoolResponse, error)
	TotalDistributed(ctx context.Context, req *QueryTotalDistributedRequest) (*QueryTotalDistributedResponse, error)
}

type (
	QueryArcadeRequest           struct{}
	QueryAdminsListRequest       struct{}
	QueryScoreListRequest        struct{}
	QueryGameCounterRequest      struct{}
	QueryPriceRequest            struct{}
	QueryPrizePoolRequest        struct{}
	QueryTotalDistributedRequest struct{}
)

type QueryArcadeResponse struct {
	Arcade       string `json:"arcade"`
	Denom        string `json:"denom"`
	MaxTopScores uint32 `json:"maxTopScores"`
}

type QueryAdminsListResponse struct {
	Admins []string `json:"admins"`
}

type QueryScoreListResponse struct {
	Scores []LeaderboardEntry `json:"scores"`
}

type QueryGameCounterResponse struct {
	GameCounter uint32 `json:"gameCounter"`
}

type QueryPriceResponse struct {
	Price sdk.Coin `json:"price"`
}

type QueryPrizePoolResponse struct {
	PrizePool sdk.Coin `json:"prizePool"`
}

type QueryTotalDistributedResponse struct {
	TotalDistributed sdk.Coin `json:"totalDistributed"`
}

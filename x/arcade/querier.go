package arcade

import (
	"context"
	"encoding/json"
	"strings"

	"onchainarcade/x/arcade/types"
)

const (
	QueryPathArcade           = "/arcade"
	QueryPathAdmins           = "/admins"
	QueryPathScores           = "/scores"
	QueryPathGameCounter      = "/game_counter"
	QueryPathPrice            = "/price"
	QueryPathPrizePool        = "/prize_pool"
	QueryPathTotalDistributed = "/total_distributed"
)

// Querier answers a read path with a JSON document.
type Querier func(ctx context.Context, path string) ([]byte, error)

func NewQuerier(qs types.QueryServer) Querier {
	return func(ctx context.Context, path string) ([]byte, error) {
		var (
			res any
			err error
		)
		switch strings.TrimSpace(path) {
		case QueryPathArcade:
			res, err = qs.Arcade(ctx, &types.QueryArcadeRequest{})
		case QueryPathAdmins:
			res, err = qs.AdminsList(ctx, &types.QueryAdminsListRequest{})
		case QueryPathScores:
			res, err = qs.ScoreList(ctx, &types.QueryScoreListRequest{})
		case QueryPathGameCounter:
			res, err = qs.GameCounter(ctx, &types.QueryGameCounterRequest{})
		case QueryPathPrice:
			res, err = qs.Price(ctx, &types.QueryPriceRequest{})
		case QueryPathPrizePool:
			res, err = qs.PrizePool(ctx, &types.QueryPrizePoolRequest{})
		case QueryPathTotalDistributed:
			res, err = qs.TotalDistributed(ctx, &types.QueryTotalDistributedRequest{})
		default:
			return nil, types.ErrInvalidRequest.Wrapf("unknown query path %q", path)
		}
		if err != nil {
			return nil, err
		}
		return json.Marshal(res)
	}
}

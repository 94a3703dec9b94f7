package keeper

import (
	"context"
	"errors"
	"fmt"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"onchainarcade/x/arcade/types"
)

type Keeper struct {
	storeService corestore.KVStoreService
	bankKeeper   types.BankKeeper
	logger       log.Logger
	arcadeAddr   sdk.AccAddress

	Schema           collections.Schema
	Admins           collections.Item[[]string]
	ArcadeName       collections.Item[string]
	Denom            collections.Item[string]
	PricePerPlay     collections.Item[sdkmath.Int]
	MaxTopScores     collections.Item[uint64]
	TopUsers         collections.Item[[]types.LeaderboardEntry]
	GameCounter      collections.Item[uint64]
	TotalDistributed collections.Item[sdkmath.Int]
}

func NewKeeper(storeService corestore.KVStoreService, bankKeeper types.BankKeeper, logger log.Logger) Keeper {
	if storeService == nil {
		panic("arcade keeper: store service is nil")
	}
	if bankKeeper == nil {
		panic("arcade keeper: bank keeper is nil")
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		bankKeeper:   bankKeeper,
		logger:       logger,
		arcadeAddr:   authtypes.NewModuleAddress(types.ModuleName),

		Admins:           collections.NewItem(sb, types.AdminsKey, "admins", types.AdminsValue),
		ArcadeName:       collections.NewItem(sb, types.ArcadeNameKey, "arcade_name", collections.StringValue),
		Denom:            collections.NewItem(sb, types.DenomKey, "denom", collections.StringValue),
		PricePerPlay:     collections.NewItem(sb, types.PricePerPlayKey, "price_per_play", sdk.IntValue),
		MaxTopScores:     collections.NewItem(sb, types.MaxTopScoresKey, "max_top_scores", collections.Uint64Value),
		TopUsers:         collections.NewItem(sb, types.TopUsersKey, "top_users", types.TopUsersValue),
		GameCounter:      collections.NewItem(sb, types.GameCounterKey, "game_counter", collections.Uint64Value),
		TotalDistributed: collections.NewItem(sb, types.TotalDistributedKey, "total_distributed", sdk.IntValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(fmt.Sprintf("arcade keeper: build schema: %v", err))
	}
	k.Schema = schema
	return k
}

func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// ArcadeAddress is the arcade's own account: it collects fees and holds the prize
// pool.
func (k Keeper) ArcadeAddress() sdk.AccAddress {
	return k.arcadeAddr
}

// InitArcade writes the initial state of every item. It runs once.
func (k Keeper) InitArcade(ctx context.Context, msg *types.MsgInstantiate) error {
	if msg == nil {
		return types.ErrInvalidRequest.Wrap("nil instantiate message")
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	has, err := k.Denom.Has(ctx)
	if err != nil {
		return storageErr("load denom", err)
	}
	if has {
		return types.ErrAlreadyInstantiated
	}

	admins := appendUnique(nil, msg.Admins)
	if len(admins) == 0 {
		k.Logger().Warn("arcade instantiated without admins; admin-gated commands are locked")
	}

	if err := k.Admins.Set(ctx, admins); err != nil {
		return storageErr("save admins", err)
	}
	if err := k.ArcadeName.Set(ctx, msg.Arcade); err != nil {
		return storageErr("save arcade name", err)
	}
	if err := k.Denom.Set(ctx, msg.Denom); err != nil {
		return storageErr("save denom", err)
	}
	if err := k.PricePerPlay.Set(ctx, msg.PricePerPlay); err != nil {
		return storageErr("save price", err)
	}
	if err := k.MaxTopScores.Set(ctx, uint64(msg.MaxTopScores)); err != nil {
		return storageErr("save max top scores", err)
	}
	if err := k.TopUsers.Set(ctx, []types.LeaderboardEntry{}); err != nil {
		return storageErr("save top users", err)
	}
	if err := k.GameCounter.Set(ctx, 0); err != nil {
		return storageErr("save game counter", err)
	}
	if err := k.TotalDistributed.Set(ctx, sdkmath.ZeroInt()); err != nil {
		return storageErr("save total distributed", err)
	}
	return nil
}

func (k Keeper) GetArcadeName(ctx context.Context) (string, error) {
	return getItem(ctx, k.ArcadeName, "arcade name")
}

func (k Keeper) GetDenom(ctx context.Context) (string, error) {
	return getItem(ctx, k.Denom, "denom")
}

func (k Keeper) GetPrice(ctx context.Context) (sdkmath.Int, error) {
	return getItem(ctx, k.PricePerPlay, "price")
}

func (k Keeper) GetMaxTopScores(ctx context.Context) (uint32, error) {
	v, err := getItem(ctx, k.MaxTopScores, "max top scores")
	if err != nil {
		return 0, err
	}
	n, err := uint32FromUint64(v, "max_top_scores")
	if err != nil {
		return 0, storageErr("load max top scores", err)
	}
	return n, nil
}

func (k Keeper) GetGameCounter(ctx context.Context) (uint32, error) {
	v, err := getItem(ctx, k.GameCounter, "game counter")
	if err != nil {
		return 0, err
	}
	n, err := uint32FromUint64(v, "game_counter")
	if err != nil {
		return 0, storageErr("load game counter", err)
	}
	return n, nil
}

func (k Keeper) GetTotalDistributed(ctx context.Context) (sdkmath.Int, error) {
	return getItem(ctx, k.TotalDistributed, "total distributed")
}

// UpdatePrice sets the per-play price. Admin-gated.
func (k Keeper) UpdatePrice(ctx context.Context, requester string, price sdkmath.Int) error {
	if price.IsNil() || price.IsNegative() {
		return types.ErrValidation.Wrap("price must be a non-negative amount")
	}
	if err := k.requireAdmin(ctx, requester); err != nil {
		return err
	}
	if err := k.PricePerPlay.Set(ctx, price); err != nil {
		return storageErr("save price", err)
	}
	return nil
}

// getItem loads a required item. A missing item means the arcade was never
// instantiated.
func getItem[V any](ctx context.Context, item collections.Item[V], what string) (V, error) {
	v, err := item.Get(ctx)
	if err != nil {
		var zero V
		if errors.Is(err, collections.ErrNotFound) {
			return zero, types.ErrNotInstantiated.Wrapf("missing %s", what)
		}
		return zero, storageErr("load "+what, err)
	}
	return v, nil
}

func storageErr(op string, err error) error {
	return errorsmod.Wrapf(types.ErrStorage, "%s: %v", op, err)
}

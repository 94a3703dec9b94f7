package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	abci "github.com/cometbft/cometbft/v2/abci/types"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store/cachekv"
	"cosmossdk.io/store/dbadapter"
	storetypes "cosmossdk.io/store/types"

	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"onchainarcade/internal/codec"
	"onchainarcade/internal/ledger"
	"onchainarcade/x/arcade"
	arcadekeeper "onchainarcade/x/arcade/keeper"
	arcadetypes "onchainarcade/x/arcade/types"
)

const QueryPathBalancePrefix = "/balance/"

// ArcadeApp executes commands one at a time against the database. Each command
// runs in a write cache that is written back only when the command succeeds, or
// when a rejected play has a refund to settle.
type ArcadeApp struct {
	logger log.Logger

	mu   sync.Mutex
	db   dbm.DB
	root storetypes.KVStore

	ledger  ledger.Keeper
	sink    arcadetypes.TransferSink
	arcade  arcadekeeper.Keeper
	handler arcade.Handler
	querier arcade.Querier
}

// New opens the database described by cfg and builds the app on top of it.
func New(cfg Config, logger log.Logger) (*ArcadeApp, error) {
	db, err := cfg.OpenDB()
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, logger), nil
}

func NewWithDB(db dbm.DB, logger log.Logger) *ArcadeApp {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	root := dbadapter.Store{DB: db}

	lk := ledger.NewKeeper(newKVStoreService(root, ledger.ModuleName), logger)
	ak := arcadekeeper.NewKeeper(newKVStoreService(root, arcadetypes.StoreKey), lk, logger)

	return &ArcadeApp{
		logger:  logger,
		db:      db,
		root:    root,
		ledger:  lk,
		sink:    lk,
		arcade:  ak,
		handler: arcade.NewHandler(arcadekeeper.NewMsgServerImpl(ak)),
		querier: arcade.NewQuerier(arcadekeeper.NewQueryServerImpl(ak)),
	}
}

func (a *ArcadeApp) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.Close()
}

func (a *ArcadeApp) ArcadeKeeper() arcadekeeper.Keeper { return a.arcade }
func (a *ArcadeApp) LedgerKeeper() ledger.Keeper       { return a.ledger }

// DeliverTx decodes and executes one JSON transaction.
func (a *ArcadeApp) DeliverTx(ctx context.Context, txBytes []byte) *abci.ExecTxResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	env, err := codec.DecodeTxEnvelope(txBytes)
	if err != nil {
		return errResult(err)
	}
	msg, err := codec.DecodeMsg(env)
	if err != nil {
		return errResult(err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return errResult(err)
	}

	cache := cachekv.NewStore(a.root)
	resp, events, err := a.execute(withTxStore(ctx, cache), env, msg)
	if err != nil {
		if resp == nil || len(resp.Transfers) == 0 {
			a.logger.Debug("tx failed", "type", env.Type, "sender", env.Sender, "err", err)
			return errResult(err)
		}
		// The rejection carries a refund that has been settled; keep it.
		cache.Write()
		a.logger.Info("tx rejected with refund", "type", env.Type, "sender", env.Sender, "err", err)
		res := errResult(err)
		res.Events = events.ToABCIEvents()
		res.Data = mustJSON(resp)
		return res
	}
	cache.Write()

	a.logger.Debug("tx executed", "type", env.Type, "sender", env.Sender)
	res := &abci.ExecTxResult{Code: 0, Events: events.ToABCIEvents()}
	if resp != nil {
		res.Data = mustJSON(resp)
	}
	return res
}

// execute runs msg against the cached store in ctx. A non-nil response with
// transfers is returned alongside err only when those transfers were settled.
func (a *ArcadeApp) execute(ctx context.Context, env codec.TxEnvelope, msg codec.Msg) (*arcadetypes.Response, sdk.Events, error) {
	switch m := msg.(type) {
	case *codec.BankMintTx:
		to := sdk.MustAccAddressFromBech32(m.To)
		amt, _ := m.Coins()
		if err := a.ledger.MintCoins(ctx, to, amt); err != nil {
			return nil, nil, err
		}
		return nil, sdk.Events{ledger.MintEvent(to, amt)}, nil

	case *codec.BankSendTx:
		from := sdk.MustAccAddressFromBech32(m.Sender)
		to := sdk.MustAccAddressFromBech32(m.To)
		amt, _ := m.Coins()
		if err := a.sink.SendCoins(ctx, from, to, amt); err != nil {
			return nil, nil, err
		}
		return nil, sdk.Events{ledger.TransferEvent(from, to, amt)}, nil

	case arcadetypes.Msg:
		return a.executeArcade(ctx, env, m)

	default:
		return nil, nil, arcadetypes.ErrInvalidRequest.Wrapf("unhandled message %T", msg)
	}
}

func (a *ArcadeApp) executeArcade(ctx context.Context, env codec.TxEnvelope, msg arcadetypes.Msg) (*arcadetypes.Response, sdk.Events, error) {
	arcadeAddr := a.arcade.ArcadeAddress()

	var events sdk.Events
	if !env.Funds.IsZero() {
		payer, err := sdk.AccAddressFromBech32(env.Sender)
		if err != nil {
			return nil, nil, arcadetypes.ErrValidation.Wrapf("invalid sender %q: %v", env.Sender, err)
		}
		if err := a.sink.SendCoins(ctx, payer, arcadeAddr, env.Funds); err != nil {
			return nil, nil, err
		}
		events = append(events, ledger.TransferEvent(payer, arcadeAddr, env.Funds))
	}

	resp, err := a.handler(ctx, msg)
	if resp == nil {
		if err != nil {
			return nil, nil, err
		}
		return nil, events, nil
	}

	settled, settleErr := a.settle(ctx, arcadeAddr, resp.Transfers)
	if settleErr != nil {
		return nil, nil, settleErr
	}
	events = append(events, resp.Events...)
	events = append(events, settled...)
	return resp, events, err
}

// settle pays out transfers from the arcade account.
func (a *ArcadeApp) settle(ctx context.Context, from sdk.AccAddress, transfers []arcadetypes.Transfer) (sdk.Events, error) {
	events := make(sdk.Events, 0, len(transfers))
	for _, tr := range transfers {
		to, err := sdk.AccAddressFromBech32(tr.ToAddress)
		if err != nil {
			return nil, arcadetypes.ErrValidation.Wrapf("transfer to %q: %v", tr.ToAddress, err)
		}
		if err := a.sink.SendCoins(ctx, from, to, tr.Amount); err != nil {
			return nil, errorsmod.Wrapf(err, "settle transfer of %s to %s", tr.Amount, tr.ToAddress)
		}
		events = append(events, ledger.TransferEvent(from, to, tr.Amount))
	}
	return events, nil
}

// Query answers a read path against committed state.
//
// Paths:
// - /balance/<addr>
// - every arcade query path (/arcade, /admins, /scores, ...)
func (a *ArcadeApp) Query(ctx context.Context, path string) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, QueryPathBalancePrefix) {
		raw := strings.TrimPrefix(path, QueryPathBalancePrefix)
		addr, err := sdk.AccAddressFromBech32(raw)
		if err != nil {
			return nil, arcadetypes.ErrValidation.Wrapf("invalid address %q: %v", raw, err)
		}
		balances, err := a.ledger.GetAllBalances(ctx, addr)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]any{"address": raw, "balances": balances})
	}
	return a.querier(ctx, path)
}

func errResult(err error) *abci.ExecTxResult {
	space, code, logMsg := errorsmod.ABCIInfo(err, false)
	return &abci.ExecTxResult{Code: code, Codespace: space, Log: logMsg}
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("encode tx result: %v", err))
	}
	return b
}

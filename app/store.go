package app

import (
	"context"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"
)

// txStoreKey carries the write cache of the command being executed.
type txStoreKey struct{}

func withTxStore(ctx context.Context, cache storetypes.KVStore) context.Context {
	return context.WithValue(ctx, txStoreKey{}, cache)
}

// kvStoreService hands every module its own prefix of the database. Inside a
// command the prefix sits on top of that command's write cache, so nothing
// reaches the database until the host writes the cache.
type kvStoreService struct {
	root   storetypes.KVStore
	prefix []byte
}

var _ corestore.KVStoreService = kvStoreService{}

func newKVStoreService(root storetypes.KVStore, name string) kvStoreService {
	return kvStoreService{root: root, prefix: []byte(name + "/")}
}

func (s kvStoreService) OpenKVStore(ctx context.Context) corestore.KVStore {
	parent := s.root
	if cache, ok := ctx.Value(txStoreKey{}).(storetypes.KVStore); ok {
		parent = cache
	}
	return coreKVStore{kv: prefix.NewStore(parent, s.prefix)}
}

// coreKVStore adapts a storetypes.KVStore to the core store interface.
type coreKVStore struct {
	kv storetypes.KVStore
}

func (s coreKVStore) Get(key []byte) ([]byte, error) {
	return s.kv.Get(key), nil
}

func (s coreKVStore) Has(key []byte) (bool, error) {
	return s.kv.Has(key), nil
}

func (s coreKVStore) Set(key, value []byte) error {
	s.kv.Set(key, value)
	return nil
}

func (s coreKVStore) Delete(key []byte) error {
	s.kv.Delete(key)
	return nil
}

func (s coreKVStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return s.kv.Iterator(start, end), nil
}

func (s coreKVStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return s.kv.ReverseIterator(start, end), nil
}

package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the module name.
	ModuleName = "arcade"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

var (
	AdminsKey           = collections.NewPrefix(0)
	ArcadeNameKey       = collections.NewPrefix(1)
	DenomKey            = collections.NewPrefix(2)
	PricePerPlayKey     = collections.NewPrefix(3)
	MaxTopScoresKey     = collections.NewPrefix(4)
	TopUsersKey         = collections.NewPrefix(5)
	GameCounterKey      = collections.NewPrefix(6)
	TotalDistributedKey = collections.NewPrefix(7)
)

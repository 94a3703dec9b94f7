package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// Admin and leaderboard lists are stored as JSON. encoding/json is stable for
// slices of plain structs, which keeps the stored bytes deterministic.
var (
	AdminsValue   collcodec.ValueCodec[[]string]           = NewJSONValueCodec[[]string]("admins")
	TopUsersValue collcodec.ValueCodec[[]LeaderboardEntry] = NewJSONValueCodec[[]LeaderboardEntry]("top_users")
)

type jsonValueCodec[T any] struct {
	name string
}

func NewJSONValueCodec[T any](name string) collcodec.ValueCodec[T] {
	return jsonValueCodec[T]{name: name}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	bz, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.name, err)
	}
	return bz, nil
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", c.name, err)
	}
	return v, nil
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) { return c.Encode(value) }

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) { return c.Decode(b) }

func (c jsonValueCodec[T]) Stringify(value T) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<%s: %v>", c.name, err)
	}
	return string(bz)
}

func (c jsonValueCodec[T]) ValueType() string { return "json/" + c.name }

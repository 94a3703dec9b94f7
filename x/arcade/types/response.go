package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// LeaderboardEntry is one ranked participant. Higher scores rank better.
type LeaderboardEntry struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Score   int64  `json:"score"`
}

// Transfer is an instruction to move coins out of the arcade account. It is only
// emitted here; the host settles it after the command returns.
type Transfer struct {
	ToAddress string    `json:"toAddress"`
	Amount    sdk.Coins `json:"amount"`
}

// Response is what every command hands back to the host: transfers to settle and
// events to index/log.
type Response struct {
	Transfers []Transfer `json:"transfers,omitempty"`
	Events    sdk.Events `json:"-"`
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) AddTransfers(ts ...Transfer) *Response {
	r.Transfers = append(r.Transfers, ts...)
	return r
}

func (r *Response) AddEvent(typ string, attrs ...sdk.Attribute) *Response {
	r.Events = append(r.Events, sdk.NewEvent(typ, attrs...))
	return r
}

// Package leaderboard implements the bounded top-K score table.
//
// Ranking is fixed to "higher score is better". Among equal scores the entry
// accepted first ranks higher, so the worst-ranked entry is always the last one
// in the best-first slice.
package leaderboard

import (
	"fmt"

	"onchainarcade/x/arcade/types"
)

// Outcome reports what a single Submit did to the board.
type Outcome struct {
	Accepted bool
	// Evicted is the entry pushed out to make room, if any.
	Evicted *types.LeaderboardEntry
	// TookTop is set when a displacing entry outranks every entry held before
	// it arrived. Entries accepted while the board is still filling never set it.
	TookTop bool
}

// Board is a fixed-capacity ranked collection. The zero value is unusable; use New
// or FromEntries.
type Board struct {
	capacity int
	entries  []types.LeaderboardEntry // best-first
}

func New(capacity uint32) (*Board, error) {
	if capacity == 0 {
		return nil, fmt.Errorf("leaderboard capacity must be > 0")
	}
	return &Board{
		capacity: int(capacity),
		entries:  make([]types.LeaderboardEntry, 0, capacity),
	}, nil
}

// FromEntries rebuilds a board from persisted entries. Entries are re-ranked, so
// stored order is advisory only; more than capacity entries is an error.
func FromEntries(capacity uint32, entries []types.LeaderboardEntry) (*Board, error) {
	b, err := New(capacity)
	if err != nil {
		return nil, err
	}
	if len(entries) > b.capacity {
		return nil, fmt.Errorf("leaderboard holds %d entries, capacity %d", len(entries), b.capacity)
	}
	for _, e := range entries {
		b.insert(e)
	}
	return b, nil
}

func (b *Board) Capacity() int { return b.capacity }

func (b *Board) Len() int { return len(b.entries) }

func (b *Board) Full() bool { return len(b.entries) >= b.capacity }

// Entries returns a best-first copy of the held entries.
func (b *Board) Entries() []types.LeaderboardEntry {
	return append([]types.LeaderboardEntry(nil), b.entries...)
}

// Worst returns the entry that would be evicted next.
func (b *Board) Worst() (types.LeaderboardEntry, bool) {
	if len(b.entries) == 0 {
		return types.LeaderboardEntry{}, false
	}
	return b.entries[len(b.entries)-1], true
}

// Best returns the top-ranked entry.
func (b *Board) Best() (types.LeaderboardEntry, bool) {
	if len(b.entries) == 0 {
		return types.LeaderboardEntry{}, false
	}
	return b.entries[0], true
}

// IsTop reports whether e strictly outranks every held entry.
func (b *Board) IsTop(e types.LeaderboardEntry) bool {
	if len(b.entries) == 0 {
		return false
	}
	for _, held := range b.entries {
		if e.Score <= held.Score {
			return false
		}
	}
	return true
}

// Submit offers e to the board. Insert and eviction happen as one step; the board
// never holds more than capacity entries.
func (b *Board) Submit(e types.LeaderboardEntry) Outcome {
	if !b.Full() {
		b.insert(e)
		return Outcome{Accepted: true}
	}

	worst := b.entries[len(b.entries)-1]
	if e.Score <= worst.Score {
		return Outcome{}
	}

	tookTop := b.IsTop(e)
	b.entries = b.entries[:len(b.entries)-1]
	b.insert(e)
	return Outcome{Accepted: true, Evicted: &worst, TookTop: tookTop}
}

// insert places e after every entry with an equal or better score.
func (b *Board) insert(e types.LeaderboardEntry) {
	pos := len(b.entries)
	for i, held := range b.entries {
		if e.Score > held.Score {
			pos = i
			break
		}
	}
	b.entries = append(b.entries, types.LeaderboardEntry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = e
}

package leaderboard

import (
	"fmt"
	"math/rand"
	"testing"

	"onchainarcade/x/arcade/types"
)

func entry(name string, score int64) types.LeaderboardEntry {
	return types.LeaderboardEntry{Name: name, Account: "acct-" + name, Score: score}
}

func mustNew(t *testing.T, capacity uint32) *Board {
	t.Helper()
	b, err := New(capacity)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func TestNew_RejectsZeroCapacity(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatalf("expected error for zero capacity")
	}
}

func TestSubmit_FillsWithoutTakingTop(t *testing.T) {
	b := mustNew(t, 3)
	for i, s := range []int64{10, 30, 20} {
		out := b.Submit(entry(fmt.Sprintf("u%d", i), s))
		if !out.Accepted || out.TookTop || out.Evicted != nil {
			t.Fatalf("submit %d: unexpected outcome %#v", i, out)
		}
	}
	got := b.Entries()
	if len(got) != 3 || got[0].Score != 30 || got[1].Score != 20 || got[2].Score != 10 {
		t.Fatalf("unexpected order: %#v", got)
	}
}

func TestSubmit_SingleSlotDisplacement(t *testing.T) {
	b := mustNew(t, 1)

	out := b.Submit(entry("first", 299))
	if !out.Accepted || out.TookTop {
		t.Fatalf("unexpected first outcome: %#v", out)
	}

	out = b.Submit(entry("second", 300))
	if !out.Accepted || !out.TookTop {
		t.Fatalf("expected displacement to take top, got %#v", out)
	}
	if out.Evicted == nil || out.Evicted.Score != 299 {
		t.Fatalf("expected 299 evicted, got %#v", out.Evicted)
	}
	got := b.Entries()
	if len(got) != 1 || got[0].Score != 300 || got[0].Name != "second" {
		t.Fatalf("unexpected board: %#v", got)
	}
}

func TestSubmit_RejectsNotStrictlyBetterThanWorst(t *testing.T) {
	b := mustNew(t, 2)
	b.Submit(entry("a", 50))
	b.Submit(entry("b", 40))

	for _, s := range []int64{40, 39, -5} {
		out := b.Submit(entry("c", s))
		if out.Accepted || out.TookTop || out.Evicted != nil {
			t.Fatalf("score %d: expected rejection, got %#v", s, out)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("board changed after rejections: %#v", b.Entries())
	}
}

func TestSubmit_DisplacementBelowBestDoesNotTakeTop(t *testing.T) {
	b := mustNew(t, 2)
	b.Submit(entry("a", 50))
	b.Submit(entry("b", 40))

	out := b.Submit(entry("c", 45))
	if !out.Accepted || out.TookTop {
		t.Fatalf("unexpected outcome: %#v", out)
	}
	if out.Evicted == nil || out.Evicted.Name != "b" {
		t.Fatalf("expected b evicted, got %#v", out.Evicted)
	}
}

func TestSubmit_TieWithBestDoesNotTakeTop(t *testing.T) {
	b := mustNew(t, 2)
	b.Submit(entry("a", 50))
	b.Submit(entry("b", 40))

	out := b.Submit(entry("c", 50))
	if !out.Accepted || out.TookTop {
		t.Fatalf("tie with best must not take top: %#v", out)
	}
	best, _ := b.Best()
	if best.Name != "a" {
		t.Fatalf("earlier entry should keep rank on tie, best=%#v", best)
	}
}

func TestSubmit_EvictsLatestAmongTiedWorst(t *testing.T) {
	b := mustNew(t, 3)
	b.Submit(entry("a", 10))
	b.Submit(entry("b", 10))
	b.Submit(entry("c", 20))

	out := b.Submit(entry("d", 15))
	if out.Evicted == nil || out.Evicted.Name != "b" {
		t.Fatalf("expected b (later of the tied worst) evicted, got %#v", out.Evicted)
	}
}

func TestFromEntries_ReranksAndBounds(t *testing.T) {
	b, err := FromEntries(3, []types.LeaderboardEntry{entry("a", 1), entry("b", 3), entry("c", 2)})
	if err != nil {
		t.Fatalf("FromEntries: %v", err)
	}
	got := b.Entries()
	if got[0].Name != "b" || got[1].Name != "c" || got[2].Name != "a" {
		t.Fatalf("unexpected order: %#v", got)
	}

	if _, err := FromEntries(1, []types.LeaderboardEntry{entry("a", 1), entry("b", 2)}); err == nil {
		t.Fatalf("expected error for over-capacity entries")
	}
}

func TestProperty_BoundedTopK(t *testing.T) {
	const (
		capacity = 5
		loops    = 2000
	)
	r := rand.New(rand.NewSource(1337))
	b := mustNew(t, capacity)

	var (
		maxRejected int64
		rejectedAny bool
		submitted   []int64
	)
	for i := 0; i < loops; i++ {
		s := r.Int63n(1000) - 500
		submitted = append(submitted, s)
		wasFull := b.Full()
		best, hadBest := b.Best()

		out := b.Submit(entry(fmt.Sprintf("u%d", i), s))

		if b.Len() > capacity {
			t.Fatalf("board exceeded capacity: %d", b.Len())
		}
		if !out.Accepted {
			if !wasFull {
				t.Fatalf("rejected %d while filling", s)
			}
			if !rejectedAny || s > maxRejected {
				maxRejected = s
			}
			rejectedAny = true
		}
		if out.TookTop && (!hadBest || s <= best.Score) {
			t.Fatalf("TookTop for %d with previous best %#v", s, best)
		}
		if rejectedAny {
			for _, held := range b.Entries() {
				if held.Score < maxRejected {
					t.Fatalf("held score %d below rejected score %d", held.Score, maxRejected)
				}
			}
		}
		got := b.Entries()
		for j := 1; j < len(got); j++ {
			if got[j-1].Score < got[j].Score {
				t.Fatalf("entries not best-first: %#v", got)
			}
		}
	}

	// The board holds exactly the top-capacity scores ever submitted.
	counts := map[int64]int{}
	for _, s := range submitted {
		counts[s]++
	}
	held := b.Entries()
	for _, e := range held {
		higher := 0
		for s, n := range counts {
			if s > e.Score {
				higher += n
			}
		}
		if higher >= capacity {
			t.Fatalf("held %d but %d higher scores were submitted", e.Score, higher)
		}
	}
}

func FuzzSubmit_NeverExceedsCapacity(f *testing.F) {
	f.Add(uint8(1), int64(299), int64(300), int64(298))
	f.Add(uint8(3), int64(5), int64(5), int64(5))

	f.Fuzz(func(t *testing.T, capacity uint8, s0, s1, s2 int64) {
		if capacity == 0 {
			return
		}
		b := mustNew(t, uint32(capacity))
		for i, s := range []int64{s0, s1, s2, s0, s1, s2} {
			b.Submit(entry(fmt.Sprintf("u%d", i), s))
			if b.Len() > int(capacity) {
				t.Fatalf("board exceeded capacity %d: %d", capacity, b.Len())
			}
		}
	})
}

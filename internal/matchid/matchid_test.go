package matchid

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/rpsplus/internal/randutil"
)

type fixedSource struct{ n int }

func (f fixedSource) IntN(n int) int { return f.n % n }

func TestNewShape(t *testing.T) {
	id := New(randutil.New(1))
	if len(id) != 16 {
		t.Fatalf("id length %d, want 16", len(id))
	}
	for _, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			t.Errorf("id %q contains %q outside the alphabet", id, c)
		}
	}
}

func TestNewUnique(t *testing.T) {
	rng := randutil.New(7)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New(rng)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestTimestampPrefixOrders(t *testing.T) {
	earlier := at(time.UnixMilli(1_700_000_000_000), fixedSource{0})
	later := at(time.UnixMilli(1_700_000_100_000), fixedSource{0})
	if !(earlier < later) {
		t.Errorf("ids should sort by creation time: %q vs %q", earlier, later)
	}
}

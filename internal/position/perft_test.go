package position

import "testing"

func TestPerftInitialPosition(t *testing.T) {
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := b.Perft(c.depth); got != c.want {
			t.Fatalf("perft depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftInitialDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft in short mode")
	}
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	if got := b.Perft(4); got != 197281 {
		t.Fatalf("perft depth4: got %d want %d", got, 197281)
	}
	if got := b.Perft(5); got != 4865609 {
		t.Fatalf("perft depth5: got %d want %d", got, 4865609)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -"
	b, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	if got := b.Perft(3); got != 97862 {
		t.Fatalf("Kiwipete depth3: got %d want %d", got, 97862)
	}
	if testing.Short() {
		t.Skip("skipping depth4 Kiwipete in short mode")
	}
	if got := b.Perft(4); got != 4085603 {
		t.Fatalf("Kiwipete depth4: got %d want %d", got, 4085603)
	}
}

func TestPerftEnPassant(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6"
	b, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 5 {
		t.Fatalf("EP depth1: got %d want %d", got, 5)
	}
	if got := b.Perft(2); got != 19 {
		t.Fatalf("EP depth2: got %d want %d", got, 19)
	}
}

func TestPerftPromotion(t *testing.T) {
	fen := "1n5k/P7/8/8/8/8/8/7K w - -"
	b, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	if got := b.Perft(1); got != 11 {
		t.Fatalf("promotion depth1: got %d want %d", got, 11)
	}
}

// TestPerftDivideFromStartposDepth5 covers the depth-5 divide directly:
// twenty root splits summing to 4865609, the same node count
// TestPerftInitialDeep checks via the non-dividing Perft entry point.
func TestPerftDivideFromStartposDepth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping deep perft divide in short mode")
	}
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	splits, total := b.PerftDivide(5)
	if total != 4865609 {
		t.Fatalf("PerftDivide(5): total=%d want 4865609", total)
	}
	if len(splits) != 20 {
		t.Fatalf("expected 20 root splits from startpos, got %d", len(splits))
	}
	var sum uint64
	for _, s := range splits {
		sum += s.Nodes
	}
	if sum != total {
		t.Fatalf("PerftDivide(5): sum=%d total=%d", sum, total)
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		t.Fatalf("NewFromFEN failed: %v", err)
	}
	splits, total := b.PerftDivide(4)
	var sum uint64
	for _, s := range splits {
		sum += s.Nodes
	}
	if sum != total || total != 197281 {
		t.Fatalf("PerftDivide(4): sum=%d total=%d want 197281", sum, total)
	}
	if len(splits) != 20 {
		t.Fatalf("expected 20 root splits from startpos, got %d", len(splits))
	}
}

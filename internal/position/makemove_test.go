package position

import (
	"testing"

	"corvidchess/internal/bitboard"
)

func makeUnmakeRoundTrip(t *testing.T, fen, moveStr string) {
	t.Helper()
	b, err := NewFromFEN(fen)
	if err != nil {
		t.Fatalf("NewFromFEN(%q): %v", fen, err)
	}
	before := snapshotFields(b)

	var list MoveList
	b.GenerateMoves(&list)
	var found Move
	ok := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).String() == moveStr {
			found = list.At(i)
			ok = true
			break
		}
	}
	if !ok {
		t.Fatalf("move %s not found in pseudo-legal list for %q", moveStr, fen)
	}

	undo, legal := b.Make(found)
	if !legal {
		t.Fatalf("Make(%s) reported illegal", moveStr)
	}
	checkOccupancy(t, b)

	b.Unmake(undo)
	checkOccupancy(t, b)
	after := snapshotFields(b)
	if before != after {
		t.Fatalf("make/unmake did not restore state: before=%+v after=%+v", before, after)
	}
}

type fieldSnapshot struct {
	pieces     [numPieces]bitboard.Bitboard
	white      bitboard.Bitboard
	black      bitboard.Bitboard
	both       bitboard.Bitboard
	sideToMove Color
	castling   CastlingRights
	enPassant  bitboard.Square
}

func snapshotFields(b *Board) fieldSnapshot {
	return fieldSnapshot{
		pieces:     b.pieces,
		white:      b.occupied[White],
		black:      b.occupied[Black],
		both:       b.both,
		sideToMove: b.sideToMove,
		castling:   b.castling,
		enPassant:  b.enPassant,
	}
}

func TestMakeUnmakeNormalMove(t *testing.T) {
	makeUnmakeRoundTrip(t, StartFEN, "e2e4")
}

func TestMakeUnmakeCapture(t *testing.T) {
	makeUnmakeRoundTrip(t, "8/r7/8/8/8/8/8/R3K3 w - -", "a1a7")
}

func TestMakeUnmakeEnPassant(t *testing.T) {
	makeUnmakeRoundTrip(t, "k7/8/8/3pP3/8/8/8/7K w - d6", "e5d6")
}

func TestMakeUnmakeCastling(t *testing.T) {
	fen := "4k3/8/8/8/8/8/8/4K2R w K -"
	b, err := NewFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	before := snapshotFields(b)

	undo, ok := b.Make(NewMove(4+56, 6+56, WhiteKing, NoPiece, false, false, false, true))
	if !ok {
		t.Fatalf("castling Make reported illegal")
	}
	f1, _ := bitboard.SquareFromString("f1")
	if b.PieceAt(f1) != WhiteRook {
		t.Fatalf("expected rook on f1 after castling, got %v", b.PieceAt(f1))
	}
	checkOccupancy(t, b)

	b.Unmake(undo)
	checkOccupancy(t, b)
	if after := snapshotFields(b); before != after {
		t.Fatalf("castling make/unmake did not restore state")
	}
}

func TestMakeUnmakePromotion(t *testing.T) {
	makeUnmakeRoundTrip(t, "1n5k/P7/8/8/8/8/8/7K w - -", "a7a8q")
}

func TestMakeRejectsMoveLeavingOwnKingInCheck(t *testing.T) {
	// White king on e1 pinned to moving the only blocker would leave it in
	// check from the black rook on e8; the pinned knight on e4 cannot move
	// off the e-file.
	b, err := NewFromFEN("4r1k1/8/8/8/4N3/8/8/4K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	e4, _ := bitboard.SquareFromString("e4")
	d6, _ := bitboard.SquareFromString("d6")
	m := NewMove(e4, d6, WhiteKnight, NoPiece, false, false, false, false)
	if _, ok := b.Make(m); ok {
		t.Fatalf("expected pinned knight move to be rejected as illegal")
	}
	// Board must be untouched after a rejected Make.
	if b.PieceAt(e4) != WhiteKnight {
		t.Fatalf("board mutated after illegal move was rejected")
	}
}

package engine

import (
	"testing"

	"corvidchess/internal/position"
)

func TestMVVLVAFavorsHigherValueVictim(t *testing.T) {
	pawnTakesQueen := mvvLva[position.WhitePawn][position.BlackQueen]
	pawnTakesPawn := mvvLva[position.WhitePawn][position.BlackPawn]
	if pawnTakesQueen <= pawnTakesPawn {
		t.Fatalf("capturing a queen should score higher than capturing a pawn: %d vs %d", pawnTakesQueen, pawnTakesPawn)
	}
}

func TestMVVLVAFavorsLowerValueAttacker(t *testing.T) {
	pawnTakesRook := mvvLva[position.WhitePawn][position.BlackRook]
	queenTakesRook := mvvLva[position.WhiteQueen][position.BlackRook]
	if pawnTakesRook <= queenTakesRook {
		t.Fatalf("a pawn capturing a rook should outrank a queen capturing the same rook: %d vs %d", pawnTakesRook, queenTakesRook)
	}
}

func TestOrderMovesRanksCapturesFirst(t *testing.T) {
	b, err := position.NewFromFEN("8/r7/8/8/8/8/8/R3K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	var list position.MoveList
	b.GenerateMoves(&list)

	sc := &SearchContext{}
	sc.orderMoves(b, &list, 0)

	if !list.At(0).IsCapture() {
		t.Fatalf("expected the top-ranked move to be the only capture available (a1xa7)")
	}
}

func TestKillerMoveScoresAboveHistory(t *testing.T) {
	sc := &SearchContext{}
	m := position.NewMove(12, 20, position.WhiteKnight, position.NoPiece, false, false, false, false)
	sc.killer[0][3] = m
	sc.history[position.WhiteKnight][20] = 500

	b, _ := position.NewFromFEN(position.StartFEN)
	if got := sc.scoreMove(b, m, 3); got != killer0Score {
		t.Fatalf("expected killer-slot score %d, got %d", killer0Score, got)
	}
}

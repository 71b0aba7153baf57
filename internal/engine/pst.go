package engine

import "corvidchess/internal/position"

// Material values in centipawns, following the reference engine's SEE table
// scale (pawn 100 through king 5000, the king value never actually entering
// a real material sum since kings can't be captured).
const (
	pawnValue   = 100
	knightValue = 300
	bishopValue = 300
	rookValue   = 500
	queenValue  = 900
	kingValue   = 5000
)

var materialValue = [12]int{
	position.WhitePawn:   pawnValue,
	position.WhiteKnight: knightValue,
	position.WhiteBishop: bishopValue,
	position.WhiteRook:   rookValue,
	position.WhiteQueen:  queenValue,
	position.WhiteKing:   kingValue,
	position.BlackPawn:   pawnValue,
	position.BlackKnight: knightValue,
	position.BlackBishop: bishopValue,
	position.BlackRook:   rookValue,
	position.BlackQueen:  queenValue,
	position.BlackKing:   kingValue,
}

// mirrorSquare flips a square vertically (rank 8 <-> rank 1) so a single
// piece-square table, written from white's perspective, can be reused for
// black by mirroring the lookup index rather than storing a second table.
var mirrorSquare [64]int

func init() {
	for sq := 0; sq < 64; sq++ {
		rank := sq / 8
		file := sq % 8
		mirrorSquare[sq] = (7-rank)*8 + file
	}
}

// pawnPST, knightPST, bishopPST, rookPST and kingPST are static positional
// bonuses in centipawns, indexed a8=0..h1=63 as written (white's
// perspective); queen is omitted (contributes 0), per the evaluator's
// contract that piece-square values are an implementation choice.
var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	50, 50, 50, 50, 50, 50, 50, 50,
	10, 10, 20, 30, 30, 20, 10, 10,
	5, 5, 10, 25, 25, 10, 5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, -5, -10, 0, 0, -10, -5, 5,
	5, 10, 10, -20, -20, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, 10, 10, 10, 10, 5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	0, 0, 0, 5, 5, 0, 0, 0,
}

var kingPST = [64]int{
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	20, 20, 0, 0, 0, 0, 20, 20,
	20, 30, 10, 0, 0, 10, 30, 20,
}

// pstValue looks up the positional bonus for a piece kind on sq, mirroring
// the index for black so both colors read the same white-oriented table.
func pstValue(p position.Piece, sq int) int {
	if p.Color() == position.Black {
		sq = mirrorSquare[sq]
	}
	switch p {
	case position.WhitePawn, position.BlackPawn:
		return pawnPST[sq]
	case position.WhiteKnight, position.BlackKnight:
		return knightPST[sq]
	case position.WhiteBishop, position.BlackBishop:
		return bishopPST[sq]
	case position.WhiteRook, position.BlackRook:
		return rookPST[sq]
	case position.WhiteKing, position.BlackKing:
		return kingPST[sq]
	default:
		return 0
	}
}

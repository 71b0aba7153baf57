package engine

import (
	"corvidchess/internal/bitboard"
	"corvidchess/internal/position"
)

// Evaluate returns an integer score in centipawns from the side-to-move's
// perspective: material plus piece-square-table value, summed with white
// positive and black negative, then negated if black is on move.
func Evaluate(b *position.Board) int {
	var score int
	for p := position.Piece(0); p < position.BlackKing+1; p++ {
		bb := b.PieceBitboard(p)
		for bb != 0 {
			sq := bitboard.PopLSB(&bb)
			value := materialValue[p] + pstValue(p, int(sq))
			if p.Color() == position.White {
				score += value
			} else {
				score -= value
			}
		}
	}
	if b.SideToMove() == position.White {
		return score
	}
	return -score
}

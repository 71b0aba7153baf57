package position

import "corvidchess/internal/bitboard"

// rookCastleSquares maps a king's castling destination to the rook's
// from/to squares that must move alongside it.
var rookCastleSquares = map[bitboard.Square][2]bitboard.Square{
	62: {63, 61}, // white kingside: h1 -> f1
	58: {56, 59}, // white queenside: a1 -> d1
	6:  {7, 5},   // black kingside: h8 -> f8
	2:  {0, 3},   // black queenside: a8 -> d8
}

// Make applies move to the board and reports whether it was legal (the
// mover's own king is not left in check). On success it returns an Undo
// record the caller must pass to Unmake to restore the prior position; on
// failure the board is already fully reverted and the Undo is unusable.
func (b *Board) Make(move Move) (Undo, bool) {
	undo := Undo{
		move:       move,
		castling:   b.castling,
		enPassant:  b.enPassant,
		sideToMove: b.sideToMove,
	}

	from, to := move.From(), move.To()
	piece := move.Piece()
	mover := b.sideToMove

	b.clearPiece(piece, from)
	b.setPiece(piece, to)

	captured := NoPiece
	if move.IsCapture() && !move.IsEnPassant() {
		captured = b.pieceAtInRange(to, mover.Other())
		if captured != NoPiece {
			b.clearPiece(captured, to)
		}
	}
	undo.captured = captured

	if promoted := move.Promoted(); promoted != NoPiece {
		b.clearPiece(piece, to)
		b.setPiece(promoted, to)
	}

	if move.IsEnPassant() {
		var victimSq bitboard.Square
		victimPawn := BlackPawn
		if mover == White {
			victimSq = to + 8
		} else {
			victimSq = to - 8
			victimPawn = WhitePawn
		}
		b.clearPiece(victimPawn, victimSq)
		undo.captured = victimPawn
	}

	if move.IsCastle() {
		if rook, ok := rookCastleSquares[to]; ok {
			rookPiece := WhiteRook
			if mover == Black {
				rookPiece = BlackRook
			}
			b.clearPiece(rookPiece, rook[0])
			b.setPiece(rookPiece, rook[1])
		}
	}

	b.castling &= castlingRightsMask[from]
	b.castling &= castlingRightsMask[to]

	b.recomputeOccupancy()

	if b.IsSquareAttacked(b.KingSquare(mover), mover.Other()) {
		b.unmakeInternal(undo)
		return undo, false
	}

	if move.IsDoublePush() {
		if mover == White {
			b.enPassant = from - 8
		} else {
			b.enPassant = from + 8
		}
	} else {
		b.enPassant = bitboard.NoSquare
	}

	b.sideToMove = mover.Other()
	b.Ply++
	return undo, true
}

// Unmake reverses a successful Make call using the Undo it returned.
func (b *Board) Unmake(undo Undo) {
	b.Ply--
	b.unmakeInternal(undo)
}

// unmakeInternal restores board state from undo without touching Ply; used
// both by the public Unmake and by Make's own illegal-move rollback (which
// never advanced Ply in the first place).
func (b *Board) unmakeInternal(undo Undo) {
	move := undo.move
	from, to := move.From(), move.To()
	piece := move.Piece()
	mover := undo.sideToMove

	if promoted := move.Promoted(); promoted != NoPiece {
		b.clearPiece(promoted, to)
	} else {
		b.clearPiece(piece, to)
	}
	b.setPiece(piece, from)

	if move.IsEnPassant() {
		var victimSq bitboard.Square
		victimPawn := BlackPawn
		if mover == White {
			victimSq = to + 8
		} else {
			victimSq = to - 8
			victimPawn = WhitePawn
		}
		b.setPiece(victimPawn, victimSq)
	} else if undo.captured != NoPiece {
		b.setPiece(undo.captured, to)
	}

	if move.IsCastle() {
		if rook, ok := rookCastleSquares[to]; ok {
			rookPiece := WhiteRook
			if mover == Black {
				rookPiece = BlackRook
			}
			b.clearPiece(rookPiece, rook[1])
			b.setPiece(rookPiece, rook[0])
		}
	}

	b.castling = undo.castling
	b.enPassant = undo.enPassant
	b.sideToMove = undo.sideToMove

	b.recomputeOccupancy()
}

package position

import "corvidchess/internal/bitboard"

// Board holds the full mutable state of a chess position: twelve piece
// bitboards, the three derived occupancy bitboards, side to move, castling
// rights, the en-passant target, and a ply counter used for accounting and
// test output.
//
// Unlike the reference engine's single in-board snapshot slot, Make returns
// an Undo record that the caller threads through to Unmake. This keeps the
// undo stack on the search call stack, where recursion already lives,
// instead of inside the board itself.
type Board struct {
	pieces   [numPieces]bitboard.Bitboard
	occupied [2]bitboard.Bitboard // [White], [Black]
	both     bitboard.Bitboard

	sideToMove Color
	castling   CastlingRights
	enPassant  bitboard.Square

	Ply int
}

// Undo captures everything Unmake needs to restore after a Make call.
type Undo struct {
	move       Move
	captured   Piece
	castling   CastlingRights
	enPassant  bitboard.Square
	sideToMove Color
}

// New returns an empty board (no pieces, white to move, no castling rights,
// no en-passant target). Most callers want NewFromFEN instead.
func New() *Board {
	b := &Board{enPassant: bitboard.NoSquare}
	for i := range b.pieces {
		b.pieces[i] = 0
	}
	return b
}

// SideToMove returns the color on move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the current castling-rights mask.
func (b *Board) Castling() CastlingRights { return b.castling }

// EnPassant returns the current en-passant target square, or NoSquare.
func (b *Board) EnPassant() bitboard.Square { return b.enPassant }

// Occupied returns the union occupancy bitboard for a color.
func (b *Board) Occupied(c Color) bitboard.Bitboard { return b.occupied[c] }

// Both returns the union of both colors' occupancy.
func (b *Board) Both() bitboard.Bitboard { return b.both }

// PieceBitboard returns the bitboard for a single piece kind.
func (b *Board) PieceBitboard(p Piece) bitboard.Bitboard { return b.pieces[p] }

// PieceAt returns the piece occupying sq, or NoPiece if empty. It scans all
// twelve bitboards; callers on a hot path (capture resolution) that already
// know a color range should prefer pieceAtInRange.
func (b *Board) PieceAt(sq bitboard.Square) Piece {
	bit := sq.Bit()
	for p := Piece(0); p < numPieces; p++ {
		if b.pieces[p]&bit != 0 {
			return p
		}
	}
	return NoPiece
}

// pieceAtInRange scans only the six piece bitboards belonging to c, mirroring
// the reference engine's capture-resolution loop.
func (b *Board) pieceAtInRange(sq bitboard.Square, c Color) Piece {
	bit := sq.Bit()
	start, end := Piece(WhitePawn), Piece(WhiteKing)
	if c == Black {
		start, end = BlackPawn, BlackKing
	}
	for p := start; p <= end; p++ {
		if b.pieces[p]&bit != 0 {
			return p
		}
	}
	return NoPiece
}

// KingSquare returns the square of c's king. Exactly one is required to be
// present whenever search or make/unmake runs.
func (b *Board) KingSquare(c Color) bitboard.Square {
	king := WhiteKing
	if c == Black {
		king = BlackKing
	}
	return bitboard.BitScanForward(b.pieces[king])
}

// recomputeOccupancy rebuilds the three occupancy bitboards from the twelve
// piece bitboards from scratch.
func (b *Board) recomputeOccupancy() {
	var white, black bitboard.Bitboard
	for p := WhitePawn; p <= WhiteKing; p++ {
		white |= b.pieces[p]
	}
	for p := BlackPawn; p <= BlackKing; p++ {
		black |= b.pieces[p]
	}
	b.occupied[White] = white
	b.occupied[Black] = black
	b.both = white | black
}

func (b *Board) setPiece(p Piece, sq bitboard.Square) {
	b.pieces[p] |= sq.Bit()
	b.occupied[p.Color()] |= sq.Bit()
	b.both |= sq.Bit()
}

func (b *Board) clearPiece(p Piece, sq bitboard.Square) {
	b.pieces[p] &^= sq.Bit()
	b.occupied[p.Color()] &^= sq.Bit()
	b.both &^= sq.Bit()
}

// IsSquareAttacked reports whether sq is attacked by byColor.
func (b *Board) IsSquareAttacked(sq bitboard.Square, byColor Color) bool {
	// Pawn attackers: look up the attack table for the opposite color from
	// sq (i.e. "what would attack sq if a pawn of byColor stood there"),
	// and intersect with byColor's actual pawns.
	pawns := WhitePawn
	if byColor == Black {
		pawns = BlackPawn
	}
	if bitboard.PawnAttacks(int(byColor.Other()), sq)&b.pieces[pawns] != 0 {
		return true
	}

	knight, bishop, rook, queen, king := WhiteKnight, WhiteBishop, WhiteRook, WhiteQueen, WhiteKing
	if byColor == Black {
		knight, bishop, rook, queen, king = BlackKnight, BlackBishop, BlackRook, BlackQueen, BlackKing
	}
	if bitboard.KnightAttacks(sq)&b.pieces[knight] != 0 {
		return true
	}
	if bitboard.BishopAttacks(sq, b.both)&(b.pieces[bishop]|b.pieces[queen]) != 0 {
		return true
	}
	if bitboard.RookAttacks(sq, b.both)&(b.pieces[rook]|b.pieces[queen]) != 0 {
		return true
	}
	if bitboard.KingAttacks(sq)&b.pieces[king] != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (b *Board) InCheck(c Color) bool {
	return b.IsSquareAttacked(b.KingSquare(c), c.Other())
}

// Outcome classifies the position as ongoing, checkmate, or stalemate for
// the side to move. It does not track repetition or the fifty-move rule.
type Outcome int

const (
	InProgress Outcome = iota
	Checkmate
	Stalemate
)

// Outcome walks the pseudo-legal move list, trial-playing each move to find
// whether the side to move has any legal reply.
func (b *Board) Outcome() Outcome {
	var list MoveList
	b.GenerateMoves(&list)
	for i := 0; i < list.Len(); i++ {
		undo, ok := b.Make(list.At(i))
		if !ok {
			continue
		}
		b.Unmake(undo)
		return InProgress
	}
	if b.InCheck(b.sideToMove) {
		return Checkmate
	}
	return Stalemate
}

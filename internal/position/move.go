package position

import "corvidchess/internal/bitboard"

// Move is a packed 32-bit integer:
//
//	bits 0-5:   from-square
//	bits 6-11:  to-square
//	bits 12-15: moving piece
//	bits 16-19: promoted piece (NoPiece = none)
//	bit 20:     capture flag
//	bit 21:     double-pawn-push flag
//	bit 22:     en-passant flag
//	bit 23:     castling flag
type Move uint32

const (
	moveFromShift    = 0
	moveToShift      = 6
	movePieceShift   = 12
	movePromoteShift = 16
	moveCaptureBit   = 1 << 20
	moveDoubleBit    = 1 << 21
	moveEnPassantBit = 1 << 22
	moveCastleBit    = 1 << 23

	moveSquareMask = 0x3f
	movePieceMask  = 0xf
)

// NewMove packs a move from its fields. capture/double/enpassant/castle are
// flags; promoted may be NoPiece.
func NewMove(from, to bitboard.Square, piece, promoted Piece, capture, double, enpassant, castle bool) Move {
	m := Move(from)<<moveFromShift | Move(to)<<moveToShift | Move(piece)<<movePieceShift | Move(promoted)<<movePromoteShift
	if capture {
		m |= moveCaptureBit
	}
	if double {
		m |= moveDoubleBit
	}
	if enpassant {
		m |= moveEnPassantBit
	}
	if castle {
		m |= moveCastleBit
	}
	return m
}

func (m Move) From() bitboard.Square { return bitboard.Square((m >> moveFromShift) & moveSquareMask) }
func (m Move) To() bitboard.Square   { return bitboard.Square((m >> moveToShift) & moveSquareMask) }
func (m Move) Piece() Piece          { return Piece((m >> movePieceShift) & movePieceMask) }
func (m Move) Promoted() Piece       { return Piece((m >> movePromoteShift) & movePieceMask) }
func (m Move) IsCapture() bool       { return m&moveCaptureBit != 0 }
func (m Move) IsDoublePush() bool    { return m&moveDoubleBit != 0 }
func (m Move) IsEnPassant() bool     { return m&moveEnPassantBit != 0 }
func (m Move) IsCastle() bool        { return m&moveCastleBit != 0 }

// IsQuiet reports whether m is neither a capture nor an en-passant capture;
// quiet moves are the ones eligible for killer/history move ordering.
func (m Move) IsQuiet() bool { return !m.IsCapture() }

// String renders m in long algebraic notation ("e2e4", "e7e8q").
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if promo := m.Promoted(); promo != NoPiece {
		s += string(PromotionLetter(promo))
	}
	return s
}

// MoveList is a fixed-capacity buffer of pseudo-legal moves. Chess positions
// never exceed 218 legal moves; 256 slots leaves headroom without needing
// reallocation.
type MoveList struct {
	moves [256]Move
	count int
}

// Add appends m to the list. Emitting a 257th move is a programming-invariant
// violation: no legal chess position produces that many pseudo-legal moves.
func (l *MoveList) Add(m Move) {
	if l.count >= len(l.moves) {
		panic("position: move list overflow")
	}
	l.moves[l.count] = m
	l.count++
}

// Len returns the number of moves currently in the list.
func (l *MoveList) Len() int { return l.count }

// At returns the move at index i.
func (l *MoveList) At(i int) Move { return l.moves[i] }

// Set overwrites the move at index i, used by move-ordering sorts.
func (l *MoveList) Set(i int, m Move) { l.moves[i] = m }

// Swap exchanges the moves at i and j.
func (l *MoveList) Swap(i, j int) { l.moves[i], l.moves[j] = l.moves[j], l.moves[i] }

// Package position implements the board representation, FEN parsing, move
// encoding, pseudo-legal move generation, and make/unmake used by the rest
// of the engine.
package position

// Piece is one of the twelve piece kinds, dense enough to index a
// twelve-entry array. The low six values are white pieces, the high six
// are the corresponding black pieces, so `p < BlackPawn` is a cheap color
// test.
type Piece int8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

// numPieces is the size of a piece-indexed array. NoPiece equals numPieces,
// so it is not a valid index; it is the value the promoted-piece field of a
// Move holds when nothing is promoted.
const numPieces = 12

// Color is one of White or Black. There is no "both" color; that concept
// exists only as an occupancy index (see Board.occupied).
type Color int8

const (
	White Color = iota
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Color reports which side a piece belongs to. Callers must not call this
// with NoPiece.
func (p Piece) Color() Color {
	if p < BlackPawn {
		return White
	}
	return Black
}

// asciiPieces mirrors the FEN piece-letter convention: white uppercase,
// black lowercase, ordered pawn/knight/bishop/rook/queen/king.
const asciiPieces = "PNBRQKpnbrqk"

// Byte returns the FEN letter for p.
func (p Piece) Byte() byte {
	if p == NoPiece {
		return '-'
	}
	return asciiPieces[p]
}

// pieceFromByte maps a FEN placement letter to a Piece, or reports ok=false.
func pieceFromByte(b byte) (Piece, bool) {
	for i := 0; i < len(asciiPieces); i++ {
		if asciiPieces[i] == b {
			return Piece(i), true
		}
	}
	return NoPiece, false
}

// PromotionLetter returns the lowercase UCI promotion letter for a promoted
// piece kind (queen/rook/bishop/knight), color-independent.
func PromotionLetter(p Piece) byte {
	switch p {
	case WhiteQueen, BlackQueen:
		return 'q'
	case WhiteRook, BlackRook:
		return 'r'
	case WhiteBishop, BlackBishop:
		return 'b'
	case WhiteKnight, BlackKnight:
		return 'n'
	default:
		return 0
	}
}

// promotionPiece resolves a UCI promotion letter to a piece of the given
// color; ok is false for anything else.
func promotionPiece(letter byte, c Color) (Piece, bool) {
	var order [4]Piece
	if c == White {
		order = [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
	} else {
		order = [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}
	}
	switch letter {
	case 'q':
		return order[0], true
	case 'r':
		return order[1], true
	case 'b':
		return order[2], true
	case 'n':
		return order[3], true
	}
	return NoPiece, false
}

// CastlingRights is a 4-bit mask: white-kingside, white-queenside,
// black-kingside, black-queenside, from bit 0 to bit 3.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// castlingRightsMask clears exactly the rights invalidated by a piece
// leaving or landing on a given square: corners clear the matching side's
// rook right, king home squares clear both of that color's rights, and
// every other square is a no-op (0b1111). Verbatim from the reference
// engine's CASTLING_RIGHTS table, expressed against a8=0..h1=63 numbering.
var castlingRightsMask = [64]CastlingRights{
	7, 15, 15, 15, 3, 15, 15, 11,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15, 15,
	13, 15, 15, 15, 12, 15, 15, 14,
}

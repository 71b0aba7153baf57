package position

import (
	"errors"
	"strconv"
	"strings"

	"corvidchess/internal/bitboard"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN reports that a FEN string could not be parsed.
var ErrMalformedFEN = errors.New("position: malformed FEN")

// NewFromFEN parses a FEN string into a fresh Board. Only the placement,
// side-to-move, castling-rights, and en-passant fields affect state;
// halfmove/fullmove counters, if present, are ignored.
func NewFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, ErrMalformedFEN
	}

	b := New()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, ErrMalformedFEN
	}
	for r, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := pieceFromByte(c)
			if !ok {
				return nil, ErrMalformedFEN
			}
			if file > 7 {
				return nil, ErrMalformedFEN
			}
			sq := bitboard.Square(r*8 + file)
			b.setPiece(piece, sq)
			file++
		}
		if file != 8 {
			return nil, ErrMalformedFEN
		}
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, ErrMalformedFEN
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				b.castling |= WhiteKingside
			case 'Q':
				b.castling |= WhiteQueenside
			case 'k':
				b.castling |= BlackKingside
			case 'q':
				b.castling |= BlackQueenside
			default:
				return nil, ErrMalformedFEN
			}
		}
	}

	if fields[3] == "-" {
		b.enPassant = bitboard.NoSquare
	} else {
		sq, ok := bitboard.SquareFromString(fields[3])
		if !ok {
			return nil, ErrMalformedFEN
		}
		b.enPassant = sq
	}

	b.recomputeOccupancy()
	return b, nil
}

// NewFromFENOrStartpos parses fen, falling back to the standard starting
// position (and reporting the fallback via ok=false) on malformed input.
// This mirrors the engine's MalformedFEN recovery: local, silent to the
// caller's control flow, logged upstream by whoever holds a logger.
func NewFromFENOrStartpos(fen string) (b *Board, ok bool) {
	if fen == "" || fen == "startpos" {
		b, _ = NewFromFEN(StartFEN)
		return b, true
	}
	parsed, err := NewFromFEN(fen)
	if err != nil {
		fallback, _ := NewFromFEN(StartFEN)
		return fallback, false
	}
	return parsed, true
}

// FEN serializes the board back into standard FEN. Halfmove clock is always
// emitted as 0 and fullmove number is derived from Ply, since the board does
// not track them independently (they are advisory per the data model).
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := bitboard.Square(r*8 + f)
			p := b.PieceAt(sq)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Byte())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castling == 0 {
		sb.WriteByte('-')
	} else {
		if b.castling&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castling&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castling&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castling&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.enPassant == bitboard.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.enPassant.String())
	}

	sb.WriteString(" 0 ")
	sb.WriteString(strconv.Itoa(b.Ply/2 + 1))
	return sb.String()
}

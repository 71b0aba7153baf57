package position

import (
	"errors"

	"corvidchess/internal/bitboard"
)

// ErrUnrecognizedMove reports that a move string does not match any
// pseudo-legal move in the current position.
var ErrUnrecognizedMove = errors.New("position: unrecognized move")

// ApplyMoveString parses a long-algebraic move string ("e2e4", "e7e8q")
// against the current pseudo-legal move list and, if found, makes it. It
// mirrors the reference engine's parseMove: regenerate moves, match by
// from/to/promotion, and reject anything that doesn't match rather than
// trying to interpret the string standalone. The board is left unchanged
// if the move is not found or turns out to be illegal.
func (b *Board) ApplyMoveString(s string) error {
	if len(s) != 4 && len(s) != 5 {
		return ErrUnrecognizedMove
	}
	from, ok := bitboard.SquareFromString(s[0:2])
	if !ok {
		return ErrUnrecognizedMove
	}
	to, ok := bitboard.SquareFromString(s[2:4])
	if !ok {
		return ErrUnrecognizedMove
	}
	var promoLetter byte
	if len(s) == 5 {
		promoLetter = s[4]
	}

	var list MoveList
	b.GenerateMoves(&list)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() != from || m.To() != to {
			continue
		}
		if promoLetter != 0 {
			if PromotionLetter(m.Promoted()) != promoLetter {
				continue
			}
		} else if m.Promoted() != NoPiece {
			continue
		}
		if _, legal := b.Make(m); !legal {
			return ErrUnrecognizedMove
		}
		return nil
	}
	return ErrUnrecognizedMove
}

// NewPosition parses fenOrStartpos (a FEN string, or "startpos"/"" for the
// standard starting position) and replays moves in order, stopping silently
// at the first move that doesn't match a pseudo-legal move in the position
// it was offered against.
func NewPosition(fenOrStartpos string, moves ...string) *Board {
	b, _ := NewFromFENOrStartpos(fenOrStartpos)
	for _, mv := range moves {
		if err := b.ApplyMoveString(mv); err != nil {
			break
		}
	}
	return b
}

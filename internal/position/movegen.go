package position

import "corvidchess/internal/bitboard"

// whitePromotions and blackPromotions give the order promotion moves are
// emitted in: queen, rook, bishop, knight.
var whitePromotions = [4]Piece{WhiteQueen, WhiteRook, WhiteBishop, WhiteKnight}
var blackPromotions = [4]Piece{BlackQueen, BlackRook, BlackBishop, BlackKnight}

// GenerateMoves emits all pseudo-legal moves for the side to move into list.
// One pass per piece kind, in a fixed order (pawns, king incl. castling,
// knights, bishops, rooks, queens) so results are deterministic.
func (b *Board) GenerateMoves(list *MoveList) {
	b.generatePawnMoves(list)
	b.generateKingMoves(list)
	b.generateLeaperOrSliderMoves(list, WhiteKnight, BlackKnight, false)
	b.generateLeaperOrSliderMoves(list, WhiteBishop, BlackBishop, true)
	b.generateLeaperOrSliderMoves(list, WhiteRook, BlackRook, true)
	b.generateLeaperOrSliderMoves(list, WhiteQueen, BlackQueen, true)
}

func (b *Board) generatePawnMoves(list *MoveList) {
	// Squares run rank-8-first (0=a8..63=h1). White starts on rank 2
	// (indices 48-55) and advances toward rank 8 (indices 0-7): decreasing
	// index. Black starts on rank 7 and advances toward rank 1: increasing
	// index.
	c := b.sideToMove
	pawn := WhitePawn
	promotions := &whitePromotions
	forward := -8
	startRank, lastRank := 6, 0
	if c == Black {
		pawn = BlackPawn
		promotions = &blackPromotions
		forward = 8
		startRank, lastRank = 1, 7
	}

	bb := b.pieces[pawn]
	enemyOcc := b.occupied[c.Other()]
	for bb != 0 {
		from := bitboard.PopLSB(&bb)
		to := from + bitboard.Square(forward)

		// Single push.
		if to >= 0 && to < 64 && b.both&to.Bit() == 0 {
			if to.Rank() == lastRank {
				for _, promo := range promotions {
					list.Add(NewMove(from, to, pawn, promo, false, false, false, false))
				}
			} else {
				list.Add(NewMove(from, to, pawn, NoPiece, false, false, false, false))
			}

			// Double push, only from the starting rank, only if the single
			// push square was empty.
			if from.Rank() == startRank {
				to2 := from + bitboard.Square(2*forward)
				if b.both&to2.Bit() == 0 {
					list.Add(NewMove(from, to2, pawn, NoPiece, false, true, false, false))
				}
			}
		}

		// Captures.
		attacks := bitboard.PawnAttacks(int(c), from) & enemyOcc
		for attacks != 0 {
			capTo := bitboard.PopLSB(&attacks)
			if capTo.Rank() == lastRank {
				for _, promo := range promotions {
					list.Add(NewMove(from, capTo, pawn, promo, true, false, false, false))
				}
			} else {
				list.Add(NewMove(from, capTo, pawn, NoPiece, true, false, false, false))
			}
		}

		// En passant.
		if b.enPassant != bitboard.NoSquare {
			if bitboard.PawnAttacks(int(c), from)&b.enPassant.Bit() != 0 {
				list.Add(NewMove(from, b.enPassant, pawn, NoPiece, true, false, true, false))
			}
		}
	}
}

// generateLeaperOrSliderMoves handles knights, bishops, rooks and queens,
// which all share the same "attacks &^ own occupancy" shape.
func (b *Board) generateLeaperOrSliderMoves(list *MoveList, whitePiece, blackPiece Piece, slider bool) {
	c := b.sideToMove
	piece := whitePiece
	if c == Black {
		piece = blackPiece
	}
	ownOcc := b.occupied[c]
	enemyOcc := b.occupied[c.Other()]

	bb := b.pieces[piece]
	for bb != 0 {
		from := bitboard.PopLSB(&bb)
		var attacks bitboard.Bitboard
		if !slider {
			attacks = bitboard.KnightAttacks(from)
		} else {
			switch piece {
			case WhiteBishop, BlackBishop:
				attacks = bitboard.BishopAttacks(from, b.both)
			case WhiteRook, BlackRook:
				attacks = bitboard.RookAttacks(from, b.both)
			case WhiteQueen, BlackQueen:
				attacks = bitboard.QueenAttacks(from, b.both)
			}
		}
		attacks &^= ownOcc
		for attacks != 0 {
			to := bitboard.PopLSB(&attacks)
			capture := enemyOcc&to.Bit() != 0
			list.Add(NewMove(from, to, piece, NoPiece, capture, false, false, false))
		}
	}
}

func (b *Board) generateKingMoves(list *MoveList) {
	c := b.sideToMove
	king := WhiteKing
	if c == Black {
		king = BlackKing
	}
	from := b.KingSquare(c)
	ownOcc := b.occupied[c]
	enemyOcc := b.occupied[c.Other()]

	attacks := bitboard.KingAttacks(from) &^ ownOcc
	for attacks != 0 {
		to := bitboard.PopLSB(&attacks)
		capture := enemyOcc&to.Bit() != 0
		list.Add(NewMove(from, to, king, NoPiece, capture, false, false, false))
	}

	b.generateCastlingMoves(list, c, from)
}

// generateCastlingMoves emits pseudo-legal castling moves. The king's start
// square, the square it crosses, and the destination square must all be
// unattacked by the enemy; the reference algorithm checks only the first
// two, which allows castling into check through an unguarded final square.
// That is a known bug in the source and is fixed here.
func (b *Board) generateCastlingMoves(list *MoveList, c Color, kingFrom bitboard.Square) {
	enemy := c.Other()
	king := WhiteKing
	if c == Black {
		king = BlackKing
	}

	type side struct {
		right      CastlingRights
		emptyMask  bitboard.Bitboard
		crossed    bitboard.Square
		dest       bitboard.Square
	}

	var sides [2]side
	if c == White {
		sides[0] = side{WhiteKingside, sqBit(61) | sqBit(62), 61, 62}
		sides[1] = side{WhiteQueenside, sqBit(57) | sqBit(58) | sqBit(59), 59, 58}
	} else {
		sides[0] = side{BlackKingside, sqBit(5) | sqBit(6), 5, 6}
		sides[1] = side{BlackQueenside, sqBit(1) | sqBit(2) | sqBit(3), 3, 2}
	}

	for _, s := range sides {
		if b.castling&s.right == 0 {
			continue
		}
		if b.both&s.emptyMask != 0 {
			continue
		}
		if b.IsSquareAttacked(kingFrom, enemy) || b.IsSquareAttacked(s.crossed, enemy) || b.IsSquareAttacked(s.dest, enemy) {
			continue
		}
		list.Add(NewMove(kingFrom, s.dest, king, NoPiece, false, false, false, true))
	}
}

func sqBit(i int) bitboard.Bitboard { return bitboard.Square(i).Bit() }

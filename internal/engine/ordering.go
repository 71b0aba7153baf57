package engine

import (
	"context"

	"corvidchess/internal/position"
)

// timeCheckMask gates how often the per-node search loops pay for a
// time.Now() call: every 2048th node, rather than every single one.
const timeCheckMask = 2047

const (
	captureBase = 10000
	killer0Score = 9000
	killer1Score = 8000
)

// mvvLvaValue ranks pieces by material for the "most valuable victim, least
// valuable attacker" table below; kings never appear as a victim since they
// can't be captured, but the slot exists to keep the table indexable by
// every Piece value.
var mvvLvaValue = [12]int{
	position.WhitePawn: 1, position.BlackPawn: 1,
	position.WhiteKnight: 2, position.BlackKnight: 2,
	position.WhiteBishop: 2, position.BlackBishop: 2,
	position.WhiteRook: 3, position.BlackRook: 3,
	position.WhiteQueen: 4, position.BlackQueen: 4,
	position.WhiteKing: 5, position.BlackKing: 5,
}

// mvvLva scores a capture by attacker/victim piece: higher-valued victims
// score higher regardless of attacker, and among equal victims a
// lower-valued attacker scores higher. The 12x12 table is built once at
// package init from mvvLvaValue rather than hand-transcribed, since the
// formula is exactly "victim tier outweighs attacker tier".
var mvvLva [12][12]int

func init() {
	for attacker := 0; attacker < 12; attacker++ {
		for victim := 0; victim < 12; victim++ {
			mvvLva[attacker][victim] = mvvLvaValue[victim]*10 - mvvLvaValue[attacker]
		}
	}
}

// SearchContext bundles the per-search-invocation state that the reference
// engine keeps as module-level globals: killer moves (two slots per ply),
// the history heuristic table, and the triangular PV table. A fresh
// SearchContext is constructed for every root search and discarded after,
// so nothing survives between unrelated searches.
type SearchContext struct {
	killer  [2][maxPly]position.Move
	history [12][64]int

	pvTable  [maxPly][maxPly]position.Move
	pvLength [maxPly]int

	nodes int64
	timer Timer
}

const maxPly = 128

// timeUp reports whether the search should stop: the context is checked on
// every call (cheap, a non-blocking select), but the wall-clock timer is
// only sampled every timeCheckMask+1 nodes, since time.Now() is comparatively
// expensive to call at every node of a fast negamax/quiescence walk.
func (sc *SearchContext) timeUp(ctx context.Context) bool {
	if ctxDone(ctx) {
		return true
	}
	if sc.nodes&timeCheckMask != 0 {
		return false
	}
	return sc.timer.Elapsed()
}

// scoreMove ranks a move for ordering: captures use MVV-LVA with a
// constant offset to always outrank quiet moves, killer moves at this ply
// come next, and everything else falls back to its history score.
func (sc *SearchContext) scoreMove(b *position.Board, m position.Move, ply int) int {
	if m.IsCapture() {
		victim := b.PieceAt(m.To())
		if m.IsEnPassant() || victim == position.NoPiece {
			// En-passant's victim pawn no longer sits on the destination
			// square by the time ordering runs pre-make; default to a pawn,
			// matching the reference engine's convention.
			if m.Piece().Color() == position.White {
				victim = position.BlackPawn
			} else {
				victim = position.WhitePawn
			}
		}
		return mvvLva[m.Piece()][victim] + captureBase
	}
	if ply < maxPly {
		if sc.killer[0][ply] == m {
			return killer0Score
		}
		if sc.killer[1][ply] == m {
			return killer1Score
		}
	}
	return sc.history[m.Piece()][m.To()]
}

// orderMoves scores every move in list against the current position and
// sorts descending by score with a simple O(n^2) selection sort: search
// move lists never exceed a few dozen entries, so this is cheap enough not
// to warrant anything fancier.
func (sc *SearchContext) orderMoves(b *position.Board, list *position.MoveList, ply int) {
	n := list.Len()
	scores := make([]int, n)
	for i := 0; i < n; i++ {
		scores[i] = sc.scoreMove(b, list.At(i), ply)
	}
	for i := 0; i < n; i++ {
		best := i
		for j := i + 1; j < n; j++ {
			if scores[j] > scores[best] {
				best = j
			}
		}
		if best != i {
			scores[i], scores[best] = scores[best], scores[i]
			list.Swap(i, best)
		}
	}
}

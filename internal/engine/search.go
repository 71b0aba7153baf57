package engine

import (
	"context"
	"fmt"

	"corvidchess/internal/position"
)

// Mate is the score magnitude assigned to a forced checkmate; the actual
// returned score is offset by ply so that shorter mates score higher (the
// engine prefers the fastest win and the slowest loss).
const Mate = 49000

const infinity = 50000

// SearchBound describes what should stop a search: a fixed depth or a time
// budget in milliseconds. Perft requests do not go through Search; they use
// Board.Perft and Board.PerftDivide directly.
type SearchBound struct {
	Depth      int
	MovetimeMs int64
}

// Result is everything a completed search reports: the best move found (the
// zero Move if none), its score, and the info lines emitted for each
// completed iterative-deepening iteration.
type Result struct {
	BestMove          position.Move
	Score             int
	Nodes             int64
	Info              []string
	AspirationRetries int
}

// Search runs iterative-deepening negamax from the current position up to
// bound.Depth plies (or until bound.MovetimeMs elapses, whichever comes
// first), honoring ctx for cooperative cancellation alongside the timer.
// The reference engine polls only a wall-clock timer; this threads a
// context.Context as well so an external caller (a command dispatcher
// handling a "stop"-equivalent signal) can preempt an in-flight search
// without waiting for its time budget to lapse.
func Search(ctx context.Context, b *position.Board, bound SearchBound) Result {
	sc := &SearchContext{}
	remaining, increment := UnlimitedRemainingMs, UnlimitedIncrementMs
	if bound.MovetimeMs > 0 {
		remaining = bound.MovetimeMs * thinkingTimeRatio
	}
	sc.timer.Start(remaining, increment)

	depth := bound.Depth
	if depth <= 0 {
		depth = 64 // effectively unbounded; the timer or ctx will cut it off.
	}

	var res Result
	alpha, beta := -infinity, infinity

	for d := 1; d <= depth; d++ {
		if sc.timer.Elapsed() || ctxDone(ctx) {
			break
		}

		score := sc.negamax(ctx, b, alpha, beta, d, 0)

		if score <= alpha || score >= beta {
			res.AspirationRetries++
			alpha, beta = -infinity, infinity
			// Retry the same depth once with a full window.
			score = sc.negamax(ctx, b, alpha, beta, d, 0)
		}
		alpha, beta = score-50, score+50

		if sc.timer.Elapsed() || ctxDone(ctx) {
			break
		}

		res.Score = score
		res.Nodes = sc.nodes
		res.BestMove = sc.pvTable[0][0]
		res.Info = append(res.Info, formatInfoLine(score, d, sc.nodes, sc.pvLine()))
	}

	res.Nodes = sc.nodes
	return res
}

func ctxDone(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (sc *SearchContext) pvLine() []position.Move {
	n := sc.pvLength[0]
	line := make([]position.Move, n)
	copy(line, sc.pvTable[0][:n])
	return line
}

func formatInfoLine(score, depth int, nodes int64, pv []position.Move) string {
	line := fmt.Sprintf("info score cp %d depth %d nodes %d pv", score, depth, nodes)
	for _, m := range pv {
		line += " " + m.String()
	}
	return line
}

// negamax implements the search recursion described in the design: check
// extension, fail-hard alpha-beta, killer/history-driven move ordering, and
// triangular PV table maintenance.
func (sc *SearchContext) negamax(ctx context.Context, b *position.Board, alpha, beta, depth, ply int) int {
	// Check extension keeps depth from shrinking along a checking line, and
	// there is no repetition/fifty-move detection (a stated non-goal), so a
	// perpetual-check line can otherwise recurse indefinitely. Cap ply and
	// fall back to a static evaluation once the PV/killer tables run out of
	// room.
	if ply >= maxPly {
		return Evaluate(b)
	}

	sc.pvLength[ply] = ply

	if depth == 0 {
		return sc.quiescence(ctx, b, alpha, beta, ply)
	}

	inCheck := b.InCheck(b.SideToMove())
	if inCheck {
		depth++
	}

	var list position.MoveList
	b.GenerateMoves(&list)
	sc.orderMoves(b, &list, ply)

	sc.nodes++
	legalCount := 0

	for i := 0; i < list.Len(); i++ {
		if sc.timeUp(ctx) {
			break
		}
		m := list.At(i)
		undo, ok := b.Make(m)
		if !ok {
			continue
		}
		legalCount++

		score := -sc.negamax(ctx, b, -beta, -alpha, depth-1, ply+1)
		b.Unmake(undo)

		if score >= beta {
			if m.IsQuiet() && ply < maxPly {
				sc.killer[1][ply] = sc.killer[0][ply]
				sc.killer[0][ply] = m
			}
			return beta
		}
		if score > alpha {
			if m.IsQuiet() {
				sc.history[m.Piece()][m.To()] += depth
			}
			alpha = score
			sc.pvTable[ply][ply] = m
			if ply+1 < maxPly {
				for n := ply + 1; n < sc.pvLength[ply+1]; n++ {
					sc.pvTable[ply][n] = sc.pvTable[ply+1][n]
				}
				sc.pvLength[ply] = sc.pvLength[ply+1]
			} else {
				sc.pvLength[ply] = ply + 1
			}
		}
	}

	if legalCount == 0 {
		if inCheck {
			return -Mate + ply
		}
		return 0
	}
	return alpha
}

// quiescence extends the search along capture sequences past the nominal
// depth to avoid the horizon effect, per the standard stand-pat plus
// captures-only recursion.
func (sc *SearchContext) quiescence(ctx context.Context, b *position.Board, alpha, beta, ply int) int {
	sc.nodes++
	standPat := Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var list position.MoveList
	b.GenerateMoves(&list)
	sc.orderMoves(b, &list, ply)

	for i := 0; i < list.Len(); i++ {
		if sc.timeUp(ctx) {
			break
		}
		m := list.At(i)
		if !m.IsCapture() {
			continue
		}
		undo, ok := b.Make(m)
		if !ok {
			continue
		}
		score := -sc.quiescence(ctx, b, -beta, -alpha, ply+1)
		b.Unmake(undo)

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

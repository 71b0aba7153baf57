// Command engine is a thin line-oriented driver over the playing core. It
// deliberately does not speak the full chess-GUI protocol (UCI framing,
// option negotiation, "isready"/"ucinewgame" handshakes) — that dispatcher
// is an external collaborator. This binary exposes only the core's own
// minimal command surface, for manual testing and scripting against a
// running engine process.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"corvidchess/internal/engine"
	"corvidchess/internal/position"
)

func main() {
	logger := log.New(os.Stderr, "", 0)
	scanner := bufio.NewScanner(os.Stdin)
	board := position.NewPosition("startpos")

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)

		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Printf("warning: command %q panicked: %v", line, r)
				}
			}()
			handleCommand(logger, &board, tokens)
		}()

		if tokens[0] == "quit" {
			return
		}
	}
}

func handleCommand(logger *log.Logger, board **position.Board, tokens []string) {
	switch tokens[0] {
	case "quit":
		return

	case "position":
		if len(tokens) < 2 {
			logger.Printf("warning: position requires a FEN or startpos argument")
			return
		}
		var fenOrStartpos string
		rest := tokens[1:]
		if tokens[1] == "startpos" {
			fenOrStartpos = "startpos"
			rest = tokens[2:]
		} else if tokens[1] == "fen" {
			if len(tokens) < 6 {
				logger.Printf("warning: malformed FEN in position command")
				fenOrStartpos = "startpos"
				rest = tokens[2:]
			} else {
				fenOrStartpos = strings.Join(tokens[2:6], " ")
				rest = tokens[6:]
			}
		}
		var moves []string
		for i, tok := range rest {
			if tok == "moves" {
				moves = rest[i+1:]
				break
			}
		}
		if _, ok := position.NewFromFENOrStartpos(fenOrStartpos); !ok {
			logger.Printf("warning: malformed FEN %q, using the starting position", fenOrStartpos)
		}
		*board = position.NewPosition(fenOrStartpos, moves...)

	case "go":
		bound := parseSearchBound(tokens[1:])
		if bound.perft > 0 {
			runPerft(*board, bound.perft)
			return
		}
		res := engine.Search(context.Background(), *board, engine.SearchBound{
			Depth:      bound.depth,
			MovetimeMs: bound.movetimeMs,
		})
		for _, line := range res.Info {
			fmt.Println(line)
		}
		fmt.Printf("bestmove %s\n", res.BestMove)

	default:
		logger.Printf("warning: unrecognized command %q", tokens[0])
	}
}

type searchBound struct {
	depth      int
	movetimeMs int64
	perft      int
}

func parseSearchBound(tokens []string) searchBound {
	var b searchBound
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "depth":
			if i+1 < len(tokens) {
				b.depth, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		case "movetime":
			if i+1 < len(tokens) {
				n, _ := strconv.Atoi(tokens[i+1])
				b.movetimeMs = int64(n)
				i++
			}
		case "perft":
			if i+1 < len(tokens) {
				b.perft, _ = strconv.Atoi(tokens[i+1])
				i++
			}
		}
	}
	return b
}

func runPerft(board *position.Board, depth int) {
	start := time.Now()
	splits, total := board.PerftDivide(depth)
	for _, s := range splits {
		fmt.Printf("%s: %d\n", s.Move, s.Nodes)
	}
	fmt.Printf("    Depth: %d\n", depth)
	fmt.Printf("    Nodes: %d\n", total)
	fmt.Printf("    Time: %d ms\n", time.Since(start).Milliseconds())
}

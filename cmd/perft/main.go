// Command perft is a standalone move-generator correctness oracle: it
// enumerates leaf positions to a fixed depth and reports per-root-move
// splits, using the same Board.Perft/PerftDivide that the engine driver's
// "go perft" command uses.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"corvidchess/internal/position"
)

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string (defaults to the starting position)")
	depth := flag.Int("depth", 0, "perft depth (required, must be > 0)")
	divide := flag.Bool("divide", true, "print per-root-move node counts")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := position.NewFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing FEN: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	if *divide {
		splits, total := b.PerftDivide(*depth)
		sort.Slice(splits, func(i, j int) bool { return splits[i].Move < splits[j].Move })
		for _, s := range splits {
			fmt.Printf("%s: %d\n", s.Move, s.Nodes)
		}
		elapsed := time.Since(start)
		fmt.Printf("    Depth: %d\n", *depth)
		fmt.Printf("    Nodes: %d\n", total)
		fmt.Printf("    Time: %d ms\n", elapsed.Milliseconds())
		return
	}

	nodes := b.Perft(*depth)
	elapsed := time.Since(start)
	fmt.Printf("    Depth: %d\n", *depth)
	fmt.Printf("    Nodes: %d\n", nodes)
	fmt.Printf("    Time: %d ms\n", elapsed.Milliseconds())
}

// Command boardsvg renders a FEN position as an SVG board diagram. It has
// no bearing on search or move generation; it exists to give a visual
// inspection tool to whoever is debugging a position, using the same svgo
// primitives the wider example corpus lists as a dependency but never
// wires up.
package main

import (
	"flag"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"corvidchess/internal/bitboard"
	"corvidchess/internal/position"
)

const squareSize = 60

func main() {
	fen := flag.String("fen", position.StartFEN, "FEN string to render")
	out := flag.String("out", "", "output file (defaults to stdout)")
	flag.Parse()

	b, err := position.NewFromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parsing FEN: %v\n", err)
		os.Exit(2)
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating output file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		w = f
	}

	render(w, b)
}

func render(w *os.File, b *position.Board) {
	dim := squareSize * 8
	canvas := svg.New(w)
	canvas.Start(dim, dim)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := file*squareSize, rank*squareSize
			light := "#eeeed2"
			if (rank+file)%2 == 1 {
				light = "#769656"
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill:"+light)

			sq := bitboard.Square(rank*8 + file)
			piece := b.PieceAt(sq)
			if piece == position.NoPiece {
				continue
			}
			label := string(piece.Byte())
			fill := "black"
			if piece.Color() == position.White {
				fill = "white"
			}
			canvas.Text(x+squareSize/2, y+squareSize/2+squareSize/6, label,
				fmt.Sprintf("text-anchor:middle;font-size:%dpx;fill:%s;stroke:black;stroke-width:1", squareSize*2/3, fill))
		}
	}

	canvas.End()
}

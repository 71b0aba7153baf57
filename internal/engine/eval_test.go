package engine

import (
	"testing"

	"corvidchess/internal/position"
)

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b, err := position.NewFromFEN(position.StartFEN)
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(b); got != 0 {
		t.Fatalf("expected a symmetric starting position to evaluate to 0, got %d", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	b, err := position.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	if got := Evaluate(b); got <= 0 {
		t.Fatalf("expected white (to move, up a queen) to evaluate positively, got %d", got)
	}
}

func TestEvaluateFlipsSignForBlackToMove(t *testing.T) {
	white, err := position.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	black, err := position.NewFromFEN("4k3/8/8/8/8/8/8/Q3K3 b - -")
	if err != nil {
		t.Fatal(err)
	}
	if Evaluate(white) != -Evaluate(black) {
		t.Fatalf("evaluation should flip sign with side to move: white=%d black=%d", Evaluate(white), Evaluate(black))
	}
}

func TestMirrorSquareReflectsRanks(t *testing.T) {
	if mirrorSquare[0] != 56 {
		t.Fatalf("mirror of a8 (0) should be a1 (56), got %d", mirrorSquare[0])
	}
	if mirrorSquare[63] != 7 {
		t.Fatalf("mirror of h1 (63) should be h8 (7), got %d", mirrorSquare[63])
	}
}

package main

import (
	"testing"

	"chesscore/internal/chess"
)

func TestPlayRandomKeepsInvariants(t *testing.T) {
	start := chess.NewStandardBoard()
	for seed := int64(1); seed <= 20; seed++ {
		res, err := playRandom(start, seed, 150)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if res.Plies == 0 {
			t.Fatalf("seed %d: no plies played", seed)
		}
		if res.Score < -39 || res.Score > 39 {
			t.Fatalf("seed %d: score out of range: %d", seed, res.Score)
		}
	}
	if start.EncodePlacement() != chess.StandardPlacement || start.SideToMove() != chess.White {
		t.Fatalf("shared start board was modified: %s", start.EncodePlacement())
	}
}

func TestPlayRandomDeterministic(t *testing.T) {
	start := chess.NewStandardBoard()
	a, errA := playRandom(start, 42, 80)
	b, errB := playRandom(start, 42, 80)
	if errA != nil || errB != nil {
		t.Fatalf("errors: %v / %v", errA, errB)
	}
	if a != b {
		t.Fatalf("same seed diverged: %+v vs %+v", a, b)
	}
}

package main

import (
	"fmt"
	"math/rand"

	"chesscore/internal/chess"
)

type result struct {
	Plies    int
	Captures int
	Score    int
}

type candidate struct {
	piece *chess.Piece
	to    chess.Square
}

// playRandom 在 start 的副本上随机走子，直到 maxPlies 或当前方无路可走。
// start 只读，可被多个 worker 共用。
func playRandom(start *chess.Board, seed int64, maxPlies int) (result, error) {
	rng := rand.New(rand.NewSource(seed))
	b := start.Clone()
	var res result
	for res.Plies < maxPlies {
		var cands []candidate
		for _, p := range b.ActivePieces(b.SideToMove()) {
			for _, sq := range b.Destinations(p) {
				cands = append(cands, candidate{p, sq})
			}
		}
		if len(cands) == 0 {
			break
		}
		c := cands[rng.Intn(len(cands))]
		_, capture := b.PieceAt(c.to)
		if err := b.ApplyMove(c.piece, c.to); err != nil {
			return res, fmt.Errorf("seed %d ply %d %v->%s: %w", seed, res.Plies, c.piece, c.to, err)
		}
		res.Plies++
		if capture {
			res.Captures++
		}
		if b.Hash() != b.CalculateHash() {
			return res, fmt.Errorf("seed %d ply %d: %w: hash drift", seed, res.Plies, chess.ErrConsistencyViolation)
		}
	}
	res.Score = b.MaterialScore()
	return res, nil
}

package chess

import "sync"

const zobristKinds = int(King) + 1 // Kind 取 1..6，0 不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristSide   uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(p *Piece, sq Square) uint64 {
	if p == nil || !p.Kind.Valid() {
		return 0
	}
	initZobrist()
	switch p.Side {
	case White, Black:
		return zobristPieces[sideIndex(p.Side)][p.Kind][sq.Index()]
	}
	return 0
}

// CalculateHash 全量计算当前局面（在场棋子 + 轮走方）的 Zobrist 哈希。
func (b *Board) CalculateHash() uint64 {
	initZobrist()

	var h uint64
	for _, list := range b.active {
		for _, p := range list {
			h ^= pieceHashKey(p, p.square)
		}
	}
	if b.toMove == Black {
		h ^= zobristSide
	}
	return h
}

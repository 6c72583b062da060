package chess

import (
	"fmt"
	"slices"
)

// LegalDestinations 用当前占位截断射线。滑行棋子停在第一个有子的格子之前；
// 马和王保留所有不是己方占着的格子。滑行方向上的吃子由 CaptureTargets 给出。
func (b *Board) LegalDestinations(p *Piece) []Square {
	if !b.isActive(p) {
		return nil
	}
	grid := b.grid()
	var out []Square
	for _, d := range p.reach.Directions() {
		for _, sq := range p.reach[d] {
			occ := grid[sq.Index()]
			if occ == nil {
				out = append(out, sq)
				continue
			}
			if p.Kind.Sliding() {
				break
			}
			if occ.Side != p.Side {
				out = append(out, sq)
			}
		}
	}
	return out
}

// CaptureTargets 能吃到的对方棋子所在格。射线在第一个有子的格子处结束，不论是哪方的子。
func (b *Board) CaptureTargets(p *Piece) []Square {
	if !b.isActive(p) {
		return nil
	}
	grid := b.grid()
	var out []Square
	for _, d := range p.attack.Directions() {
		for _, sq := range p.attack[d] {
			occ := grid[sq.Index()]
			if occ == nil {
				continue
			}
			if occ.Side != p.Side {
				out = append(out, sq)
			}
			if p.Kind.Sliding() {
				break
			}
		}
	}
	return out
}

// Destinations 本回合所有可走格，已排序。
func (b *Board) Destinations(p *Piece) []Square {
	out := append(b.LegalDestinations(p), b.CaptureTargets(p)...)
	slices.SortFunc(out, Square.Compare)
	return slices.Compact(out)
}

// DestinationsAt 走法提示：sq 上在场棋子的可走格
func (b *Board) DestinationsAt(sq Square) ([]Square, error) {
	p, ok := b.PieceAt(sq)
	if !ok {
		return nil, fmt.Errorf("%w: nothing on %s", ErrNoMatchingPiece, sq)
	}
	return b.Destinations(p), nil
}

// ApplyMove 把 p 走到 dst；被拒绝时棋盘不变。
func (b *Board) ApplyMove(p *Piece, dst Square) error {
	if !b.isActive(p) {
		return fmt.Errorf("%w: %v is not an active piece", ErrNoMatchingPiece, p)
	}
	if p.Side != b.toMove {
		return fmt.Errorf("%w: %v moved on %s's turn", ErrNoMatchingPiece, p, b.toMove)
	}
	if !slices.Contains(b.Destinations(p), dst) {
		return fmt.Errorf("%w: %c%s->%s", ErrIllegalMove, p.Kind.Letter(), p.square, dst)
	}

	saved := b.saveLists()
	from := p.square
	victim, _ := b.PieceAt(dst)
	if victim != nil {
		victim.capture()
	}
	p.moveTo(dst)
	b.reconcile()
	if err := b.verify(); err != nil {
		b.restoreLists(saved)
		p.moveTo(from)
		if victim != nil {
			victim.alive = true
		}
		return err
	}

	h := b.hash
	h ^= pieceHashKey(p, from)
	if victim != nil {
		h ^= pieceHashKey(victim, dst)
	}
	h ^= pieceHashKey(p, dst)
	h ^= zobristSide
	b.hash = h
	b.toMove = b.toMove.Opponent()
	return nil
}

// Move 找到当前方在 src 的棋子，走到 dst。
func (b *Board) Move(src, dst Square) error {
	p := b.pieceOf(b.toMove, src)
	if p == nil {
		return fmt.Errorf("%w: %s has no piece on %s", ErrNoMatchingPiece, b.toMove, src)
	}
	return b.ApplyMove(p, dst)
}

// Play 文本着法，如 "Ne5->d3"；兵种必须对得上。
func (b *Board) Play(m MoveText) error {
	p := b.pieceOf(b.toMove, m.From)
	if p == nil || p.Kind != m.Kind {
		return fmt.Errorf("%w: %s has no %s on %s", ErrNoMatchingPiece, b.toMove, m.Kind, m.From)
	}
	return b.ApplyMove(p, m.To)
}

func (b *Board) pieceOf(side Side, sq Square) *Piece {
	for _, p := range b.active[sideIndex(side)] {
		if p.square == sq {
			return p
		}
	}
	return nil
}

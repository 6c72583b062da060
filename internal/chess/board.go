package chess

import (
	"fmt"
	"slices"
)

// Board 持有一局的全部棋子：双方的在场/被吃列表、轮到谁走、局面哈希。
type Board struct {
	active [2][]*Piece
	dead   [2][]*Piece
	toMove Side
	hash   uint64
	nextID int
}

func NewBoard(toMove Side) *Board {
	if toMove != Black {
		toMove = White
	}
	b := &Board{toMove: toMove}
	b.hash = b.CalculateHash()
	return b
}

// NewStandardBoard 标准开局 32 子，白先。
func NewStandardBoard() *Board {
	b, err := DecodePlacement(StandardPlacement)
	if err != nil {
		panic("standard placement: " + err.Error())
	}
	return b
}

func sideIndex(s Side) int {
	if s == Black {
		return 1
	}
	return 0
}

// AddPiece p 必须是 NewPiece 新建的；已属于本棋盘或其他棋盘的棋子直接拒绝。
// 落在已占格上会回滚，并返回 *ConsistencyError。
func (b *Board) AddPiece(p *Piece) error {
	if p == nil || !p.Kind.Valid() || (p.Side != White && p.Side != Black) {
		return fmt.Errorf("%w: bad piece %v", ErrInvalidPlacement, p)
	}
	if p.ID != -1 || b.owns(p) {
		return fmt.Errorf("%w: %v already belongs to a board", ErrInvalidPlacement, p)
	}
	saved := b.saveLists()

	p.ID = b.nextID
	i := sideIndex(p.Side)
	b.active[i] = append(b.active[i], p)
	b.reconcile()
	if err := b.verify(); err != nil {
		b.restoreLists(saved)
		p.ID = -1
		return err
	}
	b.nextID++
	b.hash = b.CalculateHash()
	return nil
}

// Place 新建棋子并 AddPiece
func (b *Board) Place(kind Kind, side Side, sq Square) (*Piece, error) {
	p := NewPiece(kind, side, sq)
	if err := b.AddPiece(p); err != nil {
		return nil, err
	}
	return p, nil
}

// reconcile 把被吃的棋子从在场列表挪到被吃列表
func (b *Board) reconcile() {
	for i := range b.active {
		kept := b.active[i][:0]
		for _, p := range b.active[i] {
			if p.alive {
				kept = append(kept, p)
			} else {
				b.dead[i] = append(b.dead[i], p)
			}
		}
		clear(b.active[i][len(kept):])
		b.active[i] = kept
	}
}

// verify 检查每格最多一个在场棋子
func (b *Board) verify() error {
	var counts [NumSquares]int
	for _, list := range b.active {
		for _, p := range list {
			counts[p.square.Index()]++
		}
	}
	for i, n := range counts {
		if n > 1 {
			return &ConsistencyError{Square: squareFromIndex(i), Count: n}
		}
	}
	return nil
}

type savedLists struct {
	active [2][]*Piece
	dead   [2][]*Piece
}

func (b *Board) saveLists() savedLists {
	var s savedLists
	for i := range b.active {
		s.active[i] = slices.Clone(b.active[i])
		s.dead[i] = slices.Clone(b.dead[i])
	}
	return s
}

func (b *Board) restoreLists(s savedLists) {
	b.active = s.active
	b.dead = s.dead
}

func (b *Board) owns(p *Piece) bool {
	if p == nil {
		return false
	}
	i := sideIndex(p.Side)
	return slices.Contains(b.active[i], p) || slices.Contains(b.dead[i], p)
}

func (b *Board) isActive(p *Piece) bool {
	return p != nil && p.alive && slices.Contains(b.active[sideIndex(p.Side)], p)
}

// grid 当前占位，下标为 Square.Index
func (b *Board) grid() *[NumSquares]*Piece {
	var g [NumSquares]*Piece
	for _, list := range b.active {
		for _, p := range list {
			g[p.square.Index()] = p
		}
	}
	return &g
}

func (b *Board) PieceAt(sq Square) (*Piece, bool) {
	p := b.grid()[sq.Index()]
	return p, p != nil
}

func (b *Board) SideToMove() Side { return b.toMove }

func (b *Board) Hash() uint64 { return b.hash }

// ActivePieces 返回副本
func (b *Board) ActivePieces(side Side) []*Piece {
	return slices.Clone(b.active[sideIndex(side)])
}

func (b *Board) DeadPieces(side Side) []*Piece {
	return slices.Clone(b.dead[sideIndex(side)])
}

// Snapshot 供绘制用：先白后黑，先在场后被吃。
func (b *Board) Snapshot() []PieceView {
	var out []PieceView
	for i := range b.active {
		for _, p := range b.active[i] {
			out = append(out, p.View())
		}
		for _, p := range b.dead[i] {
			out = append(out, p.View())
		}
	}
	return out
}

// Clone 深拷贝，棋子也复制一份，不共享。
func (b *Board) Clone() *Board {
	nb := &Board{toMove: b.toMove, hash: b.hash, nextID: b.nextID}
	cp := func(list []*Piece) []*Piece {
		out := make([]*Piece, len(list))
		for i, p := range list {
			q := *p
			out[i] = &q
		}
		return out
	}
	for i := range b.active {
		nb.active[i] = cp(b.active[i])
		nb.dead[i] = cp(b.dead[i])
	}
	return nb
}

package chess

import "fmt"

// Piece 加入后只属于一个 Board。射线表按空棋盘计算，只对当前所在格有效。
// 外部只读，所有修改都经过 Board。
type Piece struct {
	ID   int
	Kind Kind
	Side Side

	alive  bool
	square Square
	reach  Rays
	attack Rays
}

func NewPiece(kind Kind, side Side, sq Square) *Piece {
	p := &Piece{
		ID:     -1,
		Kind:   kind,
		Side:   side,
		alive:  true,
		square: sq,
	}
	p.recompute()
	return p
}

// recompute 按当前格重建两张射线表
func (p *Piece) recompute() {
	p.reach = Reachable(p.Kind, p.Side, p.square)
	p.attack = AttackRays(p.Kind, p.Side, p.square)
}

// moveTo 不做合法性检查，只由持有它的 Board 调用。
func (p *Piece) moveTo(sq Square) {
	p.square = sq
	p.recompute()
}

func (p *Piece) capture() { p.alive = false }

func (p *Piece) Square() Square  { return p.square }
func (p *Piece) Alive() bool     { return p.alive }
func (p *Piece) Reachable() Rays { return p.reach }
func (p *Piece) Attacks() Rays   { return p.attack }
func (p *Piece) Value() int      { return p.Kind.Value() }

// String 如 "Nw@e4"，被吃后为 "Nw@e4(x)"。
func (p *Piece) String() string {
	s := fmt.Sprintf("%c%c@%s", p.Kind.Letter(), p.Side.Letter(), p.square)
	if !p.alive {
		s += "(x)"
	}
	return s
}

// PieceView 给绘制和传输层的只读视图
type PieceView struct {
	ID     int    `json:"id"`
	Side   Side   `json:"side"`
	Kind   Kind   `json:"kind"`
	Square Square `json:"square"`
	Alive  bool   `json:"alive"`
}

func (p *Piece) View() PieceView {
	return PieceView{ID: p.ID, Side: p.Side, Kind: p.Kind, Square: p.square, Alive: p.alive}
}

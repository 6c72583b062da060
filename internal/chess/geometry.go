package chess

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Direction 单位步长 (dx,dy)，代表从某格出发的一条射线。
type Direction struct {
	DX, DY int8
}

// Jump 马的唯一分组：马走日不会被挡，所以不分方向。
var Jump = Direction{0, 0}

func (d Direction) String() string {
	return "(" + signed(d.DX) + "," + signed(d.DY) + ")"
}

func signed(v int8) string {
	switch {
	case v > 0:
		return "+1"
	case v < 0:
		return "-1"
	}
	return "0"
}

var (
	rookDirs   = [4]Direction{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	bishopDirs = [4]Direction{{1, 1}, {-1, 1}, {-1, -1}, {1, -1}}
)

// dirOrder 固定射线表的遍历顺序
var dirOrder = map[Direction]int{
	{1, 0}: 0, {0, 1}: 1, {-1, 0}: 2, {0, -1}: 3,
	{1, 1}: 4, {-1, 1}: 5, {-1, -1}: 6, {1, -1}: 7,
	Jump: 8,
}

// Rays 方向 -> 沿该方向的格子，由近到远。
type Rays map[Direction][]Square

// Directions 按固定顺序返回所有方向
func (r Rays) Directions() []Direction {
	dirs := maps.Keys(r)
	slices.SortFunc(dirs, func(a, b Direction) int {
		return dirOrder[a] - dirOrder[b]
	})
	return dirs
}

// Squares 按方向顺序展开
func (r Rays) Squares() []Square {
	var out []Square
	for _, d := range r.Directions() {
		out = append(out, r[d]...)
	}
	return out
}

// Reachable 空棋盘上该棋子能到达的格子
func Reachable(kind Kind, side Side, from Square) Rays {
	rays := make(Rays)
	switch kind {
	case Pawn:
		pawnPushes(side, from, rays)
	case Knight:
		knightJumps(from, rays)
	case Bishop:
		slide(from, bishopDirs[:], rays)
	case Rook:
		slide(from, rookDirs[:], rays)
	case Queen:
		slide(from, rookDirs[:], rays)
		slide(from, bishopDirs[:], rays)
	case King:
		kingSteps(from, rays)
	}
	return rays
}

// AttackRays 除兵以外与 Reachable 相同；兵斜吃。
func AttackRays(kind Kind, side Side, from Square) Rays {
	if kind == Pawn {
		rays := make(Rays)
		pawnAttacks(side, from, rays)
		return rays
	}
	return Reachable(kind, side, from)
}

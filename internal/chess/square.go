package chess

import "fmt"

const (
	Files      = 8
	Ranks      = 8
	NumSquares = Files * Ranks
)

// Square 不可变坐标 (file, rank)，都从 0 开始：a1 = (0,0)，h8 = (7,7)。
type Square struct {
	File int8
	Rank int8
}

func onBoard(file, rank int) bool {
	return file >= 0 && file < Files && rank >= 0 && rank < Ranks
}

func NewSquare(file, rank int) (Square, error) {
	if !onBoard(file, rank) {
		return Square{}, fmt.Errorf("%w: (%d,%d) outside [0,7]", ErrInvalidCoordinate, file, rank)
	}
	return Square{File: int8(file), Rank: int8(rank)}, nil
}

// ParseSquare 解析 "e4" 这样的代数记法，列字母可大写。
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q is not two characters", ErrInvalidCoordinate, s)
	}
	f, r := s[0], s[1]
	if f >= 'A' && f <= 'H' {
		f += 'a' - 'A'
	}
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidCoordinate, s)
	}
	return Square{File: int8(f - 'a'), Rank: int8(r - '1')}, nil
}

// MustSquare 只用于初始化代码和测试里的字面量
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

func squareFromIndex(i int) Square {
	return Square{File: int8(i % Files), Rank: int8(i / Files)}
}

func (s Square) Grid() (file, rank int) { return int(s.File), int(s.Rank) }

func (s Square) Index() int { return int(s.Rank)*Files + int(s.File) }

func (s Square) String() string {
	return string([]byte{'a' + byte(s.File), '1' + byte(s.Rank)})
}

// Compare 先比列再比行
func (s Square) Compare(o Square) int {
	switch {
	case s.File < o.File:
		return -1
	case s.File > o.File:
		return 1
	case s.Rank < o.Rank:
		return -1
	case s.Rank > o.Rank:
		return 1
	}
	return 0
}

func (s Square) Less(o Square) bool { return s.Compare(o) < 0 }

// Offset 偏移 (dx,dy) 后的格子；出界返回 false。
func (s Square) Offset(dx, dy int) (Square, bool) {
	f, r := int(s.File)+dx, int(s.Rank)+dy
	if !onBoard(f, r) {
		return Square{}, false
	}
	return Square{File: int8(f), Rank: int8(r)}, true
}

// MarshalText JSON 中以 "e4" 形式传输
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(b []byte) error {
	sq, err := ParseSquare(string(b))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

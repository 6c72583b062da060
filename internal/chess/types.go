package chess

import "fmt"

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) Opponent() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// Letter 局面串里的单字符：w / b
func (s Side) Letter() byte {
	if s == Black {
		return 'b'
	}
	return 'w'
}

// Forward 兵前进方向
func (s Side) Forward() int {
	switch s {
	case White:
		return +1
	case Black:
		return -1
	}
	return 0
}

// PawnRank 兵的起始行（从 0 开始）
func (s Side) PawnRank() int {
	if s == Black {
		return 6
	}
	return 1
}

type Kind int8

const (
	KindNone Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{
	KindNone: '.',
	Pawn:     'P',
	Knight:   'N',
	Bishop:   'B',
	Rook:     'R',
	Queen:    'Q',
	King:     'K',
}

// 子力表：P1 N3 B3 R5 Q9 K0
var kindValues = [...]int{
	KindNone: 0,
	Pawn:     1,
	Knight:   3,
	Bishop:   3,
	Rook:     5,
	Queen:    9,
	King:     0,
}

func (k Kind) Valid() bool { return k >= Pawn && k <= King }

func (k Kind) Letter() byte {
	if !k.Valid() {
		return '.'
	}
	return kindLetters[k]
}

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

func (k Kind) Value() int {
	if !k.Valid() {
		return 0
	}
	return kindValues[k]
}

// Sliding 滑行棋子的射线会被第一个有子的格子截断
func (k Kind) Sliding() bool {
	switch k {
	case Pawn, Bishop, Rook, Queen:
		return true
	}
	return false
}

// KindFromLetter PNBRQK，大小写均可
func KindFromLetter(ch byte) (Kind, bool) {
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == ch {
			return k, true
		}
	}
	return KindNone, false
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText 只接受 "white"/"w" 和 "black"/"b"，其他一律报错。
func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "white", "w":
		*s = White
	case "black", "b":
		*s = Black
	default:
		return fmt.Errorf("%w: unknown side %q", ErrInvalidPlacement, b)
	}
	return nil
}

func (k Kind) MarshalText() ([]byte, error) { return []byte{k.Letter()}, nil }

func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) != 1 {
		return ErrInvalidMove
	}
	kind, ok := KindFromLetter(b[0])
	if !ok {
		return ErrInvalidMove
	}
	*k = kind
	return nil
}

package chess

import (
	"fmt"
	"strings"
)

// MoveText 文本着法 "<兵种><起点>-><终点>"，如 "Ne5->d3"。
type MoveText struct {
	Kind Kind
	From Square
	To   Square
}

func ParseMove(s string) (MoveText, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[3:5] != "->" {
		return MoveText{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	kind, ok := KindFromLetter(s[0])
	if !ok || s[0] < 'A' || s[0] > 'Z' {
		return MoveText{}, fmt.Errorf("%w: kind %q", ErrInvalidMove, s[0])
	}
	from, err := ParseSquare(s[1:3])
	if err != nil {
		return MoveText{}, err
	}
	to, err := ParseSquare(s[5:7])
	if err != nil {
		return MoveText{}, err
	}
	return MoveText{Kind: kind, From: from, To: to}, nil
}

func (m MoveText) String() string {
	return fmt.Sprintf("%c%s->%s", m.Kind.Letter(), m.From, m.To)
}

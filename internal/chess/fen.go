package chess

import (
	"fmt"
	"strings"
)

// StandardPlacement 标准开局，白先。
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// 简单 FEN-like：第 8 行在前，行间用 "/" 隔开，空位用数字压缩，白方大写；
// 空格后 w/b 表示轮到谁走。
func (b *Board) EncodePlacement() string {
	grid := b.grid()
	var sb strings.Builder
	for r := Ranks - 1; r >= 0; r-- {
		if r < Ranks-1 {
			sb.WriteByte('/')
		}
		empty := 0
		for f := 0; f < Files; f++ {
			p := grid[Square{File: int8(f), Rank: int8(r)}.Index()]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			ch := p.Kind.Letter()
			if p.Side == Black {
				ch += 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(b.toMove.Letter())
	return sb.String()
}

// DecodePlacement 解析 EncodePlacement 的格式；省略 w/b 时默认白先。
func DecodePlacement(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlacement, s)
	}
	toMove := White
	if len(fields) == 2 {
		switch fields[1] {
		case "w":
		case "b":
			toMove = Black
		default:
			return nil, fmt.Errorf("%w: side %q", ErrInvalidPlacement, fields[1])
		}
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != Ranks {
		return nil, fmt.Errorf("%w: %d ranks", ErrInvalidPlacement, len(rows))
	}

	b := NewBoard(toMove)
	for i, row := range rows {
		rank := Ranks - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			ch := row[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := KindFromLetter(ch)
			if !ok {
				return nil, fmt.Errorf("%w: piece letter %q", ErrInvalidPlacement, ch)
			}
			sq, err := NewSquare(file, rank)
			if err != nil {
				return nil, fmt.Errorf("%w: rank %d overflows", ErrInvalidPlacement, rank+1)
			}
			side := White
			if ch >= 'a' && ch <= 'z' {
				side = Black
			}
			if _, err := b.Place(kind, side, sq); err != nil {
				return nil, err
			}
			file++
		}
		if file != Files {
			return nil, fmt.Errorf("%w: rank %d has %d files", ErrInvalidPlacement, rank+1, file)
		}
	}
	return b, nil
}

package chess

import "strings"

// Render 文本棋盘，第 8 行在上；marks 中的格子显示 "++"（走法提示）。
func (b *Board) Render(marks []Square) string {
	var cells [NumSquares]string
	for _, list := range b.active {
		for _, p := range list {
			cells[p.square.Index()] = string([]byte{p.Kind.Letter(), p.Side.Letter()})
		}
	}
	for _, sq := range marks {
		cells[sq.Index()] = "++"
	}

	line := " " + strings.Repeat("-- ", Files) + "\n"
	var sb strings.Builder
	sb.WriteString(line)
	for r := Ranks - 1; r >= 0; r-- {
		for f := 0; f < Files; f++ {
			c := cells[Square{File: int8(f), Rank: int8(r)}.Index()]
			if c == "" {
				c = "  "
			}
			sb.WriteByte('|')
			sb.WriteString(c)
		}
		sb.WriteString("|\n")
		sb.WriteString(line)
	}
	return sb.String()
}

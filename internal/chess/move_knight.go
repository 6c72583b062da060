package chess

// 8 个日字偏移
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

func knightJumps(from Square, rays Rays) {
	var squares []Square
	for _, o := range knightOffsets {
		if sq, ok := from.Offset(o[0], o[1]); ok {
			squares = append(squares, sq)
		}
	}
	rays[Jump] = squares
}

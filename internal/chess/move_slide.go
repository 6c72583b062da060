package chess

// slide 沿每个方向走到棋盘边缘，天然由近到远。
func slide(from Square, dirs []Direction, rays Rays) {
	for _, d := range dirs {
		var line []Square
		sq, ok := from.Offset(int(d.DX), int(d.DY))
		for ok {
			line = append(line, sq)
			sq, ok = sq.Offset(int(d.DX), int(d.DY))
		}
		rays[d] = line
	}
}

// kingSteps 八个方向都保留，出界的方向为空列表。
func kingSteps(from Square, rays Rays) {
	for _, dirs := range [2][4]Direction{rookDirs, bishopDirs} {
		for _, d := range dirs {
			var step []Square
			if sq, ok := from.Offset(int(d.DX), int(d.DY)); ok {
				step = append(step, sq)
			}
			rays[d] = step
		}
	}
}

package chess

// pawnPushes 前进射线：起始行两格，其余一格。
func pawnPushes(side Side, from Square, rays Rays) {
	dir := side.Forward()
	if dir == 0 {
		return
	}
	steps := 1
	if int(from.Rank) == side.PawnRank() {
		steps = 2
	}
	var line []Square
	for i := 1; i <= steps; i++ {
		sq, ok := from.Offset(0, dir*i)
		if !ok {
			break
		}
		line = append(line, sq)
	}
	rays[Direction{0, int8(dir)}] = line
}

// pawnAttacks 前方两个斜格
func pawnAttacks(side Side, from Square, rays Rays) {
	dir := side.Forward()
	if dir == 0 {
		return
	}
	for _, dx := range [2]int{+1, -1} {
		var diag []Square
		if sq, ok := from.Offset(dx, dir); ok {
			diag = append(diag, sq)
		}
		rays[Direction{int8(dx), int8(dir)}] = diag
	}
}

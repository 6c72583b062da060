package chess

// MaterialScore 白方子力减黑方子力，只算在场棋子，每次调用都重新计算。
func (b *Board) MaterialScore() int {
	score := 0
	for _, p := range b.active[sideIndex(White)] {
		score += p.Value()
	}
	for _, p := range b.active[sideIndex(Black)] {
		score -= p.Value()
	}
	return score
}

// Material 一方在场棋子的总值
func (b *Board) Material(side Side) int {
	total := 0
	for _, p := range b.active[sideIndex(side)] {
		total += p.Value()
	}
	return total
}

package game

import (
	"time"

	"chesscore/internal/chess"
)

// State 对局的只读快照，可以安全地交给其他 goroutine。
type State struct {
	ID        string            `json:"game_id"`
	Setup     string            `json:"setup"`
	Placement string            `json:"position"`
	ToMove    chess.Side        `json:"to_move"`
	Score     int               `json:"score"`
	Material  Material          `json:"material"`
	Plies     int               `json:"plies"`
	Hash      uint64            `json:"hash"`
	Pieces    []chess.PieceView `json:"pieces"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Material 双方各自的子力总值；Score = White - Black
type Material struct {
	White int `json:"white"`
	Black int `json:"black"`
}

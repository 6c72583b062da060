package httpserver

import (
	"chesscore/internal/chess"
	"chesscore/internal/server/game"
	"chesscore/internal/store"
)

type NewGameRequest struct {
	Setup string `json:"setup"` // "standard" / "empty" / 局面串
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

// MoveDTO 用代数记法传格子，如 {"from":"e2","to":"e4"}
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PlayRequest Move 和 Text（"Pe2->e4"）二选一
type PlayRequest struct {
	GameID string   `json:"game_id"`
	Move   *MoveDTO `json:"move,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type HintsRequest struct {
	GameID string `json:"game_id"`
	Square string `json:"square"`
}

type StateResponse struct {
	game.State
	Status string `json:"status"` // 目前恒为 "ongoing"，没有终局判断
}

type HintsResponse struct {
	Square       string   `json:"square"`
	Destinations []string `json:"destinations"`
}

type GamesResponse struct {
	Games []StateResponse `json:"games"`
}

type StoredGamesResponse struct {
	Games []store.GameRecord `json:"games"`
}

type RemoveResponse struct {
	GameID string `json:"game_id"`
}

type HistoryResponse struct {
	Game  store.GameRecord   `json:"game"`
	Moves []store.MoveRecord `json:"moves"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func stateResponse(st game.State) StateResponse {
	return StateResponse{State: st, Status: "ongoing"}
}

func squaresToDTO(sqs []chess.Square) []string {
	out := make([]string, len(sqs))
	for i, sq := range sqs {
		out[i] = sq.String()
	}
	return out
}

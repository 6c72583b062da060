package game

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"chesscore/internal/chess"
	"chesscore/internal/store"
)

// Recorder 接收每一步合法着法，删除对局时清掉记录。*store.Store 即满足。
type Recorder interface {
	SaveGame(rec store.GameRecord) error
	AppendMove(rec store.GameRecord, mv store.MoveRecord) error
	DeleteGame(id string) error
}

// Game 一局一把锁，所有对棋盘的访问都串行化。
type Game struct {
	ID        string
	Setup     string
	CreatedAt time.Time

	mu        sync.Mutex
	seq       int
	board     *chess.Board
	plies     int
	updatedAt time.Time
	rec       Recorder
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stateLocked()
}

func (g *Game) stateLocked() State {
	return State{
		ID:        g.ID,
		Setup:     g.Setup,
		Placement: g.board.EncodePlacement(),
		ToMove:    g.board.SideToMove(),
		Score:     g.board.MaterialScore(),
		Material: Material{
			White: g.board.Material(chess.White),
			Black: g.board.Material(chess.Black),
		},
		Plies:     g.plies,
		Hash:      g.board.Hash(),
		Pieces:    g.board.Snapshot(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.updatedAt,
	}
}

func (g *Game) record() store.GameRecord {
	return store.GameRecord{
		ID:        g.ID,
		Setup:     g.Setup,
		Placement: g.board.EncodePlacement(),
		ToMove:    g.board.SideToMove(),
		Score:     g.board.MaterialScore(),
		Plies:     g.plies,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.updatedAt,
	}
}

// Hints sq 上棋子的可走格
func (g *Game) Hints(sq chess.Square) ([]chess.Square, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.DestinationsAt(sq)
}

// Move 当前方 src->dst
func (g *Game) Move(src, dst chess.Square) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.board.PieceAt(src)
	if !ok || p.Side != g.board.SideToMove() {
		return State{}, g.board.Move(src, dst)
	}
	return g.commit(chess.MoveText{Kind: p.Kind, From: src, To: dst})
}

// Play 文本着法，如 "Ne5->d3"
func (g *Game) Play(text string) (State, error) {
	m, err := chess.ParseMove(text)
	if err != nil {
		return State{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.commit(m)
}

func (g *Game) commit(m chess.MoveText) (State, error) {
	side := g.board.SideToMove()
	var captured string
	if victim, ok := g.board.PieceAt(m.To); ok && victim.Side != side {
		captured = victim.String()
	}
	if err := g.board.Play(m); err != nil {
		return State{}, err
	}
	g.plies++
	g.updatedAt = time.Now()

	if g.rec != nil {
		mv := store.MoveRecord{
			Ply:       g.plies,
			Side:      side,
			Move:      m.String(),
			Captured:  captured,
			Placement: g.board.EncodePlacement(),
			Score:     g.board.MaterialScore(),
			At:        g.updatedAt,
		}
		if err := g.rec.AppendMove(g.record(), mv); err != nil {
			logx.Errorf("game %s: record ply %d: %v", g.ID, g.plies, err)
		}
	}
	return g.stateLocked(), nil
}

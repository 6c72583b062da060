package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"chesscore/internal/chess"
)

var ErrGameNotFound = errors.New("game not found")

const (
	SetupStandard = "standard"
	SetupEmpty    = "empty"
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*Game
	seq   int
	rec   Recorder
}

// NewManager 对局保存在内存里；rec 可以为 nil。
func NewManager(rec Recorder) *Manager {
	return &Manager{games: make(map[string]*Game), rec: rec}
}

func newBoard(setup string) (*chess.Board, error) {
	switch setup {
	case "", SetupStandard:
		return chess.NewStandardBoard(), nil
	case SetupEmpty:
		return chess.NewBoard(chess.White), nil
	}
	return chess.DecodePlacement(setup)
}

// NewGame setup 支持 "standard"、"empty" 或局面串。
func (m *Manager) NewGame(setup string) (*Game, error) {
	b, err := newBoard(setup)
	if err != nil {
		return nil, err
	}
	if setup == "" {
		setup = SetupStandard
	}
	now := time.Now()
	g := &Game{
		ID:        uuid.NewString(),
		Setup:     setup,
		CreatedAt: now,
		board:     b,
		updatedAt: now,
		rec:       m.rec,
	}

	m.mu.Lock()
	m.seq++
	g.seq = m.seq
	m.games[g.ID] = g
	m.mu.Unlock()

	if m.rec != nil {
		if err := m.rec.SaveGame(g.record()); err != nil {
			logx.Errorf("game %s: save: %v", g.ID, err)
		}
	}
	return g, nil
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// List 按创建顺序返回所有对局的状态
func (m *Manager) List() []State {
	m.mu.RLock()
	games := make([]*Game, 0, len(m.games))
	for _, g := range m.games {
		games = append(games, g)
	}
	m.mu.RUnlock()

	slices.SortFunc(games, func(a, b *Game) int {
		return a.seq - b.seq
	})
	out := make([]State, len(games))
	for i, g := range games {
		out[i] = g.State()
	}
	return out
}

// Remove 从内存移除对局，并删除存储里的记录。
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	if _, ok := m.games[id]; !ok {
		m.mu.Unlock()
		return ErrGameNotFound
	}
	delete(m.games, id)
	m.mu.Unlock()

	if m.rec != nil {
		if err := m.rec.DeleteGame(id); err != nil {
			return fmt.Errorf("game %s: delete records: %w", id, err)
		}
	}
	return nil
}

// Package store 用 BadgerDB 保存对局和着法记录。
package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/dgraph-io/badger/v4"

	"chesscore/internal/chess"
)

var ErrNotFound = errors.New("game record not found")

const (
	gamePrefix = "game/"
	movePrefix = "move/"
)

func gameKey(id string) []byte { return []byte(gamePrefix + id) }

func movePrefixOf(id string) []byte { return []byte(movePrefix + id + "/") }

func moveKey(id string, ply int) []byte {
	return []byte(fmt.Sprintf("%s%s/%06d", movePrefix, id, ply))
}

// GameRecord 对局最新状态
type GameRecord struct {
	ID        string     `json:"id"`
	Setup     string     `json:"setup"`
	Placement string     `json:"placement"`
	ToMove    chess.Side `json:"to_move"`
	Score     int        `json:"score"`
	Plies     int        `json:"plies"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// MoveRecord 一步已接受的着法
type MoveRecord struct {
	Ply       int        `json:"ply"`
	Side      chess.Side `json:"side"`
	Move      string     `json:"move"`
	Captured  string     `json:"captured,omitempty"`
	Placement string     `json:"placement"`
	Score     int        `json:"score"`
	At        time.Time  `json:"at"`
}

type Store struct {
	db *badger.DB
}

// Open 打开（或新建）path 处的数据库；inMemory 时忽略 path。
func Open(path string, inMemory bool) (*Store, error) {
	opts := badger.DefaultOptions(path)
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) SaveGame(rec GameRecord) error {
	data, err := sonic.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(rec.ID), data)
	})
}

// AppendMove 按步数写入着法，同一事务内刷新对局记录。
func (s *Store) AppendMove(game GameRecord, mv MoveRecord) error {
	gameData, err := sonic.Marshal(game)
	if err != nil {
		return err
	}
	moveData, err := sonic.Marshal(mv)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(moveKey(game.ID, mv.Ply), moveData); err != nil {
			return err
		}
		return txn.Set(gameKey(game.ID), gameData)
	})
}

// LoadGame 返回对局记录和按步数排序的着法
func (s *Store) LoadGame(id string) (GameRecord, []MoveRecord, error) {
	var (
		rec   GameRecord
		moves []MoveRecord
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return sonic.Unmarshal(val, &rec)
		}); err != nil {
			return err
		}

		prefix := movePrefixOf(id)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var mv MoveRecord
			if err := it.Item().Value(func(val []byte) error {
				return sonic.Unmarshal(val, &mv)
			}); err != nil {
				return err
			}
			moves = append(moves, mv)
		}
		return nil
	})
	return rec, moves, err
}

// ListGames 按 id 排序返回所有对局记录
func (s *Store) ListGames() ([]GameRecord, error) {
	var out []GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(gamePrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec GameRecord
			if err := it.Item().Value(func(val []byte) error {
				return sonic.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	return out, err
}

// DeleteGame 删除对局记录及其着法
func (s *Store) DeleteGame(id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		prefix := movePrefixOf(id)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return txn.Delete(gameKey(id))
	})
}

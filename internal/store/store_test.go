package store

import (
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"

	"chesscore/internal/chess"
)

func openMem(t *testing.T) *Store {
	t.Helper()
	s, err := Open("", true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openMem(t)
	now := time.Now().UTC().Truncate(time.Second)
	rec := GameRecord{
		ID:        "g1",
		Setup:     "standard",
		Placement: chess.StandardPlacement,
		ToMove:    chess.White,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	for ply := 1; ply <= 12; ply++ {
		rec.Plies = ply
		mv := MoveRecord{Ply: ply, Side: chess.White, Move: "Pe2->e4", Placement: "x", Score: ply, At: now}
		if err := s.AppendMove(rec, mv); err != nil {
			t.Fatalf("append %d: %v", ply, err)
		}
	}

	got, moves, err := s.LoadGame("g1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Plies != 12 || got.Placement != chess.StandardPlacement || got.ToMove != chess.White {
		t.Fatalf("record: got=%+v", got)
	}
	if len(moves) != 12 {
		t.Fatalf("moves: got=%d want=12", len(moves))
	}
	for i, mv := range moves {
		if mv.Ply != i+1 {
			t.Fatalf("move %d out of order: ply=%d", i, mv.Ply)
		}
	}
}

func TestLoadMissingGame(t *testing.T) {
	s := openMem(t)
	if _, _, err := s.LoadGame("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got err=%v want ErrNotFound", err)
	}
}

func TestListAndDelete(t *testing.T) {
	s := openMem(t)
	for _, id := range []string{"b", "a", "c"} {
		if err := s.SaveGame(GameRecord{ID: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}
	if err := s.AppendMove(GameRecord{ID: "a", Plies: 1}, MoveRecord{Ply: 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	list, err := s.ListGames()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 || list[0].ID != "a" || list[2].ID != "c" {
		t.Fatalf("list: got=%+v", list)
	}

	if err := s.DeleteGame("a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := s.LoadGame("a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: got err=%v", err)
	}
	list, _ = s.ListGames()
	if len(list) != 2 {
		t.Fatalf("list after delete: got=%d want=2", len(list))
	}
}

func TestCorruptSideIsReported(t *testing.T) {
	s := openMem(t)
	raw := []byte(`{"id":"bad","setup":"standard","to_move":"purple"}`)
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey("bad"), raw)
	}); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	_, _, err := s.LoadGame("bad")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("got err=%v want a decode error", err)
	}
}

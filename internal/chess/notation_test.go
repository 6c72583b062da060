package chess

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	m, err := ParseMove("Ne5->d3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := MoveText{Kind: Knight, From: MustSquare("e5"), To: MustSquare("d3")}
	if m != want {
		t.Fatalf("got=%+v want=%+v", m, want)
	}
	if m.String() != "Ne5->d3" {
		t.Fatalf("String: got=%q", m.String())
	}
}

func TestParseMoveErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", ErrInvalidMove},
		{"Ne5-d3", ErrInvalidMove},
		{"Xe5->d3", ErrInvalidMove},
		{"ne5->d3", ErrInvalidMove},
		{"Ne9->d3", ErrInvalidCoordinate},
		{"Ne5->z3", ErrInvalidCoordinate},
	}
	for _, c := range cases {
		if _, err := ParseMove(c.in); !errors.Is(err, c.want) {
			t.Fatalf("ParseMove(%q): got err=%v want %v", c.in, err, c.want)
		}
	}
}

func TestKindLetters(t *testing.T) {
	for k := Pawn; k <= King; k++ {
		got, ok := KindFromLetter(k.Letter())
		if !ok || got != k {
			t.Fatalf("letter round trip for %s: got=%v ok=%v", k, got, ok)
		}
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Fatalf("x should not be a kind")
	}
}

func TestSideText(t *testing.T) {
	for _, s := range []Side{White, Black} {
		text, _ := s.MarshalText()
		var got Side
		if err := got.UnmarshalText(text); err != nil || got != s {
			t.Fatalf("round trip %s: got=%v err=%v", s, got, err)
		}
	}
	var s Side
	if err := s.UnmarshalText([]byte("b")); err != nil || s != Black {
		t.Fatalf("letter form: got=%v err=%v", s, err)
	}
	for _, bad := range []string{"purple", "", "none", "White"} {
		if err := s.UnmarshalText([]byte(bad)); !errors.Is(err, ErrInvalidPlacement) {
			t.Fatalf("%q: got err=%v want ErrInvalidPlacement", bad, err)
		}
	}
}

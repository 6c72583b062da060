package main

import (
	"strings"
	"testing"
)

func TestColorizeKeepsLayout(t *testing.T) {
	in := "|Nw|  |++|Kb|"
	out := colorize(in)
	for _, want := range []string{"Nw", "Kb", "++", "|  |"} {
		if !strings.Contains(out, want) {
			t.Fatalf("colorize dropped %q: %q", want, out)
		}
	}
}

package main

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/cellbridge/input"
)

// Control runes print in caret notation
func TestRuneName(t *testing.T) {
	cases := map[rune]string{0: "none", input.RawCtrlD: "^D", 'g': "'g'"}
	for r, want := range cases {
		if got := runeName(r); got != want {
			t.Errorf("Expected %q for %d, got %q", want, r, got)
		}
	}
}

// The second g of a gg sequence reports the jump to the start
func TestDescribeSequence(t *testing.T) {
	resolver := input.NewScrollResolver(nil)
	var last string
	for range 2 {
		ev := tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone)
		ks, ok := input.FromTcell(ev)
		if !ok {
			t.Fatal("Expected rune key accepted")
		}
		last = describe(ev, ks, ok, resolver.Resolve(&ks))
	}
	if !strings.Contains(last, "raw='g'") || !strings.Contains(last, "dy=-10000") {
		t.Errorf("Expected gg to resolve to -10000, got %q", last)
	}
}

package game

import (
	"math/rand"
	"testing"
)

func TestEvalTossWin(t *testing.T) {
	out := EvalToss(Heads, Heads, 20)
	if !out.Win || out.Payout != 40 {
		t.Fatalf("expected win with payout 40, got win=%v payout=%d", out.Win, out.Payout)
	}
}

func TestEvalTossLoss(t *testing.T) {
	out := EvalToss(Tails, Heads, 20)
	if out.Win || out.Payout != 0 {
		t.Fatalf("expected loss with payout 0, got win=%v payout=%d", out.Win, out.Payout)
	}
}

func TestParseSide(t *testing.T) {
	cases := []struct {
		in   string
		side Side
		ok   bool
	}{
		{"heads", Heads, true},
		{"TAILS", Tails, true},
		{" Heads ", Heads, true},
		{"edge", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		side, ok := ParseSide(tc.in)
		if side != tc.side || ok != tc.ok {
			t.Fatalf("ParseSide(%q) = (%q, %v), want (%q, %v)", tc.in, side, ok, tc.side, tc.ok)
		}
	}
}

func TestDrawSideRoughlyFair(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	heads := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if DrawSide(rng) == Heads {
			heads++
		}
	}
	if heads < 4700 || heads > 5300 {
		t.Fatalf("heads = %d of %d, suspiciously unfair", heads, n)
	}
}

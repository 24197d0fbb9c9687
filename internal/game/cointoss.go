package game

import (
	"fmt"
	"math/rand"
	"strings"
)

type Side string

const (
	Heads Side = "heads"
	Tails Side = "tails"
)

// ParseSide normalizes client input; ok is false for anything that is
// not a coin side.
func ParseSide(s string) (Side, bool) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Heads:
		return Heads, true
	case Tails:
		return Tails, true
	}
	return "", false
}

// DrawSide flips the coin. A single float keeps forced-draw tests on
// the same footing as the wishing well: r < 0.5 lands heads.
func DrawSide(rng *rand.Rand) Side {
	if rng.Float64() < 0.5 {
		return Heads
	}
	return Tails
}

// EvalToss pays double the wager when the flip matches the call.
func EvalToss(flip, choice Side, wager int64) Outcome {
	out := Outcome{Game: "toss"}
	if flip == choice {
		out.Win = true
		out.Payout = wager * 2
		out.Label = fmt.Sprintf("Coin Toss win (%s)", choice)
	} else {
		out.Label = fmt.Sprintf("Coin Toss lose (%s)", choice)
	}
	return out
}

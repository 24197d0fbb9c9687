package game

import "math/rand"

// SlotTable holds the pay multipliers for a three-reel spin. The
// second-tier figure differs between deployed variants, so it ships in
// config rather than as a constant.
type SlotTable struct {
	Jackpot int64
	Second  int64
	Triple  int64
	Pair    int64
}

func DefaultSlotTable() SlotTable {
	return SlotTable{Jackpot: 10, Second: 8, Triple: 4, Pair: 2}
}

// DrawReels makes the single authoritative draw: three independent
// uniform picks from the strip.
func DrawReels(rng *rand.Rand) Reels {
	return Reels{
		Symbols[rng.Intn(len(Symbols))],
		Symbols[rng.Intn(len(Symbols))],
		Symbols[rng.Intn(len(Symbols))],
	}
}

// ReelFrames produces n cosmetic triples for the spinning animation.
// Frames never feed into settlement; the final draw is a separate call.
func ReelFrames(rng *rand.Rand, n int) []Reels {
	if n <= 0 {
		return nil
	}
	frames := make([]Reels, n)
	for i := range frames {
		frames[i] = DrawReels(rng)
	}
	return frames
}

// EvalSlots scores a drawn triple. Rules are checked top-down and the
// first match wins: jackpot triple, second-tier triple, any other
// triple, any pair, nothing.
func EvalSlots(r Reels, bet int64, t SlotTable) Outcome {
	allSame := r[0] == r[1] && r[1] == r[2]
	pair := r[0] == r[1] || r[1] == r[2] || r[0] == r[2]

	out := Outcome{Game: "slots", Label: "No match. Better luck next time."}
	switch {
	case allSame && r[0] == Seven:
		out.Payout = bet * t.Jackpot
		out.Label = "JACKPOT! Triple 7s!"
	case allSame && r[0] == Diamond:
		out.Payout = bet * t.Second
		out.Label = "Huge win! Triple Diamonds!"
	case allSame:
		out.Payout = bet * t.Triple
		out.Label = "Nice! Triple match!"
	case pair:
		out.Payout = bet * t.Pair
		out.Label = "Double match! You win!"
	}
	out.Win = out.Payout > 0
	return out
}

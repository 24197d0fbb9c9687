package game

import "math"

// WellTable holds the wishing well bands and multipliers. Defaults are
// 3% jackpot, a further 27% modest win, 70% nothing; the bands are a
// fixed design parameter and parity tests pin them exactly.
type WellTable struct {
	JackpotBand       float64
	ModestBand        float64
	JackpotMultiplier int64
	ModestMultiplier  float64
}

func DefaultWellTable() WellTable {
	return WellTable{
		JackpotBand:       0.03,
		ModestBand:        0.30,
		JackpotMultiplier: 10,
		ModestMultiplier:  1.5,
	}
}

// EvalWell resolves a contribution against one uniform draw r in [0,1).
func EvalWell(r float64, amount int64, t WellTable) Outcome {
	out := Outcome{Game: "well"}
	switch {
	case r < t.JackpotBand:
		out.Win = true
		out.Payout = amount * t.JackpotMultiplier
		out.Label = "Wishing Well JACKPOT"
	case r < t.ModestBand:
		out.Win = true
		out.Payout = int64(math.Floor(t.ModestMultiplier * float64(amount)))
		out.Label = "Wishing Well: Small fortune"
	default:
		out.Label = "Wishing Well: Nothing"
	}
	return out
}

package game

// Symbol is one face on a slot reel.
type Symbol string

const (
	Seven   Symbol = "7"
	Star    Symbol = "STAR"
	Bar     Symbol = "BAR"
	Gem     Symbol = "GEM"
	Coin    Symbol = "COIN"
	Cherry  Symbol = "CHERRY"
	Diamond Symbol = "DIAMOND"
)

// Symbols is the reel strip. Seven is the jackpot symbol, Diamond the
// second tier; everything else pays the plain-triple rate.
var Symbols = []Symbol{Seven, Star, Bar, Gem, Coin, Cherry, Diamond}

// Reels is one displayed triple, left to right.
type Reels [3]Symbol

func (r Reels) Strings() []string {
	return []string{string(r[0]), string(r[1]), string(r[2])}
}

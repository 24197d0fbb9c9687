package game

// Outcome is the resolved result of a single wager. Payout is the
// gross amount credited back on a win, zero on a loss; the stake is
// always taken up front and is not part of Payout.
type Outcome struct {
	Game   string
	Win    bool
	Payout int64
	Label  string
}

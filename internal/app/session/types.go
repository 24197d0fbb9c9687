package session

import (
	"time"

	"shell-casino/internal/config"
	"shell-casino/internal/game"
	"shell-casino/internal/ledger"
)

// Config carries the tunable parameters the controller needs, already
// converted to engine types.
type Config struct {
	StartingBalance  int64
	DefaultBet       int64
	MinBet           int64
	BetStep          int64
	HistoryLimit     int
	LeaderboardLimit int

	SpinDuration time.Duration
	SpinTick     time.Duration

	Slots game.SlotTable
	Well  game.WellTable
}

// ConfigFrom maps the loaded game parameters onto a session config.
func ConfigFrom(c config.GamesConfig) Config {
	return Config{
		StartingBalance:  c.StartingBalance,
		DefaultBet:       c.DefaultBet,
		MinBet:           c.MinBet,
		BetStep:          c.BetStep,
		HistoryLimit:     c.HistoryLimit,
		LeaderboardLimit: c.LeaderboardLimit,
		SpinDuration:     time.Duration(c.SpinDurationMS) * time.Millisecond,
		SpinTick:         time.Duration(c.SpinTickMS) * time.Millisecond,
		Slots: game.SlotTable{
			Jackpot: c.Slots.JackpotMultiplier,
			Second:  c.Slots.SecondMultiplier,
			Triple:  c.Slots.TripleMultiplier,
			Pair:    c.Slots.PairMultiplier,
		},
		Well: game.WellTable{
			JackpotBand:       c.Well.JackpotBand,
			ModestBand:        c.Well.ModestBand,
			JackpotMultiplier: c.Well.JackpotMultiplier,
			ModestMultiplier:  c.Well.ModestMultiplier,
		},
	}
}

// Result is a settled wager as rendered to the client.
type Result struct {
	Game    string   `json:"game"`
	Win     bool     `json:"win"`
	Payout  int64    `json:"payout"`
	Message string   `json:"message"`
	Reels   []string `json:"reels,omitempty"`
	Flip    string   `json:"flip,omitempty"`
	Balance int64    `json:"balance"`
}

// SpinResult is the immediate answer to a spin request. The stake is
// already debited; Outcome is set only when the spin settled inline
// (zero spin duration), otherwise the client animates Frames and polls
// state for settlement.
type SpinResult struct {
	ID         string     `json:"id"`
	Bet        int64      `json:"bet"`
	Balance    int64      `json:"balance"`
	DurationMS int64      `json:"duration_ms"`
	TickMS     int64      `json:"tick_ms"`
	Frames     [][]string `json:"frames,omitempty"`
	Outcome    *Result    `json:"outcome,omitempty"`
}

// State is the renderable session snapshot.
type State struct {
	Balance      int64          `json:"balance"`
	Bet          int64          `json:"bet"`
	MinBet       int64          `json:"min_bet"`
	BetStep      int64          `json:"bet_step"`
	TotalWagered int64          `json:"total_wagered"`
	TotalWon     int64          `json:"total_won"`
	GamesPlayed  int64          `json:"games_played"`
	Resolving    bool           `json:"resolving"`
	Reels        []string       `json:"reels"`
	LastResult   string         `json:"last_result,omitempty"`
	History      []ledger.Entry `json:"history,omitempty"`
}

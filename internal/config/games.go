package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GamesConfig carries every tunable game parameter. The sampled
// deployments disagree on a few of these (second-tier slot multiplier,
// starting balance, spin timing), so all of them live here with one
// consistent default set.
type GamesConfig struct {
	StartingBalance int64 `yaml:"starting_balance"`
	DefaultBet      int64 `yaml:"default_bet"`
	MinBet          int64 `yaml:"min_bet"`
	BetStep         int64 `yaml:"bet_step"`

	HistoryLimit     int `yaml:"history_limit"`
	LeaderboardLimit int `yaml:"leaderboard_limit"`

	SpinDurationMS int `yaml:"spin_duration_ms"`
	SpinTickMS     int `yaml:"spin_tick_ms"`

	Slots SlotsConfig `yaml:"slots"`
	Well  WellConfig  `yaml:"well"`
}

type SlotsConfig struct {
	JackpotMultiplier int64 `yaml:"jackpot_multiplier"`
	SecondMultiplier  int64 `yaml:"second_multiplier"`
	TripleMultiplier  int64 `yaml:"triple_multiplier"`
	PairMultiplier    int64 `yaml:"pair_multiplier"`
}

type WellConfig struct {
	JackpotBand       float64 `yaml:"jackpot_band"`
	ModestBand        float64 `yaml:"modest_band"`
	JackpotMultiplier int64   `yaml:"jackpot_multiplier"`
	ModestMultiplier  float64 `yaml:"modest_multiplier"`
}

func DefaultGames() GamesConfig {
	return GamesConfig{
		StartingBalance:  1000,
		DefaultBet:       50,
		MinBet:           10,
		BetStep:          10,
		HistoryLimit:     200,
		LeaderboardLimit: 20,
		SpinDurationMS:   1200,
		SpinTickMS:       70,
		Slots: SlotsConfig{
			JackpotMultiplier: 10,
			SecondMultiplier:  8,
			TripleMultiplier:  4,
			PairMultiplier:    2,
		},
		Well: WellConfig{
			JackpotBand:       0.03,
			ModestBand:        0.30,
			JackpotMultiplier: 10,
			ModestMultiplier:  1.5,
		},
	}
}

// LoadGames returns the defaults, overridden by the YAML file at path
// when one is given. Fields absent from the file keep their defaults.
func LoadGames(path string) (GamesConfig, error) {
	cfg := DefaultGames()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read games config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse games config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c GamesConfig) Validate() error {
	if c.StartingBalance <= 0 {
		return fmt.Errorf("starting_balance must be positive, got %d", c.StartingBalance)
	}
	if c.MinBet <= 0 || c.MinBet > c.StartingBalance {
		return fmt.Errorf("min_bet %d out of range", c.MinBet)
	}
	if c.SpinDurationMS < 0 || c.SpinTickMS < 0 {
		return fmt.Errorf("spin timing must be non-negative")
	}
	if c.Well.JackpotBand < 0 || c.Well.ModestBand < c.Well.JackpotBand || c.Well.ModestBand > 1 {
		return fmt.Errorf("well bands invalid: jackpot %v modest %v", c.Well.JackpotBand, c.Well.ModestBand)
	}
	return nil
}

package config

import "github.com/caarlos0/env/v11"

type ServerConfig struct {
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	StorePath string `env:"STORE_PATH" envDefault:"casino.db"`

	// GamesFile points at an optional YAML file overriding the game
	// parameter defaults (payout tables, starting balance, spin timing).
	GamesFile string `env:"GAMES_FILE"`

	// DataDir holds the static site snapshots (users.json,
	// projects.json, shells.json). Empty disables the data endpoints.
	DataDir string `env:"DATA_DIR"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
}

func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	err := env.Parse(&cfg)
	return cfg, err
}

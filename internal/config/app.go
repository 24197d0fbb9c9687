package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Games  GamesConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	gamesCfg, err := LoadGames(serverCfg.GamesFile)
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
		Games:  gamesCfg,
	}, nil
}

package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"shell-casino/internal/app/session"
	"shell-casino/internal/config"
	"shell-casino/internal/dataset"
	"shell-casino/internal/logging"
	"shell-casino/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	// Persistence is best-effort: an unusable store logs a warning and
	// the casino runs memory-only for the session.
	st, err := store.Open(cfg.Server.StorePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Server.StorePath).Msg("snapshot store unavailable, state will not persist")
		st = nil
	} else if err := st.Ping(context.Background()); err != nil {
		log.Warn().Err(err).Msg("snapshot store ping failed, state will not persist")
		st.Close()
		st = nil
	}
	if st != nil {
		defer st.Close()
	}

	var ds *dataset.Dataset
	if cfg.Server.DataDir != "" {
		ds, err = dataset.Load(cfg.Server.DataDir)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Server.DataDir).Msg("load dataset failed")
		}
		log.Info().Int("users", len(ds.Users)).Int("projects", len(ds.Projects)).Msg("dataset loaded")
	}

	svc := session.New(session.ConfigFrom(cfg.Games), st)
	defer svc.Close()

	r := newRouter(svc, ds, st, cfg.Server)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}

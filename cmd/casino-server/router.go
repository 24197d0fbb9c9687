package main

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"shell-casino/internal/app/session"
	"shell-casino/internal/config"
	"shell-casino/internal/dataset"
	"shell-casino/internal/store"
)

func newRouter(svc *session.Service, ds *dataset.Dataset, st *store.Store, cfg config.ServerConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.With(apiLogMiddleware()).Get("/healthz", healthHandler(st))

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLogMiddleware())

		r.Route("/casino", func(r chi.Router) {
			r.Get("/state", stateHandler(svc))
			r.Post("/slots/spin", spinHandler(svc))
			r.Post("/toss", tossHandler(svc))
			r.Post("/well", wellHandler(svc))
			r.Post("/bet", adjustBetHandler(svc))
			r.Get("/shop", shopHandler(svc))
			r.Post("/shop/buy", buyHandler(svc))
			r.Get("/leaderboard", leaderboardHandler(svc))
			r.Post("/leaderboard", saveScoreHandler(svc))
			r.Get("/history", historyHandler(svc))
			r.Post("/reset", resetHandler(svc))
		})

		if ds != nil {
			r.Route("/data", func(r chi.Router) {
				r.Get("/leaderboard", dataLeaderboardHandler(ds))
				r.Get("/projects", dataProjectsHandler(ds))
				r.Get("/stats", dataStatsHandler(ds))
			})
		}
	})
	return r
}

package main

import (
	"net/http"

	"shell-casino/internal/dataset"
)

func dataLeaderboardHandler(ds *dataset.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		by := r.URL.Query().Get("by")
		limit := parseLimit(r, 50)
		writeJSON(w, map[string]any{
			"by":    by,
			"items": ds.TopUsers(by, limit),
		})
	}
}

func dataProjectsHandler(ds *dataset.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := ds.SearchProjects(q.Get("q"), q.Get("category"), q.Get("sort"), parseLimit(r, 50))
		writeJSON(w, map[string]any{"items": items})
	}
}

func dataStatsHandler(ds *dataset.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, ds.Stats())
	}
}

package main

import (
	"net/http"

	"shell-casino/internal/app/session"
	"shell-casino/internal/game"
	"shell-casino/internal/store"
)

func healthHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out := map[string]any{"status": "ok", "store": "disabled"}
		if st != nil {
			out["store"] = "ok"
			if err := st.Ping(r.Context()); err != nil {
				out["store"] = "unavailable"
			}
		}
		writeJSON(w, out)
	}
}

func stateHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.State())
	}
}

func spinHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Bet int64 `json:"bet"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := svc.SpinSlots(body.Bet)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func tossHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Choice string `json:"choice"`
			Wager  int64  `json:"wager"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		side, ok := game.ParseSide(body.Choice)
		if !ok {
			writeHTTPError(w, http.StatusBadRequest, session.ErrInvalidChoice.Error())
			return
		}
		res, err := svc.TossCoin(side, body.Wager)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func wellHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Amount int64 `json:"amount"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := svc.TossWell(body.Amount)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func adjustBetHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Delta int64 `json:"delta"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		writeJSON(w, map[string]int64{"bet": svc.AdjustBet(body.Delta)})
	}
}

func shopHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": svc.Items()})
	}
}

func buyHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			ItemID string `json:"item_id"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		res, err := svc.Buy(body.ItemID)
		if err != nil {
			writeSessionError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func leaderboardHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": svc.Leaderboard()})
	}
}

func saveScoreHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Name string `json:"name"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeHTTPError(w, http.StatusBadRequest, "invalid_request")
			return
		}
		writeJSON(w, svc.SaveScore(body.Name))
	}
}

func historyHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, 50)
		writeJSON(w, map[string]any{"items": svc.History(limit)})
	}
}

func resetHandler(svc *session.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		svc.Reset()
		writeJSON(w, svc.State())
	}
}

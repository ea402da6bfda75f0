package handler

import (
	"net/http"

	"github.com/arenabets/arenabot/internal/ledger"
)

// MatchRequest is the body for the match recording endpoint.
type MatchRequest struct {
	WinnerID   string `json:"winner_id"`
	WinnerName string `json:"winner_name"`
	LoserID    string `json:"loser_id"`
	LoserName  string `json:"loser_name"`
	Stake      int    `json:"stake"`
}

// HandleRecordMatch settles a match between two players.
func HandleRecordMatch(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatchRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := svc.RecordMatch(r.Context(), req.WinnerID, req.WinnerName, req.LoserID, req.LoserName, req.Stake)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// TradeRequest is the body for the item trade endpoint.
type TradeRequest struct {
	FromID   string `json:"from_id"`
	FromName string `json:"from_name"`
	ToID     string `json:"to_id"`
	ToName   string `json:"to_name"`
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// HandleTrade transfers items between two players.
func HandleTrade(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TradeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := svc.Trade(r.Context(), req.FromID, req.FromName, req.ToID, req.ToName, req.Item, req.Quantity)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

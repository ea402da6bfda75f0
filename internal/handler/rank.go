package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/arenabets/arenabot/internal/rank"
)

// HandleLeaderboard returns the top players.
func HandleLeaderboard(svc rank.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
				return
			}
			n = parsed
		}

		entries, err := svc.Leaderboard(r.Context(), n)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// ProfileResponse is one player's public profile.
type ProfileResponse struct {
	UserID       string         `json:"user_id"`
	Name         string         `json:"name"`
	Wallet       int            `json:"wallet"`
	Bank         int            `json:"bank"`
	Wins         int            `json:"wins"`
	Losses       int            `json:"losses"`
	Streak       int            `json:"streak"`
	LastWorkDate string         `json:"last_work_date,omitempty"`
	Items        map[string]int `json:"items,omitempty"`
	Titles       []string       `json:"titles,omitempty"`
}

// HandleProfile returns one player's account.
func HandleProfile(svc rank.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf(ErrMsgMissingParam, "user_id")})
			return
		}

		p, err := svc.Profile(r.Context(), userID)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ProfileResponse{
			UserID:       p.ID,
			Name:         p.Name,
			Wallet:       p.Wallet,
			Bank:         p.Bank,
			Wins:         p.Wins,
			Losses:       p.Losses,
			Streak:       p.Streak,
			LastWorkDate: p.LastWorkDate,
			Items:        p.Items,
			Titles:       p.Titles,
		})
	}
}

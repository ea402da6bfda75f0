package handler

import (
	"net/http"

	"github.com/arenabets/arenabot/internal/economy"
)

// ClaimRequest is the body for the weekly claim endpoint.
type ClaimRequest struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Privileged bool   `json:"privileged"`
}

// HandleClaimWeekly pays the weekly reward.
func HandleClaimWeekly(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := svc.ClaimWeekly(r.Context(), req.UserID, req.Username, req.Privileged)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// BankRequest is the body for deposit and withdraw endpoints.
type BankRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Amount   int    `json:"amount"`
}

// HandleDeposit moves currency from wallet to bank.
func HandleDeposit(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BankRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := svc.Deposit(r.Context(), req.UserID, req.Username, req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// HandleWithdraw moves currency from bank to wallet.
func HandleWithdraw(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BankRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := svc.Withdraw(r.Context(), req.UserID, req.Username, req.Amount)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

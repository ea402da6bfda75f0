package handler

import (
	"net/http"

	"github.com/arenabets/arenabot/internal/reconcile"
)

// HandleStatus reports the current gate verdict.
func HandleStatus(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Status(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}

// OverrideRequest is the body for the manual override endpoint.
type OverrideRequest struct {
	Open bool `json:"open"`
}

// HandleSetOverride forces the gate open or closed.
func HandleSetOverride(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OverrideRequest
		if !decodeBody(w, r, &req) {
			return
		}

		var err error
		if req.Open {
			err = svc.ForceOpen(r.Context())
		} else {
			err = svc.ForceClose(r.Context())
		}
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"override": req.Open})
	}
}

// HandleClearOverride removes the manual override.
func HandleClearOverride(svc reconcile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.ClearOverride(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
	}
}

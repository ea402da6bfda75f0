package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arenabets/arenabot/internal/economy"
	"github.com/arenabets/arenabot/internal/handler"
	"github.com/arenabets/arenabot/internal/ledger"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/metrics"
	"github.com/arenabets/arenabot/internal/rank"
	"github.com/arenabets/arenabot/internal/reconcile"
)

// Server is the HTTP API mirroring the command surface.
type Server struct {
	httpServer *http.Server
}

// NewServer builds the router and wires every endpoint to its service.
// apiKey empty disables authentication (development).
func NewServer(port int, apiKey string, economySvc economy.Service, ledgerSvc ledger.Service, rankSvc rank.Service, reconcileSvc reconcile.Service) *Server {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authMiddleware(apiKey))

		r.Get("/status", handler.HandleStatus(reconcileSvc))
		r.Get("/rank", handler.HandleLeaderboard(rankSvc))
		r.Get("/profile", handler.HandleProfile(rankSvc))

		r.Post("/claim", handler.HandleClaimWeekly(economySvc))
		r.Post("/deposit", handler.HandleDeposit(economySvc))
		r.Post("/withdraw", handler.HandleWithdraw(economySvc))

		r.Post("/match", handler.HandleRecordMatch(ledgerSvc))
		r.Post("/trade", handler.HandleTrade(ledgerSvc))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/override", handler.HandleSetOverride(reconcileSvc))
			r.Delete("/override", handler.HandleClearOverride(reconcileSvc))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	logger.FromContext(context.Background()).Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

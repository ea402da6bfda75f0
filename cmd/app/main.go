// The headless arena API: the same economy over HTTP, for dashboards and
// ops tooling. It tracks the desired gate state in the store; a running
// gateway process applies it to the real channel on its next poll.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/arenabets/arenabot/internal/config"
	"github.com/arenabets/arenabot/internal/economy"
	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/ledger"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/rank"
	"github.com/arenabets/arenabot/internal/reconcile"
	"github.com/arenabets/arenabot/internal/recorder"
	"github.com/arenabets/arenabot/internal/scheduler"
	"github.com/arenabets/arenabot/internal/server"
	"github.com/arenabets/arenabot/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment, false,
	))

	st, err := store.Open(cfg.DataFile)
	if err != nil {
		slog.Error("Failed to open document store", "error", err, "path", cfg.DataFile)
		os.Exit(1)
	}

	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.SQLitePath != "" {
		sqlRec, err := recorder.NewSQLiteRecorder(cfg.SQLitePath)
		if err != nil {
			slog.Error("Failed to open audit recorder", "error", err, "path", cfg.SQLitePath)
			os.Exit(1)
		}
		defer sqlRec.Close()
		rec = sqlRec
	}

	g, err := gate.New(gate.Config{
		Weekday:   cfg.WindowWeekday,
		OpenHour:  cfg.WindowOpenHour,
		CloseHour: cfg.WindowCloseHour,
		Timezone:  cfg.Timezone,
	})
	if err != nil {
		slog.Error("Failed to build claim gate", "error", err)
		os.Exit(1)
	}

	economySvc := economy.NewService(st, st, g, rec, cfg.BaseReward, cfg.DisasterChance, cfg.MaxWallet)
	ledgerSvc := ledger.NewService(st, nil, rec, cfg.MaxWallet)
	rankSvc := rank.NewService(st)
	reconcileSvc := reconcile.NewService(st, g, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, g, reconcileSvc)
	if err := sched.RegisterAll(g.Config()); err != nil {
		slog.Error("Failed to register scheduled tasks", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()
	sched.RunNow()

	srv := server.NewServer(cfg.Port, cfg.APIKey, economySvc, ledgerSvc, rankSvc, reconcileSvc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-sc:
		slog.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
	slog.Info("Shutdown complete")
}

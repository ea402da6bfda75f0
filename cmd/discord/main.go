// The arena Discord gateway: slash commands, the scheduled channel gate,
// and title roles, all over the shared JSON document store.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/arenabets/arenabot/internal/config"
	"github.com/arenabets/arenabot/internal/discord"
	"github.com/arenabets/arenabot/internal/economy"
	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/ledger"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/rank"
	"github.com/arenabets/arenabot/internal/reconcile"
	"github.com/arenabets/arenabot/internal/recorder"
	"github.com/arenabets/arenabot/internal/scheduler"
	"github.com/arenabets/arenabot/internal/store"
)

func main() {
	_ = godotenv.Load()

	if err := config.ValidateBotEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

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

	bot, err := discord.New(discord.Config{
		Token:          cfg.DiscordToken,
		AppID:          cfg.DiscordAppID,
		GuildID:        cfg.GuildID,
		ArenaChannelID: cfg.ArenaChannelID,
		LogChannelID:   cfg.LogChannelID,
		AdminRoleID:    cfg.AdminRoleID,
		TitleRoles:     cfg.TitleRoles,
	}, discord.Services{})
	if err != nil {
		slog.Error("Failed to create Discord session", "error", err)
		os.Exit(1)
	}

	channelGate := discord.NewChannelGate(bot.Session, cfg.GuildID, cfg.ArenaChannelID, cfg.LogChannelID)
	roleGranter := discord.NewRoleGranter(bot.Session, cfg.GuildID, cfg.TitleRoles)

	reconcileSvc := reconcile.NewService(st, g, channelGate)
	bot.Services = discord.Services{
		Economy:    economy.NewService(st, st, g, rec, cfg.BaseReward, cfg.DisasterChance, cfg.MaxWallet),
		Ledger:     ledger.NewService(st, roleGranter, rec, cfg.MaxWallet),
		Rank:       rank.NewService(st),
		Reconciler: reconcileSvc,
	}
	bot.RegisterAll()

	if err := bot.RegisterCommands(); err != nil {
		slog.Error("Failed to register commands", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(ctx, g, reconcileSvc)
	if err := sched.RegisterAll(g.Config()); err != nil {
		slog.Error("Failed to register scheduled tasks", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()

	// Heal the gate on boot instead of waiting for the first poll tick.
	sched.RunNow()

	if err := bot.Run(); err != nil {
		slog.Error("Bot terminated", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}

// Package discord is the gateway adapter: slash commands mapped onto the
// core services, plus the channel permission gate the reconciler drives.
package discord

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/economy"
	"github.com/arenabets/arenabot/internal/ledger"
	"github.com/arenabets/arenabot/internal/rank"
	"github.com/arenabets/arenabot/internal/reconcile"
)

// Config holds the bot configuration
type Config struct {
	Token          string
	AppID          string
	GuildID        string
	ArenaChannelID string
	LogChannelID   string
	AdminRoleID    string
	TitleRoles     map[string]string
}

// Services bundles the core services the commands call.
type Services struct {
	Economy    economy.Service
	Ledger     ledger.Service
	Rank       rank.Service
	Reconciler reconcile.Service
}

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	Config   Config
	Registry *CommandRegistry
	Services Services
}

// New creates a new Discord bot
func New(cfg Config, services Services) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds

	return &Bot{
		Session:  s,
		Config:   cfg,
		Registry: NewCommandRegistry(),
		Services: services,
	}, nil
}

// RegisterCommands replaces the guild's slash commands with the registry.
func (b *Bot) RegisterCommands() error {
	desired := make([]*discordgo.ApplicationCommand, 0, len(b.Registry.Commands))
	for _, cmd := range b.Registry.Commands {
		desired = append(desired, cmd)
	}
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.Config.AppID, b.Config.GuildID, desired); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}
	slog.Info("commands registered", "count", len(desired))
	return nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info("Discord bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop closes the gateway connection.
func (b *Bot) Stop() {
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Bot is ready", "user", s.State.User.Username)
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.Registry.Handle(s, i)
}

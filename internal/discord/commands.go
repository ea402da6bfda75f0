package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		h(s, i)
	}
}

// RegisterAll wires every command the bot serves.
func (b *Bot) RegisterAll() {
	for _, factory := range []func() (*discordgo.ApplicationCommand, CommandHandler){
		b.WorkCommand,
		b.DepositCommand,
		b.WithdrawCommand,
		b.MatchCommand,
		b.TradeCommand,
		b.RankCommand,
		b.ProfileCommand,
		b.StatusCommand,
		b.ForceCommand,
		b.ClearOverrideCommand,
	} {
		b.Registry.Register(factory())
	}
}

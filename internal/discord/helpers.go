package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/logger"
)

// Embed colors matching the long-standing arena announcements.
const (
	colorOpen    = 0x00ff99
	colorClosed  = 0xff5555
	colorNeutral = 0x5865f2
)

// commandContext returns a request-scoped context for a command invocation.
func commandContext() context.Context {
	return logger.WithRequestID(context.Background(), logger.GenerateRequestID())
}

// caller returns the invoking user's id and display name.
func caller(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, i.Member.User.Username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// isAdmin reports whether the caller may use privileged commands:
// guild administrators, plus holders of the configured admin role.
func (b *Bot) isAdmin(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	if i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	if b.Config.AdminRoleID == "" {
		return false
	}
	for _, roleID := range i.Member.Roles {
		if roleID == b.Config.AdminRoleID {
			return true
		}
	}
	return false
}

// respondEmbed replies to an interaction with a single embed.
func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	}); err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// respondEphemeral replies with a message only the caller sees. Used for
// rejections and admin confirmations.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to respond to interaction", "error", err)
	}
}

// options indexes interaction options by name.
func options(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		out[opt.Name] = opt
	}
	return out
}

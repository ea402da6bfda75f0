package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/logger"
)

// ChannelGate flips the UseApplicationCommands permission for @everyone on
// the arena channel. It implements reconcile.ChannelGate.
type ChannelGate struct {
	session      *discordgo.Session
	guildID      string // the @everyone role shares the guild id
	channelID    string
	logChannelID string
}

// NewChannelGate creates the arena channel gate.
func NewChannelGate(session *discordgo.Session, guildID, channelID, logChannelID string) *ChannelGate {
	return &ChannelGate{
		session:      session,
		guildID:      guildID,
		channelID:    channelID,
		logChannelID: logChannelID,
	}
}

// IsOpen reads the live permission overwrite from the platform.
func (g *ChannelGate) IsOpen(ctx context.Context) (bool, error) {
	ch, err := g.session.Channel(g.channelID)
	if err != nil {
		return false, fmt.Errorf("fetch channel: %w", err)
	}
	for _, ow := range ch.PermissionOverwrites {
		if ow.ID == g.guildID && ow.Type == discordgo.PermissionOverwriteTypeRole {
			return ow.Deny&discordgo.PermissionUseSlashCommands == 0, nil
		}
	}
	// No overwrite for @everyone means the command is usable.
	return true, nil
}

// SetOpen edits the overwrite, preserving unrelated permission bits.
func (g *ChannelGate) SetOpen(ctx context.Context, open bool) error {
	var allow, deny int64
	if ch, err := g.session.Channel(g.channelID); err == nil {
		for _, ow := range ch.PermissionOverwrites {
			if ow.ID == g.guildID && ow.Type == discordgo.PermissionOverwriteTypeRole {
				allow, deny = ow.Allow, ow.Deny
			}
		}
	}

	if open {
		allow |= discordgo.PermissionUseSlashCommands
		deny &^= discordgo.PermissionUseSlashCommands
	} else {
		deny |= discordgo.PermissionUseSlashCommands
		allow &^= discordgo.PermissionUseSlashCommands
	}

	if err := g.session.ChannelPermissionSet(g.channelID, g.guildID, discordgo.PermissionOverwriteTypeRole, allow, deny); err != nil {
		return fmt.Errorf("edit channel permission: %w", err)
	}
	return nil
}

// Announce posts the transition embed to the arena channel and mirrors a
// line to the log channel when configured.
func (g *ChannelGate) Announce(ctx context.Context, open bool) error {
	embed := &discordgo.MessageEmbed{
		Title:       "⛔ WORK CLOSED",
		Description: "Bets are closed. Have a good week!",
		Color:       colorClosed,
	}
	if open {
		embed = &discordgo.MessageEmbed{
			Title:       "💰 WORK OPEN",
			Description: "Use `/work` until 00:00 to place your bets.",
			Color:       colorOpen,
		}
	}

	if _, err := g.session.ChannelMessageSendEmbed(g.channelID, embed); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}

	if g.logChannelID != "" {
		state := "CLOSED"
		if open {
			state = "OPEN"
		}
		if _, err := g.session.ChannelMessageSend(g.logChannelID, "📝 Gate reconciled → "+state); err != nil {
			logger.FromContext(ctx).Warn("failed to mirror announcement to log channel", "error", err)
		}
	}
	return nil
}

// RoleGranter assigns title roles. It implements ledger.RoleGranter;
// grants are best-effort and titles without a configured role are skipped.
type RoleGranter struct {
	session    *discordgo.Session
	guildID    string
	titleRoles map[string]string
}

// NewRoleGranter creates the title role granter.
func NewRoleGranter(session *discordgo.Session, guildID string, titleRoles map[string]string) *RoleGranter {
	return &RoleGranter{session: session, guildID: guildID, titleRoles: titleRoles}
}

// GrantTitle applies the configured role for a title.
func (r *RoleGranter) GrantTitle(ctx context.Context, userID, title string) error {
	roleID, ok := r.titleRoles[title]
	if !ok {
		return nil
	}
	if err := r.session.GuildMemberRoleAdd(r.guildID, userID, roleID); err != nil {
		return fmt.Errorf("add role %s: %w", roleID, err)
	}
	return nil
}

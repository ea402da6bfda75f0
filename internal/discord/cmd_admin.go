package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// StatusCommand shows the current gate state. Open to everyone.
func (b *Bot) StatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "status-work",
		Description: "Show whether the work window is open",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		st, err := b.Services.Reconciler.Status(commandContext())
		if err != nil {
			respondEphemeral(s, i, "Something went wrong, try again later.")
			return
		}

		embed := &discordgo.MessageEmbed{
			Title:       "⛔ Work window closed",
			Description: st.Window,
			Color:       colorClosed,
		}
		if st.Open {
			embed.Title = "💰 Work window open"
			embed.Color = colorOpen
		}
		if st.Override != nil {
			mode := "forced closed"
			if *st.Override {
				mode = "forced open"
			}
			embed.Footer = &discordgo.MessageEmbedFooter{Text: "Manual override active: " + mode}
		}
		respondEmbed(s, i, embed)
	}

	return cmd, handler
}

// ForceCommand sets a manual override until cleared. Admin only.
func (b *Bot) ForceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "forcar-work",
		Description: "Force the work window open or closed",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "open",
				Description: "true forces open, false forces closed",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !b.isAdmin(i) {
			respondEphemeral(s, i, "⛔ Only arena arbiters can force the gate.")
			return
		}

		open := options(i)["open"].BoolValue()
		ctx := commandContext()

		var err error
		if open {
			err = b.Services.Reconciler.ForceOpen(ctx)
		} else {
			err = b.Services.Reconciler.ForceClose(ctx)
		}
		if err != nil {
			respondEphemeral(s, i, "Failed to apply the override, try again later.")
			return
		}

		state := "closed"
		if open {
			state = "open"
		}
		respondEphemeral(s, i, fmt.Sprintf("🔧 Gate forced **%s**. `/clear-override` returns it to the schedule.", state))
	}

	return cmd, handler
}

// ClearOverrideCommand returns the gate to the weekly schedule. Admin only.
func (b *Bot) ClearOverrideCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "clear-override",
		Description: "Return the work window to its weekly schedule",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !b.isAdmin(i) {
			respondEphemeral(s, i, "⛔ Only arena arbiters can clear the override.")
			return
		}

		if err := b.Services.Reconciler.ClearOverride(commandContext()); err != nil {
			respondEphemeral(s, i, "Failed to clear the override, try again later.")
			return
		}
		respondEphemeral(s, i, "🔧 Override cleared, the weekly schedule is back in charge.")
	}

	return cmd, handler
}

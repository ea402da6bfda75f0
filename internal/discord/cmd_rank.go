package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/domain"
)

var medals = []string{"🥇", "🥈", "🥉"}

// RankCommand shows the arena leaderboard.
func (b *Bot) RankCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "rank",
		Description: "Show the arena leaderboard",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "top",
				Description: "How many players to show (default 10)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		n := 0
		if opt, ok := options(i)["top"]; ok {
			n = int(opt.IntValue())
		}

		entries, err := b.Services.Rank.Leaderboard(commandContext(), n)
		if err != nil {
			respondEphemeral(s, i, "Something went wrong, try again later.")
			return
		}
		if len(entries) == 0 {
			respondEphemeral(s, i, "Nobody has fought in the arena yet.")
			return
		}

		var sb strings.Builder
		for idx, e := range entries {
			marker := fmt.Sprintf("`#%d`", idx+1)
			if idx < len(medals) {
				marker = medals[idx]
			}
			fmt.Fprintf(&sb, "%s **%s** — %dW/%dL | 🔥%d | 💰%d\n",
				marker, e.Name, e.Wins, e.Losses, e.Streak, e.Wealth)
		}

		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "🏆 Arena leaderboard",
			Description: sb.String(),
			Color:       colorNeutral,
		})
	}

	return cmd, handler
}

// ProfileCommand shows a player's account, defaulting to the caller.
func (b *Bot) ProfileCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "profile",
		Description: "Show a player's arena profile",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "player",
				Description: "Whose profile to show (defaults to you)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID, username := caller(i)
		if opt, ok := options(i)["player"]; ok {
			u := opt.UserValue(s)
			userID, username = u.ID, u.Username
		}

		p, err := b.Services.Rank.Profile(commandContext(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrPlayerNotFound) {
				respondEphemeral(s, i, fmt.Sprintf("**%s** has no arena account yet. `/work` creates one.", username))
			} else {
				respondEphemeral(s, i, "Something went wrong, try again later.")
			}
			return
		}

		respondEmbed(s, i, profileEmbed(p))
	}

	return cmd, handler
}

func profileEmbed(p *domain.Player) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "👤 " + p.Name,
		Color: colorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Wallet", Value: fmt.Sprintf("%d", p.Wallet), Inline: true},
			{Name: "Bank", Value: fmt.Sprintf("%d", p.Bank), Inline: true},
			{Name: "Wealth", Value: fmt.Sprintf("%d", p.Wealth()), Inline: true},
			{Name: "Record", Value: fmt.Sprintf("%dW / %dL", p.Wins, p.Losses), Inline: true},
			{Name: "Streak", Value: fmt.Sprintf("%d", p.Streak), Inline: true},
		},
	}

	if len(p.Items) > 0 {
		var items []string
		for item, count := range p.Items {
			items = append(items, fmt.Sprintf("%d× %s", count, item))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Items", Value: strings.Join(items, ", "),
		})
	}
	if len(p.Titles) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Titles", Value: strings.Join(p.Titles, ", "),
		})
	}
	return embed
}

package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/domain"
)

// MatchCommand settles an arena match between two players. Admin only:
// the arbiter reports the result, the bot moves the money.
func (b *Bot) MatchCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "x1",
		Description: "Record an arena duel result",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "winner",
				Description: "Who won",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "loser",
				Description: "Who lost",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "stake",
				Description: "The agreed stake",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if !b.isAdmin(i) {
			respondEphemeral(s, i, "⛔ Only arena arbiters can record matches.")
			return
		}

		opts := options(i)
		winner := opts["winner"].UserValue(s)
		loser := opts["loser"].UserValue(s)
		stake := int(opts["stake"].IntValue())

		result, err := b.Services.Ledger.RecordMatch(commandContext(),
			winner.ID, winner.Username, loser.ID, loser.Username, stake)
		if err != nil {
			if domain.IsValidationError(err) {
				respondEphemeral(s, i, "⚔️ "+err.Error())
			} else {
				respondEphemeral(s, i, "Something went wrong, try again later.")
			}
			return
		}

		desc := fmt.Sprintf("**%s** defeats **%s** for a stake of **%d** yens!\n"+
			"Winner takes **%d** (wallet: %d). Loser pays **%d** (wallet: %d).",
			winner.Username, loser.Username, stake,
			result.Payout, result.WinnerWallet, result.Payable, result.LoserWallet)
		if result.ItemDropped != "" {
			desc += fmt.Sprintf("\nRare drop for the winner: **%s**!", result.ItemDropped)
		}
		for _, grant := range result.NewTitles {
			desc += fmt.Sprintf("\n👑 <@%s> earned the title **%s**!", grant.UserID, grant.Title)
		}

		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "⚔️ Match settled",
			Description: desc,
			Color:       colorNeutral,
		})
	}

	return cmd, handler
}

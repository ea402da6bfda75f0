package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/domain"
)

// TradeCommand sends items from the caller to another player.
func (b *Bot) TradeCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "trade",
		Description: "Send items to another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "to",
				Description: "Who receives the items",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Which item to send",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Sukuna finger", Value: domain.ItemSukunaFinger},
					{Name: "Gokumonkyo", Value: domain.ItemGokumonkyo},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "How many",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		fromID, fromName := caller(i)
		opts := options(i)
		to := opts["to"].UserValue(s)
		item := opts["item"].StringValue()
		quantity := int(opts["quantity"].IntValue())

		result, err := b.Services.Ledger.Trade(commandContext(),
			fromID, fromName, to.ID, to.Username, item, quantity)
		if err != nil {
			if domain.IsValidationError(err) {
				respondEphemeral(s, i, "📦 "+err.Error())
			} else {
				respondEphemeral(s, i, "Something went wrong, try again later.")
			}
			return
		}

		desc := fmt.Sprintf("**%s** sent **%d× %s** to **%s**.",
			fromName, result.Quantity, result.Item, to.Username)
		for _, grant := range result.NewTitles {
			desc += fmt.Sprintf("\n👑 <@%s> earned the title **%s**!", grant.UserID, grant.Title)
		}

		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title:       "📦 Trade complete",
			Description: desc,
			Color:       colorNeutral,
		})
	}

	return cmd, handler
}

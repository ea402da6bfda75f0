package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/economy"
)

// WorkCommand pays the weekly reward.
func (b *Bot) WorkCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "work",
		Description: "Claim your weekly arena pay",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID, username := caller(i)
		result, err := b.Services.Economy.ClaimWeekly(commandContext(), userID, username, b.isAdmin(i))
		if err != nil {
			if domain.IsValidationError(err) {
				respondEphemeral(s, i, "🔒 "+err.Error())
			} else {
				respondEphemeral(s, i, "Something went wrong, try again later.")
			}
			return
		}

		respondEmbed(s, i, workEmbed(username, result))
	}

	return cmd, handler
}

// workEmbed renders the claim result, leading with the outcome event.
func workEmbed(username string, result *economy.ClaimResult) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "💰 Weekly pay",
		Color: colorOpen,
		Description: fmt.Sprintf("**%s** earned **%d** yens! Wallet: **%d** | Streak: **%d**",
			username, result.Delta, result.Wallet, result.Streak),
	}

	switch result.Outcome {
	case economy.OutcomeDisaster:
		embed.Title = "🌪️ Disaster!"
		embed.Color = colorClosed
		embed.Description = fmt.Sprintf("**%s** got robbed on the way home: **%d** yens. Streak reset.",
			username, result.Delta)
	case economy.OutcomeMultiplier:
		embed.Title = "✨ Lucky week!"
		embed.Description += "\nPayout multiplied by 1.5x!"
	case economy.OutcomeFinger, economy.OutcomeGokumonkyo:
		embed.Description += fmt.Sprintf("\nRare drop: **%s**!", result.ItemDropped)
	}

	if result.StreakBonus {
		embed.Description += "\n🔥 Streak bonus included!"
	}
	return embed
}

// DepositCommand moves yens from wallet to bank.
func (b *Bot) DepositCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "deposit",
		Description: "Deposit yens into your bank",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How much to deposit",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID, username := caller(i)
		amount := int(options(i)["amount"].IntValue())

		result, err := b.Services.Economy.Deposit(commandContext(), userID, username, amount)
		if err != nil {
			respondBankError(s, i, err)
			return
		}
		respondEphemeral(s, i, fmt.Sprintf("🏦 Deposited **%d**. Wallet: %d | Bank: %d", amount, result.Wallet, result.Bank))
	}

	return cmd, handler
}

// WithdrawCommand moves yens from bank to wallet.
func (b *Bot) WithdrawCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "withdraw",
		Description: "Withdraw yens from your bank",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How much to withdraw",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		userID, username := caller(i)
		amount := int(options(i)["amount"].IntValue())

		result, err := b.Services.Economy.Withdraw(commandContext(), userID, username, amount)
		if err != nil {
			respondBankError(s, i, err)
			return
		}
		respondEphemeral(s, i, fmt.Sprintf("🏦 Withdrew **%d**. Wallet: %d | Bank: %d", amount, result.Wallet, result.Bank))
	}

	return cmd, handler
}

func respondBankError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	if errors.Is(err, domain.ErrInsufficientFunds) || domain.IsValidationError(err) {
		respondEphemeral(s, i, "💸 "+err.Error())
		return
	}
	respondEphemeral(s, i, "Something went wrong, try again later.")
}

package economy

import (
	"context"
	"fmt"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/logger"
)

func (s *service) Deposit(ctx context.Context, userID, username string, amount int) (*BankResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deposit amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	var res BankResult
	err := s.players.UpdatePlayer(ctx, userID, username, func(p *domain.Player) error {
		if p.Wallet < amount {
			return fmt.Errorf("%w: wallet holds %d, tried to deposit %d", domain.ErrInsufficientFunds, p.Wallet, amount)
		}
		p.Wallet -= amount
		p.Bank += amount
		res = BankResult{Wallet: p.Wallet, Bank: p.Bank}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("deposit applied", "user_id", userID, "amount", amount)
	return &res, nil
}

func (s *service) Withdraw(ctx context.Context, userID, username string, amount int) (*BankResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: withdraw amount must be positive, got %d", domain.ErrInvalidInput, amount)
	}

	var res BankResult
	err := s.players.UpdatePlayer(ctx, userID, username, func(p *domain.Player) error {
		if p.Bank < amount {
			return fmt.Errorf("%w: bank holds %d, tried to withdraw %d", domain.ErrInsufficientFunds, p.Bank, amount)
		}
		if p.Wallet+amount > s.maxWallet {
			return fmt.Errorf("%w: withdrawal would push wallet past the %d cap", domain.ErrInsufficientFunds, s.maxWallet)
		}
		p.Bank -= amount
		p.Wallet += amount
		res = BankResult{Wallet: p.Wallet, Bank: p.Bank}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("withdrawal applied", "user_id", userID, "amount", amount)
	return &res, nil
}

// Package ledger settles arena matches and item trades between two
// accounts, including the title thresholds that follow from item drops.
package ledger

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/metrics"
	"github.com/arenabets/arenabot/internal/recorder"
	"github.com/arenabets/arenabot/internal/repository"
)

// Winner item drop bands; disjoint, first match wins.
const (
	winnerFingerChance     = 0.05
	winnerGokumonkyoChance = 0.03
)

// RoleGranter applies a title as an external platform role. Grants are
// best-effort: a failure is logged and never fails the owning operation.
type RoleGranter interface {
	GrantTitle(ctx context.Context, userID, title string) error
}

// TitleGrant names a title newly earned during an operation.
type TitleGrant struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
}

// MatchResult describes a settled match.
type MatchResult struct {
	WinnerWallet int          `json:"winner_wallet"`
	LoserWallet  int          `json:"loser_wallet"`
	Payable      int          `json:"payable"` // what the loser covered
	Payout       int          `json:"payout"`  // what the winner received after cap
	ItemDropped  string       `json:"item_dropped,omitempty"`
	NewTitles    []TitleGrant `json:"new_titles,omitempty"`
}

// TradeResult describes a completed item transfer.
type TradeResult struct {
	Item      string       `json:"item"`
	Quantity  int          `json:"quantity"`
	NewTitles []TitleGrant `json:"new_titles,omitempty"`
}

// Service defines the interface for match and trade operations.
type Service interface {
	RecordMatch(ctx context.Context, winnerID, winnerName, loserID, loserName string, stake int) (*MatchResult, error)
	Trade(ctx context.Context, fromID, fromName, toID, toName, item string, quantity int) (*TradeResult, error)
}

type service struct {
	players   repository.Player
	granter   RoleGranter
	recorder  recorder.Recorder
	maxWallet int
	rnd       func() float64 // injectable for deterministic tests
}

// NewService creates the match ledger. granter may be nil when no
// platform role integration is wired.
func NewService(players repository.Player, granter RoleGranter, rec recorder.Recorder, maxWallet int) Service {
	if maxWallet <= 0 {
		maxWallet = 5000
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &service{
		players:   players,
		granter:   granter,
		recorder:  rec,
		maxWallet: maxWallet,
		rnd:       rand.Float64,
	}
}

func (s *service) RecordMatch(ctx context.Context, winnerID, winnerName, loserID, loserName string, stake int) (*MatchResult, error) {
	log := logger.FromContext(ctx)

	if stake <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidStake, stake)
	}
	if winnerID == loserID {
		return nil, domain.ErrSameParticipant
	}

	var res MatchResult
	err := s.players.UpdatePlayerPair(ctx, winnerID, winnerName, loserID, loserName, func(winner, loser *domain.Player) error {
		winner.Wins++
		winner.Streak++
		loser.Losses++
		loser.Streak = 0

		// The loser only pays what they have; the winner's payout is not
		// reduced to match. Known asymmetry, kept as observed.
		payable := stake
		if loser.Wallet < payable {
			payable = loser.Wallet
		}
		loser.Wallet -= payable

		payout := stake * 2
		before := winner.Wallet
		winner.Wallet += payout
		if winner.Wallet > s.maxWallet {
			winner.Wallet = s.maxWallet
		}

		if item := s.rollWinnerDrop(); item != "" {
			winner.AddItem(item, 1)
			res.ItemDropped = item
		}
		res.NewTitles = awardTitles(winner)

		res.WinnerWallet = winner.Wallet
		res.LoserWallet = loser.Wallet
		res.Payable = payable
		res.Payout = winner.Wallet - before
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.MatchesTotal.Inc()
	if recErr := s.recorder.RecordMatch(&recorder.MatchEvent{
		WinnerID: winnerID,
		LoserID:  loserID,
		Stake:    stake,
		Payable:  res.Payable,
		Payout:   res.Payout,
	}); recErr != nil {
		log.Warn("failed to record match", "error", recErr)
	}

	s.grantRoles(ctx, res.NewTitles)

	log.Info("match recorded",
		"winner_id", winnerID, "loser_id", loserID,
		"stake", stake, "payable", res.Payable, "payout", res.Payout)
	return &res, nil
}

func (s *service) Trade(ctx context.Context, fromID, fromName, toID, toName, item string, quantity int) (*TradeResult, error) {
	log := logger.FromContext(ctx)

	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", domain.ErrInvalidInput, quantity)
	}
	if !domain.KnownItems[item] {
		return nil, fmt.Errorf("%w: unknown item %q", domain.ErrInvalidInput, item)
	}
	if fromID == toID {
		return nil, domain.ErrSameParticipant
	}

	var res TradeResult
	err := s.players.UpdatePlayerPair(ctx, fromID, fromName, toID, toName, func(from, to *domain.Player) error {
		if from.ItemCount(item) < quantity {
			return fmt.Errorf("%w: holds %d of %s, tried to send %d",
				domain.ErrInsufficientQuantity, from.ItemCount(item), item, quantity)
		}
		from.Items[item] -= quantity
		if from.Items[item] == 0 {
			delete(from.Items, item)
		}
		to.AddItem(item, quantity)

		res.Item = item
		res.Quantity = quantity
		res.NewTitles = awardTitles(to)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TradesTotal.Inc()
	if recErr := s.recorder.RecordTrade(&recorder.TradeEvent{
		FromID:   fromID,
		ToID:     toID,
		Item:     item,
		Quantity: quantity,
	}); recErr != nil {
		log.Warn("failed to record trade", "error", recErr)
	}

	s.grantRoles(ctx, res.NewTitles)

	log.Info("trade completed", "from_id", fromID, "to_id", toID, "item", item, "quantity", quantity)
	return &res, nil
}

// rollWinnerDrop returns the item kind dropped for the winner, or "".
func (s *service) rollWinnerDrop() string {
	roll := s.rnd()
	switch {
	case roll < winnerFingerChance:
		return domain.ItemSukunaFinger
	case roll < winnerFingerChance+winnerGokumonkyoChance:
		return domain.ItemGokumonkyo
	default:
		return ""
	}
}

// awardTitles records any newly earned titles on the player and returns
// the grants. The title record is kept even when the external role grant
// later fails.
func awardTitles(p *domain.Player) []TitleGrant {
	var grants []TitleGrant
	for _, title := range CheckTitles(p) {
		p.Titles = append(p.Titles, title)
		grants = append(grants, TitleGrant{UserID: p.ID, Title: title})
	}
	return grants
}

// grantRoles applies platform roles for new titles, best-effort.
func (s *service) grantRoles(ctx context.Context, grants []TitleGrant) {
	log := logger.FromContext(ctx)
	for _, grant := range grants {
		metrics.TitlesGrantedTotal.WithLabelValues(grant.Title).Inc()
		if s.granter == nil {
			continue
		}
		if err := s.granter.GrantTitle(ctx, grant.UserID, grant.Title); err != nil {
			log.Warn("failed to grant title role", "error", err, "user_id", grant.UserID, "title", grant.Title)
		}
	}
}

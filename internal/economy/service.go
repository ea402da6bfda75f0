package economy

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/metrics"
	"github.com/arenabets/arenabot/internal/recorder"
	"github.com/arenabets/arenabot/internal/repository"
)

// ClaimResult describes one applied weekly claim.
type ClaimResult struct {
	Delta       int      `json:"delta"` // applied wallet change after floor/cap
	Wallet      int      `json:"wallet"`
	Streak      int      `json:"streak"`
	Outcome     Outcome  `json:"outcome"`
	StreakBonus bool     `json:"streak_bonus"`
	ItemDropped string   `json:"item_dropped,omitempty"`
	Events      []domain.EventTag `json:"events,omitempty"`
}

// BankResult describes balances after a deposit or withdrawal.
type BankResult struct {
	Wallet int `json:"wallet"`
	Bank   int `json:"bank"`
}

// Service defines the interface for the weekly reward economy.
type Service interface {
	// ClaimWeekly pays the weekly reward. Privileged callers bypass the
	// window gate only; the one-claim-per-date guard always applies.
	ClaimWeekly(ctx context.Context, userID, username string, privileged bool) (*ClaimResult, error)

	// Deposit moves currency from wallet to bank.
	Deposit(ctx context.Context, userID, username string, amount int) (*BankResult, error)

	// Withdraw moves currency from bank to wallet, subject to the wallet cap.
	Withdraw(ctx context.Context, userID, username string, amount int) (*BankResult, error)
}

type service struct {
	players  repository.Player
	state    repository.State
	gate     *gate.Gate
	recorder recorder.Recorder

	baseReward     int
	disasterChance float64
	maxWallet      int

	rnd func() float64 // injectable for deterministic tests
	now func() time.Time
}

// NewService creates the reward engine. Zero tunables fall back to the
// observed production values.
func NewService(players repository.Player, state repository.State, g *gate.Gate, rec recorder.Recorder, baseReward int, disasterChance float64, maxWallet int) Service {
	if baseReward <= 0 {
		baseReward = DefaultBaseReward
	}
	if disasterChance <= 0 {
		disasterChance = DefaultDisasterChance
	}
	if maxWallet <= 0 {
		maxWallet = DefaultMaxWallet
	}
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &service{
		players:        players,
		state:          state,
		gate:           g,
		recorder:       rec,
		baseReward:     baseReward,
		disasterChance: disasterChance,
		maxWallet:      maxWallet,
		rnd:            rand.Float64,
		now:            time.Now,
	}
}

func (s *service) ClaimWeekly(ctx context.Context, userID, username string, privileged bool) (*ClaimResult, error) {
	log := logger.FromContext(ctx)

	st, err := s.state.GetState(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !s.gate.IsWindowOpen(now, st.Override) && !privileged {
		return nil, domain.ErrWindowClosed
	}
	today := s.gate.ClaimDate(now)

	var res ClaimResult
	err = s.players.UpdatePlayer(ctx, userID, username, func(p *domain.Player) error {
		if p.LastWorkDate == today {
			// Conscious double-submission guard, not idempotent success.
			return domain.ErrAlreadyClaimed
		}

		newStreak := 1
		if p.LastWorkDate != "" {
			gap, gapErr := s.gate.DaysBetween(p.LastWorkDate, today)
			if gapErr == nil && gap == StreakContinuationDays {
				newStreak = p.Streak + 1
			}
		}

		delta := s.baseReward
		streakBonus := newStreak%StreakBonusEvery == 0
		if streakBonus {
			delta += StreakBonusAmount
		}

		outcome := rollOutcome(outcomeTable(s.disasterChance), s.rnd())
		events := []domain.EventTag{}
		switch outcome {
		case OutcomeDisaster:
			// Disaster overrides the entire claim: penalty instead of
			// payout, streak gone, no other roll applies.
			delta = -DisasterPenalty
			newStreak = 0
			streakBonus = false
			events = append(events, domain.EventDisaster)
		case OutcomeMultiplier:
			delta = int(math.Round(float64(delta) * RewardMultiplier))
			events = append(events, domain.EventMultiplier)
		case OutcomeFinger, OutcomeGokumonkyo:
			p.AddItem(droppedItem(outcome), 1)
			res.ItemDropped = droppedItem(outcome)
			events = append(events, domain.EventItemDrop)
		}
		if streakBonus {
			events = append(events, domain.EventStreakBonus)
		}

		before := p.Wallet
		p.Wallet += delta
		if p.Wallet < 0 {
			p.Wallet = 0
		}
		if p.Wallet > s.maxWallet {
			p.Wallet = s.maxWallet
		}

		p.LastWorkDate = today
		p.Streak = newStreak

		res.Delta = p.Wallet - before
		res.Wallet = p.Wallet
		res.Streak = newStreak
		res.Outcome = outcome
		res.StreakBonus = streakBonus
		res.Events = events
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ClaimsTotal.WithLabelValues(string(res.Outcome)).Inc()
	if recErr := s.recorder.RecordClaim(&recorder.ClaimEvent{
		UserID:   userID,
		Username: username,
		Date:     today,
		Delta:    res.Delta,
		Streak:   res.Streak,
		Outcome:  string(res.Outcome),
	}); recErr != nil {
		log.Warn("failed to record claim", "error", recErr, "user_id", userID)
	}

	log.Info("weekly reward claimed",
		"user_id", userID, "username", username,
		"delta", res.Delta, "streak", res.Streak, "outcome", res.Outcome)
	return &res, nil
}

// Package rank provides read-only projections over the player store.
package rank

import (
	"context"
	"fmt"
	"sort"

	"github.com/arenabets/arenabot/internal/domain"
	"github.com/arenabets/arenabot/internal/repository"
)

// DefaultTopN is the leaderboard size when the caller does not specify one.
const DefaultTopN = 10

// Entry is one leaderboard row.
type Entry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Streak int    `json:"streak"`
	Wealth int    `json:"wealth"`
}

// Service defines the read-only ranking views.
type Service interface {
	// Leaderboard returns the top n players by wins, tie-broken by wealth.
	Leaderboard(ctx context.Context, n int) ([]Entry, error)

	// Profile returns a player's account or ErrPlayerNotFound.
	Profile(ctx context.Context, userID string) (*domain.Player, error)
}

type service struct {
	players repository.Player
}

// NewService creates the ranking service.
func NewService(players repository.Player) Service {
	return &service{players: players}
}

func (s *service) Leaderboard(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = DefaultTopN
	}

	players, err := s.players.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	// Wins desc, wealth desc, then user id for a stable order between
	// identical records.
	sort.SliceStable(players, func(i, j int) bool {
		if players[i].Wins != players[j].Wins {
			return players[i].Wins > players[j].Wins
		}
		if players[i].Wealth() != players[j].Wealth() {
			return players[i].Wealth() > players[j].Wealth()
		}
		return players[i].ID < players[j].ID
	})

	if len(players) > n {
		players = players[:n]
	}

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		entries = append(entries, Entry{
			UserID: p.ID,
			Name:   p.Name,
			Wins:   p.Wins,
			Losses: p.Losses,
			Streak: p.Streak,
			Wealth: p.Wealth(),
		})
	}
	return entries, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*domain.Player, error) {
	p, err := s.players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, userID)
	}
	return p, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/arenabets/arenabot/internal/domain"
)

// The store implements repository.Player and repository.State directly;
// there is no separate database layer to adapt.

// GetPlayer returns a copy of the player, or nil when the account does
// not exist yet.
func (s *Store) GetPlayer(ctx context.Context, userID string) (*domain.Player, error) {
	var out *domain.Player
	err := s.View(ctx, func(doc *domain.Document) error {
		if p, ok := doc.Players[userID]; ok {
			out = p.Clone()
		}
		return nil
	})
	return out, err
}

// ListPlayers returns copies of every account.
func (s *Store) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var out []domain.Player
	err := s.View(ctx, func(doc *domain.Document) error {
		out = make([]domain.Player, 0, len(doc.Players))
		for _, p := range doc.Players {
			out = append(out, *p.Clone())
		}
		return nil
	})
	return out, err
}

// UpdatePlayer applies fn to the (lazily created) player record inside
// one atomic write.
func (s *Store) UpdatePlayer(ctx context.Context, userID, username string, fn func(*domain.Player) error) error {
	if userID == "" {
		return fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}
	return s.Update(ctx, func(doc *domain.Document) error {
		return fn(doc.EnsurePlayer(userID, username))
	})
}

// UpdatePlayerPair applies fn to two distinct player records inside one
// atomic write.
func (s *Store) UpdatePlayerPair(ctx context.Context, aID, aName, bID, bName string, fn func(a, b *domain.Player) error) error {
	if aID == "" || bID == "" {
		return fmt.Errorf("%w: empty user id", domain.ErrInvalidInput)
	}
	if aID == bID {
		return domain.ErrSameParticipant
	}
	return s.Update(ctx, func(doc *domain.Document) error {
		return fn(doc.EnsurePlayer(aID, aName), doc.EnsurePlayer(bID, bName))
	})
}

// GetState returns the service-state record.
func (s *Store) GetState(ctx context.Context) (domain.ServiceState, error) {
	var st domain.ServiceState
	err := s.View(ctx, func(doc *domain.Document) error {
		st = doc.State()
		return nil
	})
	return st, err
}

// SetOverride persists the manual override; nil clears it.
func (s *Store) SetOverride(ctx context.Context, override *bool) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		if override == nil {
			doc.Override = nil
			return nil
		}
		v := *override
		doc.Override = &v
		return nil
	})
}

// SetLastOpen records the open/closed indicator last applied externally.
func (s *Store) SetLastOpen(ctx context.Context, open bool) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		doc.LastOpen = &open
		return nil
	})
}

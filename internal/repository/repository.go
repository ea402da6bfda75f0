// Package repository defines the persistence interfaces consumed by the
// service layer. The JSON document store implements all of them; services
// never see the file format.
package repository

import (
	"context"

	"github.com/arenabets/arenabot/internal/domain"
)

// Player provides account access. Mutations run inside the store's
// serialized write path: the callback sees a fresh copy of the record and
// either every change it makes is persisted or none is.
type Player interface {
	// GetPlayer returns a copy of the player, or nil when unknown.
	GetPlayer(ctx context.Context, userID string) (*domain.Player, error)

	// ListPlayers returns copies of every account.
	ListPlayers(ctx context.Context) ([]domain.Player, error)

	// UpdatePlayer applies fn to the player, creating the account lazily.
	// A non-nil error from fn aborts the write and is returned unwrapped.
	UpdatePlayer(ctx context.Context, userID, username string, fn func(*domain.Player) error) error

	// UpdatePlayerPair applies fn to two distinct players in one atomic write.
	UpdatePlayerPair(ctx context.Context, aID, aName, bID, bName string, fn func(a, b *domain.Player) error) error
}

// State provides access to the single service-state record.
type State interface {
	GetState(ctx context.Context) (domain.ServiceState, error)
	SetOverride(ctx context.Context, override *bool) error
	SetLastOpen(ctx context.Context, open bool) error
}

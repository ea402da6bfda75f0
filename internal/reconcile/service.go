// Package reconcile keeps the externally visible arena gate (a channel
// permission on the platform) in line with the schedule and the manual
// override. It is a self-healing poll loop: drift is tolerated and fixed
// on the next tick, never pushed instantly.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/metrics"
	"github.com/arenabets/arenabot/internal/repository"
)

// ChannelGate is the external open/closed indicator. Implementations talk
// to the platform; Announce is best-effort and its failure never fails a
// reconcile pass.
type ChannelGate interface {
	IsOpen(ctx context.Context) (bool, error)
	SetOpen(ctx context.Context, open bool) error
	Announce(ctx context.Context, open bool) error
}

// Status is the current gate verdict for status replies.
type Status struct {
	Open     bool   `json:"open"`
	Override *bool  `json:"override"`
	Window   string `json:"window"`
}

// Service defines reconciliation plus the privileged override operations.
type Service interface {
	// Reconcile flips the external indicator when it diverges from the
	// desired state. Returns whether a flip was applied.
	Reconcile(ctx context.Context) (bool, error)

	ForceOpen(ctx context.Context) error
	ForceClose(ctx context.Context) error
	ClearOverride(ctx context.Context) error
	Status(ctx context.Context) (*Status, error)
}

type service struct {
	state   repository.State
	gate    *gate.Gate
	channel ChannelGate // nil when running headless
	now     func() time.Time
}

// NewService creates the reconciler. channel may be nil: the service then
// tracks desired state in the store only, and a gateway process corrects
// the real channel on its own next tick.
func NewService(state repository.State, g *gate.Gate, channel ChannelGate) Service {
	return &service{
		state:   state,
		gate:    g,
		channel: channel,
		now:     time.Now,
	}
}

func (s *service) Reconcile(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	st, err := s.state.GetState(ctx)
	if err != nil {
		return false, err
	}
	desired := s.gate.IsWindowOpen(s.now(), st.Override)

	// Prefer the live external indicator; fall back to the last value we
	// applied when the platform is unreachable.
	observed := st.LastOpen
	if s.channel != nil {
		if open, obsErr := s.channel.IsOpen(ctx); obsErr == nil {
			observed = &open
		} else {
			log.Warn("failed to observe channel gate, using cached indicator", "error", obsErr)
		}
	}

	if observed != nil && *observed == desired {
		return false, nil
	}

	if s.channel != nil {
		if err := s.channel.SetOpen(ctx, desired); err != nil {
			return false, fmt.Errorf("apply gate state: %w", err)
		}
	}
	if err := s.state.SetLastOpen(ctx, desired); err != nil {
		return false, err
	}

	direction := metrics.DirectionClosed
	if desired {
		direction = metrics.DirectionOpened
	}
	metrics.ReconcileFlipsTotal.WithLabelValues(direction).Inc()

	if s.channel != nil {
		if err := s.channel.Announce(ctx, desired); err != nil {
			log.Warn("failed to announce gate transition", "error", err)
		}
	}

	log.Info("gate reconciled", "open", desired, "override_set", st.Override != nil)
	return true, nil
}

func (s *service) ForceOpen(ctx context.Context) error {
	return s.setOverride(ctx, boolPtr(true))
}

func (s *service) ForceClose(ctx context.Context) error {
	return s.setOverride(ctx, boolPtr(false))
}

func (s *service) ClearOverride(ctx context.Context) error {
	return s.setOverride(ctx, nil)
}

func (s *service) setOverride(ctx context.Context, override *bool) error {
	if err := s.state.SetOverride(ctx, override); err != nil {
		return err
	}
	// Apply immediately rather than waiting for the next poll tick.
	_, err := s.Reconcile(ctx)
	return err
}

func (s *service) Status(ctx context.Context) (*Status, error) {
	st, err := s.state.GetState(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{
		Open:     s.gate.IsWindowOpen(s.now(), st.Override),
		Override: st.Override,
		Window:   s.gate.Describe(),
	}, nil
}

func boolPtr(b bool) *bool { return &b }

// Package scheduler drives the reconciler: a five-minute poll plus
// calendar anchors at the window-open and window-close instants so the
// gate flips with low latency at the boundaries.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/arenabets/arenabot/internal/gate"
	"github.com/arenabets/arenabot/internal/logger"
	"github.com/arenabets/arenabot/internal/reconcile"
)

// PollSpec is the drift-correction cadence.
const PollSpec = "*/5 * * * *"

// Scheduler manages the cron tasks.
type Scheduler struct {
	Cron       *cron.Cron
	Reconciler reconcile.Service
	Ctx        context.Context
}

// New creates a Scheduler running in the gate's timezone.
func New(ctx context.Context, g *gate.Gate, rec reconcile.Service) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithLocation(g.Location())),
		Reconciler: rec,
		Ctx:        ctx,
	}
}

// RegisterAll registers the poll and the open/close anchors derived from
// the gate config.
func (s *Scheduler) RegisterAll(cfg gate.Config) error {
	if _, err := s.Cron.AddFunc(PollSpec, s.tick); err != nil {
		return fmt.Errorf("register poll: %w", err)
	}

	openSpec := fmt.Sprintf("0 %d * * %d", cfg.OpenHour, int(cfg.Weekday))
	if _, err := s.Cron.AddFunc(openSpec, s.tick); err != nil {
		return fmt.Errorf("register open anchor: %w", err)
	}

	// Close anchor: midnight after the window day when the window runs to
	// 24, otherwise the close hour on the window day itself.
	closeSpec := fmt.Sprintf("0 %d * * %d", cfg.CloseHour, int(cfg.Weekday))
	if cfg.CloseHour == 24 {
		closeSpec = fmt.Sprintf("0 0 * * %d", (int(cfg.Weekday)+1)%7)
	}
	if _, err := s.Cron.AddFunc(closeSpec, s.tick); err != nil {
		return fmt.Errorf("register close anchor: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logger.FromContext(s.Ctx).Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	ctx := s.Cron.Stop()
	<-ctx.Done()
	logger.FromContext(s.Ctx).Info("scheduler stopped")
}

// RunNow executes a reconcile pass immediately (startup, manual trigger).
func (s *Scheduler) RunNow() {
	s.tick()
}

func (s *Scheduler) tick() {
	ctx := logger.WithRequestID(s.Ctx, logger.GenerateRequestID())
	if _, err := s.Reconciler.Reconcile(ctx); err != nil {
		logger.FromContext(ctx).Error("reconcile tick failed", "error", err)
	}
}

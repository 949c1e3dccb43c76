// Package retention enforces data retention policies on a cron schedule:
// old sandbox events and finished guardian actions are pruned so the event
// table stays replayable without growing unbounded.
package retention

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// EventPruner deletes events older than a cutoff. Implemented by
// services.EventService.
type EventPruner interface {
	PruneBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// ActionPruner deletes finished guardian actions older than a cutoff.
// Implemented by services.GuardianService.
type ActionPruner interface {
	PruneFinished(ctx context.Context, cutoff time.Time) (int, error)
}

// Config tunes the retention windows and the sweep schedule.
type Config struct {
	// Schedule is a cron expression (robfig/cron v3 syntax, @every works).
	Schedule string `yaml:"schedule"`
	// EventTTL is how long sandbox events stay replayable.
	EventTTL time.Duration `yaml:"event_ttl"`
	// ActionRetention is how long finished guardian actions are kept.
	ActionRetention time.Duration `yaml:"action_retention"`
}

// DefaultConfig returns the retention defaults.
func DefaultConfig() Config {
	return Config{
		Schedule:        "@every 10m",
		EventTTL:        7 * 24 * time.Hour,
		ActionRetention: 30 * 24 * time.Hour,
	}
}

// Service runs the retention sweeps. All operations are idempotent and safe
// to run from multiple pods.
type Service struct {
	cfg     Config
	events  EventPruner
	actions ActionPruner
	cron    *cron.Cron
}

// NewService creates a retention service; Start schedules it.
func NewService(cfg Config, events EventPruner, actions ActionPruner) *Service {
	if cfg.Schedule == "" {
		cfg.Schedule = "@every 10m"
	}
	return &Service{cfg: cfg, events: events, actions: actions}
}

// Start schedules the sweep. Returns an error only for an invalid schedule.
func (s *Service) Start(ctx context.Context) error {
	s.cron = cron.New()
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() { s.RunOnce(ctx) })
	if err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("Retention service started",
		"schedule", s.cfg.Schedule,
		"event_ttl", s.cfg.EventTTL,
		"action_retention", s.cfg.ActionRetention)
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Service) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	slog.Info("Retention service stopped")
}

// RunOnce executes one sweep of every policy. Failures are logged, not
// returned: one policy failing must not stop the others.
func (s *Service) RunOnce(ctx context.Context) {
	now := time.Now()

	if s.cfg.EventTTL > 0 {
		count, err := s.events.PruneBefore(ctx, now.Add(-s.cfg.EventTTL))
		if err != nil {
			slog.Error("Retention: event prune failed", "error", err)
		} else if count > 0 {
			slog.Info("Retention: pruned old events", "count", count)
		}
	}

	if s.cfg.ActionRetention > 0 {
		count, err := s.actions.PruneFinished(ctx, now.Add(-s.cfg.ActionRetention))
		if err != nil {
			slog.Error("Retention: guardian action prune failed", "error", err)
		} else if count > 0 {
			slog.Info("Retention: pruned finished guardian actions", "count", count)
		}
	}
}

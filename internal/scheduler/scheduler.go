package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/service"
)

// Collector defines the interface for collection runs.
type Collector interface {
	Collect(ctx context.Context) (*domain.CollectResult, error)
}

type Scheduler struct {
	collector  Collector
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(collector Collector, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		collector:  collector,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runCollect(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCollect(ctx)
		}
	}
}

func (s *Scheduler) runCollect(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	result, err := s.collector.Collect(runCtx)
	if errors.Is(err, service.ErrRunActive) {
		// A manual trigger holds the guard; the next tick will retry.
		s.logger.Warn("collection already running, skipping tick")
		return
	}
	if err != nil {
		s.logger.Error("collection failed", "error", err)
		return
	}

	s.logger.Info("collection finished",
		"status", result.Status,
		"source", result.Source,
		"collected", result.Collected,
		"failed", result.Failed,
		"duration", result.Duration,
	)
}

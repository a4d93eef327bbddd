package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sound_tracker/internal/domain"
)

// ErrAllSourcesFailed is returned when every adapter in the cascade
// failed to produce a usable result.
var ErrAllSourcesFailed = errors.New("all data sources failed")

// Cascade tries sources strictly in priority order and uses the first
// that succeeds. Results from different sources are never merged.
type Cascade struct {
	sources []Source
	logger  *slog.Logger
}

func NewCascade(logger *slog.Logger, sources ...Source) *Cascade {
	return &Cascade{
		sources: sources,
		logger:  logger.With("component", "cascade"),
	}
}

// Fetch returns the first successful source's sounds along with that
// source's name. When every source fails, the error wraps
// ErrAllSourcesFailed and each per-source failure.
func (c *Cascade) Fetch(ctx context.Context) ([]domain.CollectedSound, string, error) {
	var failures []error

	for _, src := range c.sources {
		c.logger.Info("trying source", "source", src.Name())

		sounds, err := src.FetchTrending(ctx)
		if err != nil {
			c.logger.Warn("source failed", "source", src.Name(), "error", err)
			failures = append(failures, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if len(sounds) == 0 {
			c.logger.Warn("source returned no sounds", "source", src.Name())
			failures = append(failures, fmt.Errorf("%s: no sounds returned", src.Name()))
			continue
		}

		c.logger.Info("source succeeded", "source", src.Name(), "sounds", len(sounds))
		return sounds, src.Name(), nil
	}

	return nil, "", errors.Join(ErrAllSourcesFailed, errors.Join(failures...))
}

package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/trend"
)

const (
	EnrichStatusFresh    = "fresh"
	EnrichStatusEnriched = "enriched"
)

// EnrichOutcome is what an enrichment request reports back.
type EnrichOutcome struct {
	Status        string
	EnrichedAt    time.Time
	UsageCount    int64
	VideosCount   int
	HashtagsCount int
}

// EnrichmentService runs the enrichment fetcher for a single sound and
// merges the result into the store, recomputing trend signals from the
// updated snapshot series.
type EnrichmentService struct {
	fetcher    Enricher
	sounds     SoundStore
	snapshots  SnapshotStore
	videos     VideoStore
	hashtags   HashtagStore
	embeds     EmbedResolver
	txManager  TransactionManager
	guard      *RunGuard
	staleAfter time.Duration
	logger     *slog.Logger
}

func NewEnrichmentService(
	fetcher Enricher,
	sounds SoundStore,
	snapshots SnapshotStore,
	videos VideoStore,
	hashtags HashtagStore,
	embeds EmbedResolver,
	txManager TransactionManager,
	guard *RunGuard,
	staleAfter time.Duration,
	logger *slog.Logger,
) *EnrichmentService {
	return &EnrichmentService{
		fetcher:    fetcher,
		sounds:     sounds,
		snapshots:  snapshots,
		videos:     videos,
		hashtags:   hashtags,
		embeds:     embeds,
		txManager:  txManager,
		guard:      guard,
		staleAfter: staleAfter,
		logger:     logger.With("component", "enrichment"),
	}
}

// EnrichSound enriches one sound unless its data is still fresh:
// enriched within the staleness threshold with a non-zero usage count
// and at least one stored example video. Returns domain.ErrSoundNotFound
// for unknown ids and ErrRunActive when another run holds the guard;
// enrichment-fetch failures pass through (callers map enrich.ErrUnavailable
// to an upstream-failure response).
func (s *EnrichmentService) EnrichSound(ctx context.Context, id string) (*EnrichOutcome, error) {
	release, err := s.guard.Acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	sound, err := s.sounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fresh, err := s.isFresh(ctx, sound); err != nil {
		return nil, err
	} else if fresh {
		return &EnrichOutcome{Status: EnrichStatusFresh, EnrichedAt: *sound.EnrichedAt}, nil
	}

	result, err := s.fetcher.Enrich(ctx, sound.ID, sound.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.merge(ctx, sound, result, now); err != nil {
		return nil, err
	}

	s.logger.Info("sound enriched",
		"sound_id", sound.ID,
		"usage_count", result.UsageCount,
		"videos", len(result.Videos),
		"hashtags", len(result.Hashtags),
	)

	return &EnrichOutcome{
		Status:        EnrichStatusEnriched,
		EnrichedAt:    now,
		UsageCount:    result.UsageCount,
		VideosCount:   len(result.Videos),
		HashtagsCount: len(result.Hashtags),
	}, nil
}

func (s *EnrichmentService) isFresh(ctx context.Context, sound *domain.Sound) (bool, error) {
	if sound.EnrichedAt == nil || time.Since(*sound.EnrichedAt) >= s.staleAfter {
		return false, nil
	}
	if sound.UsageCount == 0 {
		return false, nil
	}

	videos, err := s.videos.ListBySound(ctx, sound.ID)
	if err != nil {
		return false, fmt.Errorf("list videos: %w", err)
	}
	return len(videos) > 0, nil
}

// merge writes the enrichment result: replaces videos (with resolved
// embeds) and hashtags, upserts today's snapshot, and recomputes
// trajectory and growth from the updated series.
func (s *EnrichmentService) merge(ctx context.Context, sound *domain.Sound, result *domain.EnrichmentResult, now time.Time) error {
	var embedHTML map[string]string
	if len(result.Videos) > 0 {
		urls := make([]string, 0, len(result.Videos))
		for _, v := range result.Videos {
			urls = append(urls, v.VideoURL)
		}
		embedHTML = s.embeds.FetchBatch(ctx, urls)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	avgViews, avgLikes, avgShares, avgComments := averageEngagement(result.Videos)

	todaySnapshot := domain.SoundSnapshot{
		SoundID:      sound.ID,
		SnapshotDate: today,
		UsageCount:   result.UsageCount,
		Rank:         sound.Rank,
		AvgViews:     math.Round(avgViews),
		AvgLikes:     math.Round(avgLikes),
		AvgShares:    math.Round(avgShares),
		AvgComments:  math.Round(avgComments),
	}

	rows := exampleVideoRows(sound.ID, result.Videos, embedHTML, now)

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.videos.ReplaceForSound(txCtx, sound.ID, rows); err != nil {
			return fmt.Errorf("replace videos: %w", err)
		}
		if len(result.Hashtags) > 0 {
			if err := s.hashtags.ReplaceForSound(txCtx, sound.ID, normalizeTags(result.Hashtags)); err != nil {
				return fmt.Errorf("replace hashtags: %w", err)
			}
		}
		if err := s.snapshots.Upsert(txCtx, &todaySnapshot); err != nil {
			return fmt.Errorf("upsert snapshot: %w", err)
		}

		series, err := s.snapshots.ListBySound(txCtx, sound.ID)
		if err != nil {
			return fmt.Errorf("reload snapshots: %w", err)
		}

		trajectory := trend.Trajectory(series)
		growthRate := trend.GrowthRate(series)

		if err := s.sounds.SetEnrichment(txCtx, sound.ID, result.UsageCount, trajectory, growthRate, now); err != nil {
			return fmt.Errorf("update sound: %w", err)
		}
		return nil
	})
}

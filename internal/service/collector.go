package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/trend"
)

// videosPerSound bounds how many example videos a collection run keeps
// per sound.
const videosPerSound = 5

// Collector orchestrates one collection run: source cascade, embed
// resolution, trend derivation, and per-sound persistence. It is the
// sole writer of every entity.
type Collector struct {
	cascade   *Cascade
	sounds    SoundStore
	snapshots SnapshotStore
	videos    VideoStore
	hashtags  HashtagStore
	logs      CollectionLogStore
	embeds    EmbedResolver
	txManager TransactionManager
	publisher Publisher // optional, may be nil
	guard     *RunGuard
	logger    *slog.Logger
}

func NewCollector(
	cascade *Cascade,
	sounds SoundStore,
	snapshots SnapshotStore,
	videos VideoStore,
	hashtags HashtagStore,
	logs CollectionLogStore,
	embeds EmbedResolver,
	txManager TransactionManager,
	publisher Publisher,
	guard *RunGuard,
	logger *slog.Logger,
) *Collector {
	return &Collector{
		cascade:   cascade,
		sounds:    sounds,
		snapshots: snapshots,
		videos:    videos,
		hashtags:  hashtags,
		logs:      logs,
		embeds:    embeds,
		txManager: txManager,
		publisher: publisher,
		guard:     guard,
		logger:    logger.With("component", "collector"),
	}
}

// Collect runs a full collection. Returns ErrRunActive when another run
// holds the guard and ErrAllSourcesFailed when no source produced data;
// per-sound write failures do not fail the run, they demote its status
// to partial (or failed when nothing was written).
func (c *Collector) Collect(ctx context.Context) (*domain.CollectResult, error) {
	release, err := c.guard.Acquire()
	if err != nil {
		return nil, err
	}
	defer release()

	return c.collect(ctx)
}

func (c *Collector) collect(ctx context.Context) (*domain.CollectResult, error) {
	startTime := time.Now()
	c.logger.Info("starting collection")

	logID, err := c.logs.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start collection log: %w", err)
	}

	sounds, sourceUsed, err := c.cascade.Fetch(ctx)
	if err != nil {
		if ferr := c.logs.Finalize(ctx, logID, domain.CollectionFailed, "", 0, "All sources failed"); ferr != nil {
			c.logger.Error("finalize log failed", "error", ferr)
		}
		return &domain.CollectResult{Status: domain.CollectionFailed, Duration: time.Since(startTime)}, err
	}

	embedHTML := c.resolveEmbeds(ctx, sounds)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	collected, failed := 0, 0
	for i := range sounds {
		rank := i + 1
		trajectory, growthRate, err := c.persistSound(ctx, &sounds[i], rank, today, embedHTML)
		if err != nil {
			failed++
			c.logger.Error("persist sound failed",
				"sound_id", sounds[i].ID,
				"rank", rank,
				"error", err,
			)
			continue
		}
		collected++
		c.publish(ctx, &sounds[i], trajectory, growthRate, rank, sourceUsed, now)
	}

	status := runStatus(collected, failed)
	errMsg := ""
	if failed > 0 {
		errMsg = fmt.Sprintf("%d of %d sounds failed to persist", failed, len(sounds))
	}
	if err := c.logs.Finalize(ctx, logID, status, sourceUsed, collected, errMsg); err != nil {
		c.logger.Error("finalize log failed", "error", err)
	}

	result := &domain.CollectResult{
		Source:    sourceUsed,
		Collected: collected,
		Failed:    failed,
		Status:    status,
		Duration:  time.Since(startTime),
	}

	c.logger.Info("collection completed",
		"source", sourceUsed,
		"collected", collected,
		"failed", failed,
		"status", status,
		"duration", result.Duration,
	)

	return result, nil
}

// resolveEmbeds flattens every example-video URL across all sounds into
// one batch. Embed HTML is optional enrichment; an empty map is fine.
func (c *Collector) resolveEmbeds(ctx context.Context, sounds []domain.CollectedSound) map[string]string {
	var urls []string
	for _, s := range sounds {
		for _, v := range s.Videos {
			if v.VideoURL != "" {
				urls = append(urls, v.VideoURL)
			}
		}
	}
	if len(urls) == 0 {
		return nil
	}

	c.logger.Info("resolving embeds", "videos", len(urls))
	return c.embeds.FetchBatch(ctx, urls)
}

// persistSound derives today's trend signals for one sound and writes
// the sound, its snapshot, and its replaced videos and hashtags in a
// single transaction.
func (c *Collector) persistSound(
	ctx context.Context,
	sound *domain.CollectedSound,
	rank int,
	today time.Time,
	embedHTML map[string]string,
) (domain.Trajectory, float64, error) {
	history, err := c.snapshots.ListBySound(ctx, sound.ID)
	if err != nil {
		return "", 0, fmt.Errorf("load snapshot history: %w", err)
	}

	videos := sound.Videos
	if len(videos) > videosPerSound {
		videos = videos[:videosPerSound]
	}
	avgViews, avgLikes, avgShares, avgComments := averageEngagement(videos)

	todaySnapshot := domain.SoundSnapshot{
		SoundID:      sound.ID,
		SnapshotDate: today,
		UsageCount:   sound.UsageCount,
		Rank:         rank,
		AvgViews:     avgViews,
		AvgLikes:     avgLikes,
		AvgShares:    avgShares,
		AvgComments:  avgComments,
	}

	// A rerun on the same day overwrites today's snapshot; drop the stale
	// copy from the series before deriving the trend.
	series := make([]domain.SoundSnapshot, 0, len(history)+1)
	for _, snap := range history {
		if !snap.SnapshotDate.Equal(today) {
			series = append(series, snap)
		}
	}
	series = append(series, todaySnapshot)
	trajectory := trend.Trajectory(series)
	growthRate := trend.GrowthRate(series)
	genre := trend.ClassifyGenre(sound.Title, sound.Artist)

	record := domain.Sound{
		ID:         sound.ID,
		Title:      sound.Title,
		Artist:     sound.Artist,
		Duration:   sound.Duration,
		Genre:      genre,
		CoverURL:   sound.CoverURL,
		PlayURL:    sound.PlayURL,
		UsageCount: sound.UsageCount,
		Trajectory: trajectory,
		GrowthRate: growthRate,
		Rank:       rank,
	}

	rows := exampleVideoRows(sound.ID, videos, embedHTML, time.Now().UTC())

	err = c.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := c.sounds.Upsert(txCtx, &record); err != nil {
			return fmt.Errorf("upsert sound: %w", err)
		}
		if err := c.snapshots.Upsert(txCtx, &todaySnapshot); err != nil {
			return fmt.Errorf("upsert snapshot: %w", err)
		}
		if err := c.videos.ReplaceForSound(txCtx, sound.ID, rows); err != nil {
			return fmt.Errorf("replace videos: %w", err)
		}
		if err := c.hashtags.ReplaceForSound(txCtx, sound.ID, normalizeTags(sound.Hashtags)); err != nil {
			return fmt.Errorf("replace hashtags: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return trajectory, growthRate, nil
}

func (c *Collector) publish(ctx context.Context, sound *domain.CollectedSound, trajectory domain.Trajectory, growthRate float64, rank int, source string, at time.Time) {
	if c.publisher == nil {
		return
	}

	event := domain.SoundEvent{
		SoundID:     sound.ID,
		Title:       sound.Title,
		Trajectory:  trajectory,
		GrowthRate:  growthRate,
		Rank:        rank,
		Source:      source,
		CollectedAt: at,
	}
	if err := c.publisher.Publish(ctx, &event); err != nil {
		c.logger.Warn("publish sound event failed", "sound_id", sound.ID, "error", err)
	}
}

func runStatus(collected, failed int) domain.CollectionStatus {
	switch {
	case failed == 0:
		return domain.CollectionSuccess
	case collected > 0:
		return domain.CollectionPartial
	default:
		return domain.CollectionFailed
	}
}

func averageEngagement(videos []domain.CollectedVideo) (views, likes, shares, comments float64) {
	if len(videos) == 0 {
		return 0, 0, 0, 0
	}

	var v, l, s, c int64
	for _, video := range videos {
		v += video.Views
		l += video.Likes
		s += video.Shares
		c += video.Comments
	}

	n := float64(len(videos))
	return float64(v) / n, float64(l) / n, float64(s) / n, float64(c) / n
}

func exampleVideoRows(soundID string, videos []domain.CollectedVideo, embedHTML map[string]string, fetchedAt time.Time) []domain.ExampleVideo {
	rows := make([]domain.ExampleVideo, 0, len(videos))
	for _, v := range videos {
		row := domain.ExampleVideo{
			SoundID:         soundID,
			VideoURL:        v.VideoURL,
			ThumbnailURL:    v.ThumbnailURL,
			AuthorUsername:  v.AuthorUsername,
			AuthorNickname:  v.AuthorNickname,
			AuthorAvatarURL: v.AuthorAvatarURL,
			Description:     v.Description,
			CreateTime:      v.CreateTime,
			Views:           v.Views,
			Likes:           v.Likes,
			Shares:          v.Shares,
			Comments:        v.Comments,
			FetchedAt:       fetchedAt,
		}
		if html, ok := embedHTML[v.VideoURL]; ok {
			row.OEmbedHTML = &html
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, tag := range tags {
		lower := lowerTag(tag)
		if lower == "" {
			continue
		}
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		out = append(out, lower)
	}
	return out
}

func lowerTag(tag string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
}

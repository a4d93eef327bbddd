package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"sound_tracker/internal/domain"
)

// sparklineDays is how many daily usage points the dashboard list view
// carries per sound.
const sparklineDays = 14

type SoundWithSparkline struct {
	domain.Sound
	Sparkline []int64
}

type DashboardStats struct {
	TotalTracked int
	RisingCount  int
	FallingCount int
	AvgGrowth    float64
	LastUpdated  *time.Time
}

type Overview struct {
	Sounds []SoundWithSparkline
	Stats  DashboardStats
}

type SoundDetail struct {
	domain.Sound
	Snapshots []domain.SoundSnapshot
	Videos    []domain.ExampleVideo
	Hashtags  []string
}

// DashboardService assembles the read models served to the dashboard.
type DashboardService struct {
	sounds    SoundStore
	snapshots SnapshotStore
	videos    VideoStore
	hashtags  HashtagStore
	logs      CollectionLogStore
	logger    *slog.Logger
}

func NewDashboardService(
	sounds SoundStore,
	snapshots SnapshotStore,
	videos VideoStore,
	hashtags HashtagStore,
	logs CollectionLogStore,
	logger *slog.Logger,
) *DashboardService {
	return &DashboardService{
		sounds:    sounds,
		snapshots: snapshots,
		videos:    videos,
		hashtags:  hashtags,
		logs:      logs,
		logger:    logger.With("component", "dashboard"),
	}
}

// Overview returns all tracked sounds in rank order, each with a
// 14-point usage sparkline, plus aggregate stats.
func (d *DashboardService) Overview(ctx context.Context) (*Overview, error) {
	sounds, err := d.sounds.ListByRank(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sounds: %w", err)
	}

	lastSuccess, err := d.logs.LastSuccess(ctx)
	if err != nil {
		return nil, fmt.Errorf("last successful collection: %w", err)
	}

	overview := &Overview{
		Sounds: make([]SoundWithSparkline, 0, len(sounds)),
	}

	var growthSum float64
	for _, sound := range sounds {
		sparkline, err := d.snapshots.Sparkline(ctx, sound.ID, sparklineDays)
		if err != nil {
			return nil, fmt.Errorf("sparkline for %s: %w", sound.ID, err)
		}
		overview.Sounds = append(overview.Sounds, SoundWithSparkline{Sound: sound, Sparkline: sparkline})

		growthSum += sound.GrowthRate
		switch sound.Trajectory {
		case domain.TrajectoryRising:
			overview.Stats.RisingCount++
		case domain.TrajectoryFalling:
			overview.Stats.FallingCount++
		}
	}

	overview.Stats.TotalTracked = len(sounds)
	overview.Stats.LastUpdated = lastSuccess
	if len(sounds) > 0 {
		overview.Stats.AvgGrowth = math.Round(growthSum/float64(len(sounds))*100) / 100
	}

	return overview, nil
}

// SoundDetail returns one sound with its full snapshot history, example
// videos sorted by views descending, and hashtags.
func (d *DashboardService) SoundDetail(ctx context.Context, id string) (*SoundDetail, error) {
	sound, err := d.sounds.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshots, err := d.snapshots.ListBySound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	videos, err := d.videos.ListBySound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	hashtags, err := d.hashtags.ListBySound(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list hashtags: %w", err)
	}

	return &SoundDetail{
		Sound:     *sound,
		Snapshots: snapshots,
		Videos:    videos,
		Hashtags:  hashtags,
	}, nil
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"sound_tracker/internal/domain"
)

type SoundStore interface {
	Upsert(ctx context.Context, sound *domain.Sound) error
	GetByID(ctx context.Context, id string) (*domain.Sound, error)
	ListByRank(ctx context.Context) ([]domain.Sound, error)
	SetEnrichment(ctx context.Context, id string, usageCount int64, trajectory domain.Trajectory, growthRate float64, enrichedAt time.Time) error
}

type SnapshotStore interface {
	Upsert(ctx context.Context, snapshot *domain.SoundSnapshot) error
	ListBySound(ctx context.Context, soundID string) ([]domain.SoundSnapshot, error)
	Sparkline(ctx context.Context, soundID string, days int) ([]int64, error)
}

type VideoStore interface {
	ReplaceForSound(ctx context.Context, soundID string, videos []domain.ExampleVideo) error
	ListBySound(ctx context.Context, soundID string) ([]domain.ExampleVideo, error)
}

type HashtagStore interface {
	ReplaceForSound(ctx context.Context, soundID string, hashtags []string) error
	ListBySound(ctx context.Context, soundID string) ([]string, error)
}

type CollectionLogStore interface {
	Start(ctx context.Context) (int64, error)
	Finalize(ctx context.Context, id int64, status domain.CollectionStatus, sourceUsed string, soundsCollected int, errorMessage string) error
	LastSuccess(ctx context.Context) (*time.Time, error)
}

// Source produces the provider's current top sounds in rank order. It
// must fail rather than return an empty or unparseable result: the
// cascade relies on the error to try the next source.
type Source interface {
	Name() string
	FetchTrending(ctx context.Context) ([]domain.CollectedSound, error)
}

// Enricher fetches live per-sound detail from the canonical item page.
type Enricher interface {
	Enrich(ctx context.Context, soundID, title string) (*domain.EnrichmentResult, error)
}

// EmbedResolver resolves embed HTML for video URLs, best effort.
type EmbedResolver interface {
	FetchBatch(ctx context.Context, videoURLs []string) map[string]string
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.SoundEvent) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

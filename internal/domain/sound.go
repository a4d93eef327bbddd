package domain

import "time"

// Trajectory is the categorical trend label derived from recent usage history.
type Trajectory string

const (
	TrajectoryRising  Trajectory = "rising"
	TrajectoryFalling Trajectory = "falling"
	TrajectoryStable  Trajectory = "stable"
	TrajectoryNew     Trajectory = "new"
)

// Sound is a tracked trending audio clip. The id is provider-assigned and
// stable across collections.
type Sound struct {
	ID         string     `db:"id"`
	Title      string     `db:"title"`
	Artist     string     `db:"artist"`
	Duration   int        `db:"duration"`
	Genre      *string    `db:"genre"`
	CoverURL   *string    `db:"cover_url"`
	PlayURL    *string    `db:"play_url"`
	UsageCount int64      `db:"usage_count"`
	Trajectory Trajectory `db:"trajectory"`
	GrowthRate float64    `db:"growth_rate"`
	Rank       int        `db:"rank"`
	EnrichedAt *time.Time `db:"enriched_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// SoundSnapshot is one daily observation of a sound's usage and engagement.
// At most one snapshot exists per (sound, date).
type SoundSnapshot struct {
	ID           int64     `db:"id"`
	SoundID      string    `db:"sound_id"`
	SnapshotDate time.Time `db:"snapshot_date"`
	UsageCount   int64     `db:"usage_count"`
	Rank         int       `db:"rank"`
	AvgViews     float64   `db:"avg_views"`
	AvgLikes     float64   `db:"avg_likes"`
	AvgShares    float64   `db:"avg_shares"`
	AvgComments  float64   `db:"avg_comments"`
}

// ExampleVideo is a video observed using a sound. The set of example videos
// for a sound is fully replaced on every collection or enrichment cycle.
type ExampleVideo struct {
	ID              int64     `db:"id"`
	SoundID         string    `db:"sound_id"`
	VideoURL        string    `db:"video_url"`
	OEmbedHTML      *string   `db:"oembed_html"`
	ThumbnailURL    *string   `db:"thumbnail_url"`
	AuthorUsername  *string   `db:"author_username"`
	AuthorNickname  *string   `db:"author_nickname"`
	AuthorAvatarURL *string   `db:"author_avatar_url"`
	Description     *string   `db:"description"`
	CreateTime      *int64    `db:"create_time"`
	Views           int64     `db:"views"`
	Likes           int64     `db:"likes"`
	Shares          int64     `db:"shares"`
	Comments        int64     `db:"comments"`
	FetchedAt       time.Time `db:"fetched_at"`
}

// CollectionStatus is the lifecycle state of one collection run.
type CollectionStatus string

const (
	CollectionRunning CollectionStatus = "running"
	CollectionSuccess CollectionStatus = "success"
	CollectionPartial CollectionStatus = "partial"
	CollectionFailed  CollectionStatus = "failed"
)

// CollectionLog records one collection run. Created with status running
// before any source is queried, finalized exactly once at run end.
type CollectionLog struct {
	ID              int64            `db:"id"`
	StartedAt       time.Time        `db:"started_at"`
	CompletedAt     *time.Time       `db:"completed_at"`
	Status          CollectionStatus `db:"status"`
	SourceUsed      *string          `db:"source_used"`
	SoundsCollected int              `db:"sounds_collected"`
	ErrorMessage    *string          `db:"error_message"`
}

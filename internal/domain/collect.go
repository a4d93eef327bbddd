package domain

import "time"

// CollectedSound is a normalized candidate item produced by a source
// adapter, before trend signals are derived and the item is persisted.
type CollectedSound struct {
	ID         string
	Title      string
	Artist     string
	Duration   int
	CoverURL   *string
	PlayURL    *string
	UsageCount int64
	Videos     []CollectedVideo
	Hashtags   []string
}

// CollectedVideo is an example usage of a sound as reported by a source
// adapter or the enrichment fetcher.
type CollectedVideo struct {
	VideoURL        string
	ThumbnailURL    *string
	AuthorUsername  *string
	AuthorNickname  *string
	AuthorAvatarURL *string
	Description     *string
	CreateTime      *int64
	Views           int64
	Likes           int64
	Shares          int64
	Comments        int64
}

// CollectResult summarizes one collection run.
type CollectResult struct {
	Source    string
	Collected int
	Failed    int
	Status    CollectionStatus
	Duration  time.Duration
}

// SoundEvent is the message published after a sound has been persisted
// in a collection run.
type SoundEvent struct {
	SoundID     string     `json:"sound_id"`
	Title       string     `json:"title"`
	Trajectory  Trajectory `json:"trajectory"`
	GrowthRate  float64    `json:"growth_rate"`
	Rank        int        `json:"rank"`
	Source      string     `json:"source"`
	CollectedAt time.Time  `json:"collected_at"`
}

// EnrichmentResult is the combined output of the two enrichment passes.
// UsageCount comes from the metadata pass and is always present; Videos
// and Hashtags come from the full-page pass and may be empty when that
// pass is blocked.
type EnrichmentResult struct {
	UsageCount int64
	Videos     []CollectedVideo
	Hashtags   []string
}

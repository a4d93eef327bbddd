package api

import (
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/service"
)

const (
	timeFormat = time.RFC3339
	dateFormat = "2006-01-02"
)

type soundResponse struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	Duration   int     `json:"duration"`
	Genre      *string `json:"genre"`
	CoverURL   *string `json:"cover_url"`
	PlayURL    *string `json:"play_url"`
	UsageCount int64   `json:"usage_count"`
	Trajectory string  `json:"trajectory"`
	GrowthRate float64 `json:"growth_rate"`
	Rank       int     `json:"rank"`
	EnrichedAt *string `json:"enriched_at"`
	Sparkline  []int64 `json:"sparkline,omitempty"`
}

type snapshotResponse struct {
	SnapshotDate string  `json:"snapshot_date"`
	UsageCount   int64   `json:"usage_count"`
	Rank         int     `json:"rank"`
	AvgViews     float64 `json:"avg_views"`
	AvgLikes     float64 `json:"avg_likes"`
	AvgShares    float64 `json:"avg_shares"`
	AvgComments  float64 `json:"avg_comments"`
}

type videoResponse struct {
	VideoURL        string  `json:"video_url"`
	OEmbedHTML      *string `json:"oembed_html"`
	ThumbnailURL    *string `json:"thumbnail_url"`
	AuthorUsername  *string `json:"author_username"`
	AuthorNickname  *string `json:"author_nickname"`
	AuthorAvatarURL *string `json:"author_avatar_url"`
	Description     *string `json:"description"`
	CreateTime      *int64  `json:"create_time"`
	Views           int64   `json:"views"`
	Likes           int64   `json:"likes"`
	Shares          int64   `json:"shares"`
	Comments        int64   `json:"comments"`
}

type detailResponse struct {
	soundResponse
	Snapshots []snapshotResponse `json:"snapshots"`
	Videos    []videoResponse    `json:"videos"`
	Hashtags  []string           `json:"hashtags"`
}

func toSoundResponse(s domain.Sound, sparkline []int64) soundResponse {
	return soundResponse{
		ID:         s.ID,
		Title:      s.Title,
		Artist:     s.Artist,
		Duration:   s.Duration,
		Genre:      s.Genre,
		CoverURL:   s.CoverURL,
		PlayURL:    s.PlayURL,
		UsageCount: s.UsageCount,
		Trajectory: string(s.Trajectory),
		GrowthRate: s.GrowthRate,
		Rank:       s.Rank,
		EnrichedAt: timePtrString(s.EnrichedAt),
		Sparkline:  sparkline,
	}
}

func toDetailResponse(d *service.SoundDetail) detailResponse {
	resp := detailResponse{
		soundResponse: toSoundResponse(d.Sound, nil),
		Snapshots:     make([]snapshotResponse, 0, len(d.Snapshots)),
		Videos:        make([]videoResponse, 0, len(d.Videos)),
		Hashtags:      d.Hashtags,
	}
	if resp.Hashtags == nil {
		resp.Hashtags = []string{}
	}

	for _, snap := range d.Snapshots {
		resp.Snapshots = append(resp.Snapshots, snapshotResponse{
			SnapshotDate: snap.SnapshotDate.Format(dateFormat),
			UsageCount:   snap.UsageCount,
			Rank:         snap.Rank,
			AvgViews:     snap.AvgViews,
			AvgLikes:     snap.AvgLikes,
			AvgShares:    snap.AvgShares,
			AvgComments:  snap.AvgComments,
		})
	}
	for _, v := range d.Videos {
		resp.Videos = append(resp.Videos, videoResponse{
			VideoURL:        v.VideoURL,
			OEmbedHTML:      v.OEmbedHTML,
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
		})
	}
	return resp
}

func timePtrString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(timeFormat)
	return &s
}

// Package tikapi implements the highest-priority trending source: a
// paid structured API. Response shapes vary between API versions, so
// field lookup tolerates the known alternative key names.
package tikapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/parse"
)

const SourceName = "tikapi"

const (
	maxSounds         = 10
	maxVideosPerSound = 5
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		logger:     logger.With("source", SourceName),
	}
}

func (s *Source) Name() string {
	return SourceName
}

// FetchTrending returns the provider's current top sounds in rank order,
// truncated to 10. It fails when the response cannot be parsed into at
// least one valid item; single items missing an identity are skipped.
func (s *Source) FetchTrending(ctx context.Context) ([]domain.CollectedSound, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("tikapi: api key not configured")
	}

	payload, err := s.get(ctx, fmt.Sprintf("%s/public/explore?count=%d", s.baseURL, maxSounds))
	if err != nil {
		return nil, err
	}

	musicList := parse.Slice(payload, "music_list", "aweme_list", "musics")
	if len(musicList) == 0 {
		return nil, fmt.Errorf("tikapi: response contained no music results")
	}

	var sounds []domain.CollectedSound
	for _, raw := range musicList {
		if len(sounds) >= maxSounds {
			break
		}

		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		music := parse.Map(item, "music")
		if music == nil {
			music = item
		}

		soundID := identity(music, "id", "mid")
		if soundID == "" {
			s.logger.Debug("skipping item without id")
			continue
		}

		videos, err := s.fetchSoundVideos(ctx, soundID)
		if err != nil {
			s.logger.Debug("video fetch failed", "sound_id", soundID, "error", err)
		}

		sounds = append(sounds, domain.CollectedSound{
			ID:         soundID,
			Title:      orUnknown(parse.Str(music, "title")),
			Artist:     orUnknown(parse.Str(music, "author", "owner_nickname")),
			Duration:   int(parse.Int(music, "duration")),
			CoverURL:   firstURL(music, "cover_large", "cover_medium"),
			PlayURL:    firstURL(music, "play_url"),
			UsageCount: parse.Int(music, "user_count", "video_count"),
			Videos:     videos,
		})
	}

	if len(sounds) == 0 {
		return nil, fmt.Errorf("tikapi: no sounds could be parsed")
	}

	return sounds, nil
}

// fetchSoundVideos pulls example videos for one sound. Best effort: the
// caller treats an error as "no videos".
func (s *Source) fetchSoundVideos(ctx context.Context, soundID string) ([]domain.CollectedVideo, error) {
	payload, err := s.get(ctx, fmt.Sprintf("%s/public/music?id=%s", s.baseURL, url.QueryEscape(soundID)))
	if err != nil {
		return nil, err
	}

	itemList := parse.Slice(payload, "aweme_list", "itemList")

	var videos []domain.CollectedVideo
	for _, raw := range itemList {
		if len(videos) >= maxVideosPerSound {
			break
		}

		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		author := parse.Map(item, "author")
		username := parse.Str(author, "unique_id", "uniqueId")
		if username == "" {
			username = "user"
		}
		videoID := identity(item, "aweme_id", "id")
		if videoID == "" {
			continue
		}

		stats := parse.Map(item, "statistics", "stats")
		video := parse.Map(item, "video")

		videos = append(videos, domain.CollectedVideo{
			VideoURL:       fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", username, videoID),
			ThumbnailURL:   firstURL(video, "cover"),
			AuthorUsername: parse.StrPtr(author, "unique_id", "uniqueId"),
			AuthorNickname: parse.StrPtr(author, "nickname"),
			Views:          parse.Int(stats, "play_count", "playCount"),
			Likes:          parse.Int(stats, "digg_count", "diggCount"),
			Shares:         parse.Int(stats, "share_count", "shareCount"),
			Comments:       parse.Int(stats, "comment_count", "commentCount"),
		})
	}

	return videos, nil
}

func (s *Source) get(ctx context.Context, rawURL string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return payload, nil
}

// identity reads a provider item id that may arrive as a string or a
// bare number.
func identity(m map[string]any, keys ...string) string {
	if v := parse.Str(m, keys...); v != "" {
		return v
	}
	if n := parse.Int(m, keys...); n > 0 {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

// firstURL digs media objects of the form {"url_list": ["..."]}.
func firstURL(m map[string]any, keys ...string) *string {
	for _, k := range keys {
		media := parse.Map(m, k)
		if media == nil {
			continue
		}
		urls := parse.Slice(media, "url_list", "urlList")
		if len(urls) == 0 {
			continue
		}
		if u, ok := urls[0].(string); ok && u != "" {
			return &u
		}
	}
	return nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

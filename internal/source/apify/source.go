// Package apify implements the last-resort trending source: a hosted
// actor run whose dataset items arrive with loosely standardized field
// names.
package apify

import (
	"bytes"
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

const SourceName = "apify"

const (
	maxSounds         = 10
	maxVideosPerSound = 5
)

type Config struct {
	BaseURL string
	Token   string
	ActorID string
	Timeout time.Duration
}

type Source struct {
	httpClient *http.Client
	baseURL    string
	token      string
	actorID    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		actorID:    cfg.ActorID,
		logger:     logger.With("source", SourceName),
	}
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) FetchTrending(ctx context.Context) ([]domain.CollectedSound, error) {
	if s.token == "" {
		return nil, fmt.Errorf("apify: token not configured")
	}

	items, err := s.runActor(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("apify: actor returned no results")
	}

	var sounds []domain.CollectedSound
	for _, raw := range items {
		if len(sounds) >= maxSounds {
			break
		}

		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		soundID := parse.Str(item, "musicId", "id", "soundId")
		if soundID == "" {
			if n := parse.Int(item, "musicId", "id", "soundId"); n > 0 {
				soundID = strconv.FormatInt(n, 10)
			}
		}
		if soundID == "" {
			s.logger.Debug("skipping item without id")
			continue
		}

		sounds = append(sounds, domain.CollectedSound{
			ID:         soundID,
			Title:      orUnknown(parse.Str(item, "title", "musicTitle")),
			Artist:     orUnknown(parse.Str(item, "artist", "authorName", "author")),
			Duration:   int(parse.Int(item, "duration")),
			CoverURL:   parse.StrPtr(item, "coverUrl", "coverImage", "cover"),
			PlayURL:    parse.StrPtr(item, "playUrl", "musicUrl"),
			UsageCount: parse.Int(item, "usageCount", "videoCount", "userCount"),
			Videos:     parseVideos(item),
			Hashtags:   parseHashtags(item),
		})
	}

	if len(sounds) == 0 {
		return nil, fmt.Errorf("apify: no sounds could be parsed")
	}

	return sounds, nil
}

// runActor starts a synchronous actor run and returns its dataset items.
func (s *Source) runActor(ctx context.Context) ([]any, error) {
	endpoint := fmt.Sprintf(
		"%s/v2/acts/%s/run-sync-get-dataset-items?token=%s&timeout=120&memory=256",
		s.baseURL, url.PathEscape(s.actorID), url.QueryEscape(s.token),
	)

	body, err := json.Marshal(map[string]any{"maxResults": maxSounds})
	if err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var items []any
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode dataset items: %w", err)
	}

	return items, nil
}

func parseVideos(item map[string]any) []domain.CollectedVideo {
	raw := parse.Slice(item, "videos", "exampleVideos")

	var videos []domain.CollectedVideo
	for _, rv := range raw {
		if len(videos) >= maxVideosPerSound {
			break
		}

		v, ok := rv.(map[string]any)
		if !ok {
			continue
		}

		videoURL := parse.Str(v, "url", "videoUrl", "webVideoUrl")
		if videoURL == "" {
			continue
		}

		stats := parse.Map(v, "stats", "statistics")
		if stats == nil {
			stats = v
		}

		videos = append(videos, domain.CollectedVideo{
			VideoURL:       videoURL,
			ThumbnailURL:   parse.StrPtr(v, "thumbnail", "thumbnailUrl"),
			AuthorUsername: parse.StrPtr(v, "authorUsername", "author"),
			AuthorNickname: parse.StrPtr(v, "authorNickname", "authorName"),
			Views:          parse.Int(stats, "plays", "views"),
			Likes:          parse.Int(stats, "likes", "diggs"),
			Shares:         parse.Int(stats, "shares"),
			Comments:       parse.Int(stats, "comments"),
		})
	}

	return videos
}

func parseHashtags(item map[string]any) []string {
	raw := parse.Slice(item, "hashtags")

	var tags []string
	for _, rt := range raw {
		switch v := rt.(type) {
		case string:
			tags = append(tags, v)
		case map[string]any:
			if name := parse.Str(v, "name"); name != "" {
				tags = append(tags, name)
			}
		}
	}
	return tags
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

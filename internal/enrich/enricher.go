// Package enrich fetches live per-sound detail from the canonical music
// page: the precise usage count, a sample of example videos, and their
// hashtags.
//
// Two passes run concurrently. The metadata pass uses a crawler user
// agent the provider never blocks and is required; the full-page pass
// uses a browser user agent and is best effort, since datacenter IPs
// are frequently served a stripped page.
package enrich

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/parse"
)

// ErrUnavailable reports that the required metadata pass failed:
// either the upstream was unreachable or the response shape was not
// recognized. No enrichment data is available for the sound.
var ErrUnavailable = errors.New("enrichment data unavailable")

// ErrPageShape reports that the full page was fetched but its embedded
// data did not follow the expected key path. Distinct from a network
// failure so callers can log it as an upstream format change rather
// than an outage.
var ErrPageShape = errors.New("unsupported page shape")

const (
	crawlerUA = "facebookexternalhit/1.1"
	browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	rehydrationScriptID = "__UNIVERSAL_DATA_FOR_REHYDRATION__"
)

// usageRE matches the leading "266.5k videos" token of the social
// preview description.
var usageRE = regexp.MustCompile(`^([\d.]+[kKmMbB]?)\s+videos`)

type Config struct {
	BaseURL     string
	MetaTimeout time.Duration
	PageTimeout time.Duration
	MaxVideos   int
}

type Fetcher struct {
	metaClient *http.Client
	pageClient *http.Client
	baseURL    string
	maxVideos  int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		metaClient: &http.Client{Timeout: cfg.MetaTimeout},
		pageClient: &http.Client{Timeout: cfg.PageTimeout},
		baseURL:    cfg.BaseURL,
		maxVideos:  cfg.MaxVideos,
		logger:     logger.With("component", "enricher"),
	}
}

// MusicURL builds the canonical page URL for a sound.
func (f *Fetcher) MusicURL(soundID, title string) string {
	return fmt.Sprintf("%s/music/%s-%s", f.baseURL, parse.Slugify(title), soundID)
}

// Enrich runs both passes for one sound. The returned result always
// carries a usage count; videos and hashtags are empty when the
// full-page pass failed. A metadata-pass failure returns an error
// wrapping ErrUnavailable and no result.
func (f *Fetcher) Enrich(ctx context.Context, soundID, title string) (*domain.EnrichmentResult, error) {
	musicURL := f.MusicURL(soundID, title)
	f.logger.Info("enriching sound", "sound_id", soundID, "url", musicURL)

	var (
		usageCount int64
		metaErr    error
		videos     []domain.CollectedVideo
		hashtags   []string
		pageErr    error
	)

	// Both passes always run to completion; neither is cancelled by the
	// other's failure.
	var g errgroup.Group
	g.Go(func() error {
		usageCount, metaErr = f.fetchUsageCount(ctx, musicURL)
		return nil
	})
	g.Go(func() error {
		videos, hashtags, pageErr = f.fetchPageData(ctx, musicURL)
		return nil
	})
	_ = g.Wait()

	if metaErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, metaErr)
	}

	if pageErr != nil {
		if errors.Is(pageErr, ErrPageShape) {
			f.logger.Info("full page pass degraded", "sound_id", soundID, "reason", pageErr)
		} else {
			f.logger.Warn("full page pass failed", "sound_id", soundID, "error", pageErr)
		}
	}

	return &domain.EnrichmentResult{
		UsageCount: usageCount,
		Videos:     videos,
		Hashtags:   hashtags,
	}, nil
}

// fetchUsageCount reads the social preview description, which always
// carries the real usage count regardless of requesting IP.
func (f *Fetcher) fetchUsageCount(ctx context.Context, musicURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, musicURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", crawlerUA)

	resp, err := f.metaClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse html: %w", err)
	}

	desc, ok := doc.Find(`meta[property="og:description"]`).Attr("content")
	if !ok {
		return 0, fmt.Errorf("og:description not found")
	}

	m := usageRE.FindStringSubmatch(desc)
	if m == nil {
		return 0, fmt.Errorf("no usage count in description %q", desc)
	}

	count := parse.HumanCount(m[1])
	f.logger.Debug("parsed usage count", "raw", m[1], "count", count)
	return count, nil
}

// fetchPageData scrapes the rehydration blob embedded in the full page
// for example videos and hashtags.
func (f *Fetcher) fetchPageData(ctx context.Context, musicURL string) ([]domain.CollectedVideo, []string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, musicURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.pageClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("parse html: %w", err)
	}

	blob := doc.Find("script#" + rehydrationScriptID).Text()
	if blob == "" {
		return nil, nil, fmt.Errorf("%w: rehydration script not found", ErrPageShape)
	}

	return f.parseRehydration([]byte(blob))
}

// parseRehydration navigates the known, upstream-versioned key path to
// the example item list. Any missing step is an ErrPageShape.
func (f *Fetcher) parseRehydration(blob []byte) ([]domain.CollectedVideo, []string, error) {
	var data map[string]any
	if err := json.Unmarshal(blob, &data); err != nil {
		return nil, nil, fmt.Errorf("%w: rehydration json: %s", ErrPageShape, err)
	}

	scope := parse.Map(data, "__DEFAULT_SCOPE__")
	if scope == nil {
		return nil, nil, fmt.Errorf("%w: missing default scope", ErrPageShape)
	}

	musicDetail := parse.Map(scope, "webapp.music-detail")
	if musicDetail == nil {
		// The stripped page served to datacenter IPs omits this key.
		return nil, nil, fmt.Errorf("%w: missing music-detail", ErrPageShape)
	}

	itemList := parse.Slice(musicDetail, "itemList")

	var videos []domain.CollectedVideo
	tagSet := make(map[string]struct{})
	var tags []string
	addTag := func(tag string) {
		tag = strings.ToLower(tag)
		if _, ok := tagSet[tag]; ok {
			return
		}
		tagSet[tag] = struct{}{}
		tags = append(tags, tag)
	}

	for _, raw := range itemList {
		if len(videos) >= f.maxVideos {
			break
		}

		item, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		author := parse.Map(item, "author")
		username := parse.Str(author, "uniqueId")
		videoID := parse.Str(item, "id")
		desc := parse.Str(item, "desc")
		stats := parse.Map(item, "stats")
		video := parse.Map(item, "video")

		if videoID != "" {
			urlUser := username
			if urlUser == "" {
				urlUser = "user"
			}

			var createTime *int64
			if ct := parse.Int(item, "createTime"); ct > 0 {
				createTime = &ct
			}

			videos = append(videos, domain.CollectedVideo{
				VideoURL:        fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", urlUser, videoID),
				ThumbnailURL:    parse.StrPtr(video, "cover", "dynamicCover", "originCover"),
				AuthorUsername:  parse.StrPtr(author, "uniqueId"),
				AuthorNickname:  parse.StrPtr(author, "nickname"),
				AuthorAvatarURL: parse.StrPtr(author, "avatarMedium", "avatarThumb"),
				Description:     parse.StrPtr(item, "desc"),
				CreateTime:      createTime,
				Views:           parse.Int(stats, "playCount"),
				Likes:           parse.Int(stats, "diggCount", "heartCount"),
				Shares:          parse.Int(stats, "shareCount"),
				Comments:        parse.Int(stats, "commentCount"),
			})
		}

		for _, tag := range parse.Hashtags(desc) {
			addTag(tag)
		}
		for _, rawTE := range parse.Slice(item, "textExtra") {
			te, ok := rawTE.(map[string]any)
			if !ok {
				continue
			}
			if name := parse.Str(te, "hashtagName"); name != "" {
				addTag(name)
			}
		}
	}

	return videos, tags, nil
}

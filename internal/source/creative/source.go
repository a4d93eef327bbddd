// Package creative scrapes the Creative Center trending-music page.
// The ranking is embedded in the page's SSR payload, which has shifted
// shape before; two extraction patterns are tried before giving up.
package creative

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"sound_tracker/internal/domain"
	"sound_tracker/internal/parse"
)

const SourceName = "creative_center"

const maxSounds = 10

const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

var (
	pagePropsRE = regexp.MustCompile(`\{"props":\{"pageProps":(\{[\s\S]*?\})\s*,\s*"__N_SSP"`)
	musicListRE = regexp.MustCompile(`"musicList"\s*:\s*(\[[\s\S]*?\])\s*[,}]`)
)

type Config struct {
	PageURL string
	Timeout time.Duration
}

type Source struct {
	httpClient *http.Client
	pageURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		pageURL:    cfg.PageURL,
		logger:     logger.With("source", SourceName),
	}
}

func (s *Source) Name() string {
	return SourceName
}

func (s *Source) FetchTrending(ctx context.Context) ([]domain.CollectedSound, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("creative center returned %d", resp.StatusCode)
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	musicList, err := extractMusicList(html)
	if err != nil {
		return nil, err
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

		soundID := parse.Str(item, "clipId", "musicId", "id")
		if soundID == "" {
			if n := parse.Int(item, "clipId", "musicId", "id"); n > 0 {
				soundID = strconv.FormatInt(n, 10)
			}
		}
		if soundID == "" {
			s.logger.Debug("skipping item without id")
			continue
		}

		sounds = append(sounds, domain.CollectedSound{
			ID:         soundID,
			Title:      orUnknown(parse.Str(item, "title")),
			Artist:     orUnknown(parse.Str(item, "singer", "author")),
			Duration:   int(parse.Int(item, "duration")),
			CoverURL:   parse.StrPtr(item, "posterUrl", "cover"),
			PlayURL:    parse.StrPtr(item, "musicUrl", "detail"),
			UsageCount: parse.Int(item, "usage_amount", "videoCount"),
		})
	}

	if len(sounds) == 0 {
		return nil, fmt.Errorf("creative center: no sounds could be parsed")
	}

	return sounds, nil
}

// extractMusicList pulls the ranked list out of the SSR payload. The
// primary pattern targets the full pageProps object; when the page
// layout changes enough to break it, a narrower musicList pattern is
// tried before failing.
func extractMusicList(html []byte) ([]any, error) {
	if m := pagePropsRE.FindSubmatch(html); m != nil {
		var pageProps map[string]any
		if err := json.Unmarshal(m[1], &pageProps); err != nil {
			return nil, fmt.Errorf("creative center: parse pageProps: %w", err)
		}
		list := parse.Slice(pageProps, "musicList")
		if len(list) == 0 {
			return nil, fmt.Errorf("creative center: musicList is empty")
		}
		return list, nil
	}

	m := musicListRE.FindSubmatch(html)
	if m == nil {
		return nil, fmt.Errorf("creative center: could not find musicList in page")
	}

	var list []any
	if err := json.Unmarshal(m[1], &list); err != nil {
		return nil, fmt.Errorf("creative center: parse musicList: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("creative center: musicList is empty")
	}
	return list, nil
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newFetcher(baseURL string) *Fetcher {
	return New(Config{
		BaseURL:     baseURL,
		MetaTimeout: 2 * time.Second,
		PageTimeout: 2 * time.Second,
		MaxVideos:   6,
	}, testLogger())
}

func metaPage(desc string) string {
	return fmt.Sprintf(`<html><head><meta property="og:description" content="%s"/></head><body></body></html>`, desc)
}

func rehydrationPage(t *testing.T, scope map[string]any) string {
	t.Helper()
	blob, err := json.Marshal(map[string]any{"__DEFAULT_SCOPE__": scope})
	require.NoError(t, err)
	return fmt.Sprintf(`<html><body><script id="__UNIVERSAL_DATA_FOR_REHYDRATION__" type="application/json">%s</script></body></html>`, blob)
}

func fullScope() map[string]any {
	return map[string]any{
		"webapp.music-detail": map[string]any{
			"itemList": []any{
				map[string]any{
					"id":         "111",
					"desc":       "so good #Trend #trend #Fyp",
					"createTime": float64(1700000000),
					"author": map[string]any{
						"uniqueId":     "alice",
						"nickname":     "Alice",
						"avatarMedium": "https://cdn/avatar.jpg",
					},
					"stats": map[string]any{
						"playCount":    float64(1000),
						"diggCount":    float64(200),
						"shareCount":   float64(30),
						"commentCount": float64(4),
					},
					"video": map[string]any{"cover": "https://cdn/cover.jpg"},
					"textExtra": []any{
						map[string]any{"hashtagName": "Dance"},
					},
				},
			},
		},
	}
}

// serve dispatches on user agent: crawler requests get the meta page,
// browser requests get the full page.
func serve(t *testing.T, metaStatus int, metaBody string, pageStatus int, pageBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.UserAgent(), "facebookexternalhit") {
			w.WriteHeader(metaStatus)
			fmt.Fprint(w, metaBody)
			return
		}
		w.WriteHeader(pageStatus)
		fmt.Fprint(w, pageBody)
	}))
}

func TestEnrich_BothPasses(t *testing.T) {
	srv := serve(t,
		http.StatusOK, metaPage("266.5k videos - Watch awesome videos"),
		http.StatusOK, rehydrationPage(t, fullScope()),
	)
	defer srv.Close()

	result, err := newFetcher(srv.URL).Enrich(context.Background(), "123", "My Song")
	require.NoError(t, err)

	assert.Equal(t, int64(266500), result.UsageCount)
	require.Len(t, result.Videos, 1)

	video := result.Videos[0]
	assert.Equal(t, "https://www.tiktok.com/@alice/video/111", video.VideoURL)
	assert.Equal(t, int64(1000), video.Views)
	assert.Equal(t, int64(200), video.Likes)
	require.NotNil(t, video.AuthorAvatarURL)
	assert.Equal(t, "https://cdn/avatar.jpg", *video.AuthorAvatarURL)
	require.NotNil(t, video.CreateTime)
	assert.Equal(t, int64(1700000000), *video.CreateTime)

	assert.Equal(t, []string{"trend", "fyp", "dance"}, result.Hashtags)
}

func TestEnrich_FullPageBlocked(t *testing.T) {
	// Stripped page without the music-detail scope, the shape served to
	// datacenter IPs. Enrichment still succeeds with metadata only.
	srv := serve(t,
		http.StatusOK, metaPage("2.4M videos - Watch awesome videos"),
		http.StatusOK, rehydrationPage(t, map[string]any{"webapp.other": map[string]any{}}),
	)
	defer srv.Close()

	result, err := newFetcher(srv.URL).Enrich(context.Background(), "123", "My Song")
	require.NoError(t, err)

	assert.Equal(t, int64(2400000), result.UsageCount)
	assert.Empty(t, result.Videos)
	assert.Empty(t, result.Hashtags)
}

func TestEnrich_FullPageNetworkFailure(t *testing.T) {
	srv := serve(t,
		http.StatusOK, metaPage("900 videos - Watch awesome videos"),
		http.StatusForbidden, "",
	)
	defer srv.Close()

	result, err := newFetcher(srv.URL).Enrich(context.Background(), "123", "My Song")
	require.NoError(t, err)
	assert.Equal(t, int64(900), result.UsageCount)
	assert.Empty(t, result.Videos)
}

func TestEnrich_MetadataFailure(t *testing.T) {
	srv := serve(t,
		http.StatusForbidden, "",
		http.StatusOK, rehydrationPage(t, fullScope()),
	)
	defer srv.Close()

	result, err := newFetcher(srv.URL).Enrich(context.Background(), "123", "My Song")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEnrich_MetadataShapeUnrecognized(t *testing.T) {
	srv := serve(t,
		http.StatusOK, metaPage("Watch awesome videos with no leading count"),
		http.StatusOK, "",
	)
	defer srv.Close()

	_, err := newFetcher(srv.URL).Enrich(context.Background(), "123", "My Song")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMusicURL(t *testing.T) {
	f := newFetcher("https://www.tiktok.com")
	assert.Equal(t,
		"https://www.tiktok.com/music/original-sound-7348291",
		f.MusicURL("7348291", "Original Sound"),
	)
}

func TestParseRehydration_BadJSON(t *testing.T) {
	f := newFetcher("http://unused")
	_, _, err := f.parseRehydration([]byte("{not json"))
	assert.ErrorIs(t, err, ErrPageShape)
}

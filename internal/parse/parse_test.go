package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanCount(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"266.5k", 266500},
		{"2.4M", 2400000},
		{"900", 900},
		{"1.2b", 1200000000},
		{"3 K", 3000},
		{"", 0},
		{"videos", 0},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, HumanCount(tc.in), "input %q", tc.in)
	}
}

func TestHashtags(t *testing.T) {
	assert.Equal(t, []string{"trend"}, Hashtags("Love this #Trend #trend"))
	assert.Equal(t, []string{"fyp", "música"}, Hashtags("check #fyp and #música out"))
	assert.Nil(t, Hashtags("no tags here"))

	// Idempotent: extracting from already-extracted tags changes nothing.
	again := Hashtags("#trend")
	assert.Equal(t, []string{"trend"}, again)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "original-sound-dj-x", Slugify("Original Sound  - DJ X!"))
	assert.Equal(t, "midnight-trap-anthem", Slugify("Midnight Trap Anthem"))
}

func TestDuckTypedAccessors(t *testing.T) {
	m := map[string]any{
		"title":  "Song",
		"plays":  "266.5k",
		"views":  float64(100),
		"music":  map[string]any{"id": "abc"},
		"videos": []any{map[string]any{"url": "u"}},
	}

	assert.Equal(t, "Song", Str(m, "name", "title"))
	assert.Equal(t, "", Str(m, "missing"))
	assert.Equal(t, int64(266500), Int(m, "plays", "views"))
	assert.Equal(t, int64(100), Int(m, "views"))
	assert.Equal(t, int64(0), Int(m, "missing"))
	assert.NotNil(t, Map(m, "music"))
	assert.Len(t, Slice(m, "videos"), 1)
	assert.Nil(t, StrPtr(m, "missing"))
}

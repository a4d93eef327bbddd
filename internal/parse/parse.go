// Package parse holds normalization helpers shared by the source
// adapters and the enrichment fetcher: human-readable count parsing,
// hashtag extraction, and tolerant navigation of duck-typed provider
// payloads.
package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var humanCountRE = regexp.MustCompile(`([\d.]+)\s*([kKmMbB])?`)

// HumanCount parses a human-readable count like "266.5k" or "2.4M" into
// an exact integer. Unparseable input yields 0.
func HumanCount(s string) int64 {
	m := humanCountRE.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	num, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}

	switch strings.ToLower(m[2]) {
	case "k":
		return int64(math.Round(num * 1e3))
	case "m":
		return int64(math.Round(num * 1e6))
	case "b":
		return int64(math.Round(num * 1e9))
	default:
		return int64(math.Round(num))
	}
}

// Word characters plus the accented Latin ranges providers use in
// descriptions (U+00C0 through U+024F).
var hashtagRE = regexp.MustCompile(`#[0-9A-Za-z_\x{00C0}-\x{024F}]+`)

// Hashtags extracts lowercase tags (without the leading '#') from
// free-form text. The result preserves first-seen order and is
// deduplicated case-insensitively.
func Hashtags(text string) []string {
	matches := hashtagRE.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	var tags []string
	for _, m := range matches {
		tag := strings.ToLower(m[1:])
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Slugify turns a title into the lowercase hyphenated form used in
// canonical music page URLs.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugRE.ReplaceAllString(s, "")
	s = spaceRE.ReplaceAllString(s, "-")
	s = dashRE.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

var (
	nonSlugRE = regexp.MustCompile(`[^a-z0-9\s-]`)
	spaceRE   = regexp.MustCompile(`\s+`)
	dashRE    = regexp.MustCompile(`-+`)
)

// The helpers below navigate provider payloads decoded into
// map[string]any. Providers disagree on key names for the same concept,
// so each accessor takes the candidate keys in preference order and
// returns the first usable value.

// Str returns the first non-empty string value among keys.
func Str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Int returns the first numeric value among keys as an int64. String
// values are parsed as human-readable counts, covering providers that
// report "266.5k" where others report a raw integer.
func Int(m map[string]any, keys ...string) int64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int64(math.Round(v))
		case string:
			if v != "" {
				return HumanCount(v)
			}
		}
	}
	return 0
}

// Map returns the first object value among keys.
func Map(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if v, ok := m[k].(map[string]any); ok {
			return v
		}
	}
	return nil
}

// Slice returns the first array value among keys.
func Slice(m map[string]any, keys ...string) []any {
	for _, k := range keys {
		if v, ok := m[k].([]any); ok {
			return v
		}
	}
	return nil
}

// StrPtr returns a pointer to the first non-empty string value among
// keys, or nil. Persisted fields distinguish "absent" from "empty".
func StrPtr(m map[string]any, keys ...string) *string {
	if s := Str(m, keys...); s != "" {
		return &s
	}
	return nil
}

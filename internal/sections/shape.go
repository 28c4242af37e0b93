package sections

import (
	"strconv"
	"strings"
	"time"
)

// defaultCount bounds latest-videos and featured-events fetches when
// the authored content supplies no count.
const defaultCount = 3

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// dateLabel renders a single-entity display date, e.g. "MAR 9".
func dateLabel(t time.Time) string {
	return strings.ToUpper(t.Format("Jan 2"))
}

func clockLabel(t time.Time) string {
	return t.Format("3:04 PM")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// youtubeWatchURL prefers the stored URL and otherwise derives one
// from the video identifier. Empty when neither exists.
func youtubeWatchURL(explicit *string, youtubeID string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	if youtubeID == "" {
		return ""
	}
	return "https://www.youtube.com/watch?v=" + youtubeID
}

// youtubeThumbnail prefers the stored thumbnail and otherwise derives
// the standard hqdefault image from the video identifier.
func youtubeThumbnail(explicit *string, youtubeID string) string {
	if explicit != nil && *explicit != "" {
		return *explicit
	}
	if youtubeID == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + youtubeID + "/hqdefault.jpg"
}

// countParam reads an editor-supplied count from authored content,
// tolerating the numeric types JSON decoding produces.
func countParam(content Content, def int) int {
	switch v := content["count"].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func stringParam(content Content, key string) string {
	v, _ := content[key].(string)
	return v
}

// ministryLabel title-cases a ministry slug for display,
// e.g. "youth-group" becomes "Youth Group".
func ministryLabel(slug string) string {
	if slug == "" {
		return ""
	}

	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

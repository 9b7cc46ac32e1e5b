package media

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrNoIdentifier marks a raw record that arrived without a video id. Such
// records are dropped with a specific rejection reason rather than passed on.
var ErrNoIdentifier = errors.New("record has no identifier")

// uploadDateLayout is the compact date form emitted by download tooling.
const uploadDateLayout = "20060102"

// FromMap coerces a loose key-value metadata record into a VideoRecord.
// Missing or malformed fields coerce to safe defaults; the only rejection is
// a missing id, reported as ErrNoIdentifier.
func FromMap(raw map[string]any) (VideoRecord, error) {
	record := VideoRecord{
		ID:           coerceString(raw["video_id"]),
		Title:        coerceString(raw["title"]),
		Description:  coerceString(raw["description"]),
		Tags:         coerceStrings(raw["tags"]),
		ChannelID:    coerceString(raw["channel_id"]),
		ChannelTitle: coerceString(raw["channel_title"]),
		SourceURL:    coerceString(raw["url"]),

		DurationSeconds: coerceInt(raw["duration_seconds"]),
		ViewCount:       coerceViews(raw["view_count"]),
		UploadedAt:      coerceUploadDate(raw["upload_date"]),

		FilePath:         coerceString(raw["filepath"]),
		FileSizeBytes:    coerceInt(raw["filesize"]),
		Height:           int(coerceInt(raw["height"])),
		MeasuredDuration: coerceFloat(raw["actual_duration"]),
	}

	if strings.TrimSpace(record.ID) == "" {
		return VideoRecord{}, ErrNoIdentifier
	}
	return record, nil
}

func coerceString(value any) string {
	s, _ := value.(string)
	return s
}

func coerceStrings(value any) []string {
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func coerceInt(value any) int64 {
	switch typed := value.(type) {
	case int:
		return clampNonNegative(int64(typed))
	case int64:
		return clampNonNegative(typed)
	case float64:
		return clampNonNegative(int64(typed))
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0
		}
		return clampNonNegative(parsed)
	default:
		return 0
	}
}

func coerceFloat(value any) float64 {
	switch typed := value.(type) {
	case float64:
		if typed < 0 {
			return 0
		}
		return typed
	case int:
		return float64(clampNonNegative(int64(typed)))
	case int64:
		return float64(clampNonNegative(typed))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64)
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

func coerceViews(value any) int64 {
	if s, ok := value.(string); ok {
		return ParseViewCount(s)
	}
	return coerceInt(value)
}

func coerceUploadDate(value any) time.Time {
	s := strings.TrimSpace(coerceString(value))
	if s == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(uploadDateLayout, s); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, s); err == nil {
		return parsed
	}
	return time.Time{}
}

func clampNonNegative(value int64) int64 {
	if value < 0 {
		return 0
	}
	return value
}

package media

import (
	"strings"
	"time"
)

// VideoRecord is the canonical metadata unit describing one source video.
//
// DurationSeconds and ViewCount come from search metadata and may be
// approximate. MeasuredDuration is filled in after a media-reading
// collaborator inspects the downloaded file and is preferred for batching.
// A zero UploadedAt means the upload time is unknown.
type VideoRecord struct {
	ID           string   `json:"video_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	ChannelID    string   `json:"channel_id,omitempty"`
	ChannelTitle string   `json:"channel_title,omitempty"`
	SourceURL    string   `json:"url,omitempty"`

	DurationSeconds int64     `json:"duration_seconds"`
	ViewCount       int64     `json:"view_count"`
	UploadedAt      time.Time `json:"uploaded_at,omitempty"`

	// Annotations added by the download collaborator before batching.
	FilePath         string  `json:"filepath,omitempty"`
	FileSizeBytes    int64   `json:"filesize,omitempty"`
	Height           int     `json:"height,omitempty"`
	MeasuredDuration float64 `json:"actual_duration,omitempty"`
}

// SearchText returns the lowercased concatenation of title, description, and
// tags used for keyword matching and categorization.
func (r VideoRecord) SearchText() string {
	parts := make([]string, 0, 2+len(r.Tags))
	parts = append(parts, r.Title, r.Description)
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// EffectiveDuration returns the measured duration when known, falling back
// to the metadata duration.
func (r VideoRecord) EffectiveDuration() float64 {
	if r.MeasuredDuration > 0 {
		return r.MeasuredDuration
	}
	return float64(r.DurationSeconds)
}

// HasUploadTime reports whether the record carries a known upload timestamp.
func (r VideoRecord) HasUploadTime() bool {
	return !r.UploadedAt.IsZero()
}

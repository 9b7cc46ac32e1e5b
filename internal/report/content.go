package report

import (
	"sort"
	"strconv"

	"chronicle/internal/filter"
	"chronicle/internal/media"
)

// topChannelLimit bounds the channel analysis to the busiest channels.
const topChannelLimit = 20

// Summary aggregates headline numbers for a record set.
type Summary struct {
	TotalVideos        int     `json:"total_videos"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	TotalViews         int64   `json:"total_views"`
	UniqueChannels     int     `json:"unique_channels"`
	EarliestUpload     string  `json:"earliest_upload"`
	LatestUpload       string  `json:"latest_upload"`
}

// CategoryStats describes one category's share of the record set.
type CategoryStats struct {
	Count                int     `json:"count"`
	Percentage           float64 `json:"percentage"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
}

// RangeStats holds min/max/average over a numeric signal, ignoring zeros.
type RangeStats struct {
	Min int64   `json:"min"`
	Max int64   `json:"max"`
	Avg float64 `json:"avg"`
}

// QualityStats summarizes duration and view distributions.
type QualityStats struct {
	Duration RangeStats `json:"duration_seconds"`
	Views    RangeStats `json:"views"`
}

// ChannelStats describes one channel's contribution.
type ChannelStats struct {
	Channel              string `json:"channel"`
	VideoCount           int    `json:"video_count"`
	TotalViews           int64  `json:"total_views"`
	TotalDurationSeconds int64  `json:"total_duration_seconds"`
}

// ContentReport is the full analysis bundle for one triage run.
type ContentReport struct {
	Summary       Summary                  `json:"summary"`
	Categories    map[string]CategoryStats `json:"categories"`
	Quality       QualityStats             `json:"quality_metrics"`
	UploadsByYear map[string]int           `json:"uploads_by_year"`
	TopChannels   []ChannelStats           `json:"top_channels"`
	FilterStats   filter.Stats             `json:"filter_statistics"`
}

// BuildContent assembles the content report from kept records, their
// category assignment, and the filter run's stats. Empty categories are
// omitted from the category breakdown.
func BuildContent(records []media.VideoRecord, buckets map[string][]media.VideoRecord, stats filter.Stats) ContentReport {
	return ContentReport{
		Summary:       buildSummary(records),
		Categories:    buildCategoryStats(len(records), buckets),
		Quality:       buildQualityStats(records),
		UploadsByYear: buildUploadsByYear(records),
		TopChannels:   buildChannelStats(records),
		FilterStats:   stats,
	}
}

func buildSummary(records []media.VideoRecord) Summary {
	summary := Summary{
		TotalVideos:    len(records),
		EarliestUpload: "unknown",
		LatestUpload:   "unknown",
	}

	channels := make(map[string]struct{})
	var totalSeconds int64
	haveDates := false
	var earliest, latest = "", ""

	for _, record := range records {
		totalSeconds += record.DurationSeconds
		summary.TotalViews += record.ViewCount
		channels[record.ChannelTitle] = struct{}{}

		if !record.HasUploadTime() {
			continue
		}
		date := record.UploadedAt.Format("2006-01-02")
		if !haveDates {
			earliest, latest = date, date
			haveDates = true
			continue
		}
		if date < earliest {
			earliest = date
		}
		if date > latest {
			latest = date
		}
	}

	summary.TotalDurationHours = float64(totalSeconds) / 3600
	summary.UniqueChannels = len(channels)
	if haveDates {
		summary.EarliestUpload = earliest
		summary.LatestUpload = latest
	}
	return summary
}

func buildCategoryStats(total int, buckets map[string][]media.VideoRecord) map[string]CategoryStats {
	out := make(map[string]CategoryStats, len(buckets))
	for label, list := range buckets {
		if len(list) == 0 {
			continue
		}
		var seconds int64
		for _, record := range list {
			seconds += record.DurationSeconds
		}
		stats := CategoryStats{
			Count:                len(list),
			TotalDurationMinutes: float64(seconds) / 60,
		}
		if total > 0 {
			stats.Percentage = float64(len(list)) / float64(total) * 100
		}
		out[label] = stats
	}
	return out
}

func buildQualityStats(records []media.VideoRecord) QualityStats {
	var durations, views []int64
	for _, record := range records {
		if record.DurationSeconds > 0 {
			durations = append(durations, record.DurationSeconds)
		}
		if record.ViewCount > 0 {
			views = append(views, record.ViewCount)
		}
	}
	return QualityStats{
		Duration: rangeOf(durations),
		Views:    rangeOf(views),
	}
}

func rangeOf(values []int64) RangeStats {
	if len(values) == 0 {
		return RangeStats{}
	}
	stats := RangeStats{Min: values[0], Max: values[0]}
	var sum int64
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
	}
	stats.Avg = float64(sum) / float64(len(values))
	return stats
}

func buildUploadsByYear(records []media.VideoRecord) map[string]int {
	years := make(map[string]int)
	for _, record := range records {
		if !record.HasUploadTime() {
			continue
		}
		years[strconv.Itoa(record.UploadedAt.Year())]++
	}
	return years
}

func buildChannelStats(records []media.VideoRecord) []ChannelStats {
	byChannel := make(map[string]*ChannelStats)
	for _, record := range records {
		name := record.ChannelTitle
		if name == "" {
			name = "unknown"
		}
		entry, ok := byChannel[name]
		if !ok {
			entry = &ChannelStats{Channel: name}
			byChannel[name] = entry
		}
		entry.VideoCount++
		entry.TotalViews += record.ViewCount
		entry.TotalDurationSeconds += record.DurationSeconds
	}

	out := make([]ChannelStats, 0, len(byChannel))
	for _, entry := range byChannel {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VideoCount != out[j].VideoCount {
			return out[i].VideoCount > out[j].VideoCount
		}
		return out[i].Channel < out[j].Channel
	})
	if len(out) > topChannelLimit {
		out = out[:topChannelLimit]
	}
	return out
}

package report

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chronicle/internal/batch"
	"chronicle/internal/filter"
	"chronicle/internal/media"
)

func TestPlanEntriesOffsets(t *testing.T) {
	groups := []batch.Group{
		{
			Category: "traffic_stop",
			Duration: 700,
			Records: []media.VideoRecord{
				{ID: "a", Title: "first", MeasuredDuration: 300, SourceURL: "https://example.com/a"},
				{ID: "b", Title: "second", MeasuredDuration: 400, SourceURL: "https://example.com/b"},
			},
		},
	}

	entries := PlanEntries(groups)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if entry.Category != "traffic_stop" || entry.VideoCount != 2 || entry.Duration != 700 {
		t.Errorf("entry = %+v", entry)
	}
	if entry.Segments[0].StartOffset != 0 {
		t.Errorf("first offset = %v, want 0", entry.Segments[0].StartOffset)
	}
	if entry.Segments[1].StartOffset != 300 {
		t.Errorf("second offset = %v, want 300", entry.Segments[1].StartOffset)
	}
	if entry.Segments[1].SourceURL != "https://example.com/b" {
		t.Errorf("source url = %q", entry.Segments[1].SourceURL)
	}
}

func TestPlanEntriesEmpty(t *testing.T) {
	if entries := PlanEntries(nil); entries != nil {
		t.Errorf("PlanEntries(nil) = %v, want nil", entries)
	}
}

func sampleRecords() []media.VideoRecord {
	return []media.VideoRecord{
		{
			ID:              "a",
			ChannelTitle:    "Alpha News",
			DurationSeconds: 1800,
			ViewCount:       1000,
			UploadedAt:      time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "b",
			ChannelTitle:    "Alpha News",
			DurationSeconds: 1800,
			ViewCount:       3000,
			UploadedAt:      time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:              "c",
			ChannelTitle:    "Beta Clips",
			DurationSeconds: 3600,
			ViewCount:       500,
		},
	}
}

func TestBuildContentSummary(t *testing.T) {
	records := sampleRecords()
	buckets := map[string][]media.VideoRecord{
		"traffic_stop":      {records[0], records[1]},
		media.Uncategorized: {records[2]},
		"empty":             nil,
	}
	stats := filter.Stats{TotalProcessed: 5, PassedFilters: 3, FailedDuration: 2}

	content := BuildContent(records, buckets, stats)

	if content.Summary.TotalVideos != 3 {
		t.Errorf("TotalVideos = %d", content.Summary.TotalVideos)
	}
	if math.Abs(content.Summary.TotalDurationHours-2.0) > 1e-9 {
		t.Errorf("TotalDurationHours = %v, want 2", content.Summary.TotalDurationHours)
	}
	if content.Summary.UniqueChannels != 2 {
		t.Errorf("UniqueChannels = %d, want 2", content.Summary.UniqueChannels)
	}
	if content.Summary.EarliestUpload != "2023-05-01" || content.Summary.LatestUpload != "2024-02-01" {
		t.Errorf("date range = %s..%s", content.Summary.EarliestUpload, content.Summary.LatestUpload)
	}

	if _, ok := content.Categories["empty"]; ok {
		t.Error("empty categories must be omitted")
	}
	ts := content.Categories["traffic_stop"]
	if ts.Count != 2 || math.Abs(ts.Percentage-66.666) > 0.01 {
		t.Errorf("traffic_stop stats = %+v", ts)
	}

	if content.Quality.Duration.Min != 1800 || content.Quality.Duration.Max != 3600 {
		t.Errorf("duration stats = %+v", content.Quality.Duration)
	}
	if content.Quality.Views.Avg != 1500 {
		t.Errorf("views avg = %v, want 1500", content.Quality.Views.Avg)
	}

	if content.UploadsByYear["2023"] != 1 || content.UploadsByYear["2024"] != 1 {
		t.Errorf("uploads by year = %v", content.UploadsByYear)
	}

	if len(content.TopChannels) != 2 || content.TopChannels[0].Channel != "Alpha News" {
		t.Errorf("top channels = %+v", content.TopChannels)
	}
	if content.FilterStats.FailedDuration != 2 {
		t.Errorf("filter stats not carried through: %+v", content.FilterStats)
	}
}

func TestBuildContentEmptyInput(t *testing.T) {
	content := BuildContent(nil, nil, filter.Stats{})
	if content.Summary.TotalVideos != 0 {
		t.Errorf("TotalVideos = %d", content.Summary.TotalVideos)
	}
	if content.Summary.EarliestUpload != "unknown" {
		t.Errorf("EarliestUpload = %q, want unknown", content.Summary.EarliestUpload)
	}
	if content.Quality.Duration.Max != 0 {
		t.Errorf("quality stats should be zero: %+v", content.Quality)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "plan.json")
	entries := []PlanEntry{{Category: "x", VideoCount: 1, Duration: 10}}

	if err := WriteJSON(path, entries); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded []PlanEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Category != "x" {
		t.Errorf("decoded = %+v", decoded)
	}
}

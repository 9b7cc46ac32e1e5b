package report

import (
	"chronicle/internal/batch"
)

// Segment describes one record's slot inside a compilation group.
type Segment struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	StartOffset float64 `json:"start_offset"`
	Duration    float64 `json:"duration"`
	SourceURL   string  `json:"source_url"`
}

// PlanEntry is the serialized form of one compilation group.
type PlanEntry struct {
	Category   string    `json:"category"`
	VideoCount int       `json:"video_count"`
	Duration   float64   `json:"duration"`
	Segments   []Segment `json:"segments"`
}

// PlanEntries converts batch groups into their external plan form. Segment
// start offsets are cumulative within each group.
func PlanEntries(groups []batch.Group) []PlanEntry {
	if len(groups) == 0 {
		return nil
	}
	entries := make([]PlanEntry, 0, len(groups))
	for _, group := range groups {
		entry := PlanEntry{
			Category:   group.Category,
			VideoCount: len(group.Records),
			Duration:   group.Duration,
			Segments:   make([]Segment, 0, len(group.Records)),
		}
		var offset float64
		for _, record := range group.Records {
			duration := record.EffectiveDuration()
			entry.Segments = append(entry.Segments, Segment{
				ID:          record.ID,
				Title:       record.Title,
				StartOffset: offset,
				Duration:    duration,
				SourceURL:   record.SourceURL,
			})
			offset += duration
		}
		entries = append(entries, entry)
	}
	return entries
}

package dedup

import (
	"log/slog"
	"strings"

	"chronicle/internal/logging"
	"chronicle/internal/media"
	"chronicle/internal/textutil"
)

// DefaultThreshold is the similarity score at or above which two records are
// considered duplicates when the caller supplies no threshold.
const DefaultThreshold = 0.8

// Similarity component weights. Title similarity dominates; duration backs
// it up; matching channels add a small boost.
const (
	titleWeight    = 0.6
	durationWeight = 0.3
	channelWeight  = 0.1
)

// shortClipWindow is the absolute duration difference, in seconds, within
// which duration similarity is floored at 0.9. Protects short clips from
// being penalized by relative-difference noise.
const shortClipWindow = 30

// Detector clusters records whose weighted similarity meets a threshold.
type Detector struct {
	threshold float64
	logger    *slog.Logger
}

// NewDetector builds a detector. A negative threshold falls back to
// DefaultThreshold; a threshold of zero clusters every pair.
func NewDetector(threshold float64, logger *slog.Logger) *Detector {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Detector{
		threshold: threshold,
		logger:    logging.WithComponent(logger, "dedup"),
	}
}

// Detect returns clusters of likely duplicates, each with at least two
// members. Records are claimed by the first cluster that reaches them.
func (d *Detector) Detect(records []media.VideoRecord) [][]media.VideoRecord {
	var clusters [][]media.VideoRecord
	claimed := make([]bool, len(records))

	for i := range records {
		if claimed[i] {
			continue
		}
		cluster := []media.VideoRecord{records[i]}
		claimed[i] = true

		for j := i + 1; j < len(records); j++ {
			if claimed[j] {
				continue
			}
			if Score(records[i], records[j]) >= d.threshold {
				cluster = append(cluster, records[j])
				claimed[j] = true
			}
		}

		if len(cluster) > 1 {
			clusters = append(clusters, cluster)
		}
	}

	d.logger.Info("duplicate detection finished",
		"records", len(records),
		"clusters", len(clusters))
	return clusters
}

// Score computes the weighted similarity of two records: title Jaccard
// similarity, duration closeness, and channel equality.
func Score(a, b media.VideoRecord) float64 {
	title := textutil.Jaccard(a.Title, b.Title)
	duration := durationSimilarity(a.DurationSeconds, b.DurationSeconds)

	channel := 0.0
	if strings.EqualFold(a.ChannelTitle, b.ChannelTitle) {
		channel = 1.0
	}

	return title*titleWeight + duration*durationWeight + channel*channelWeight
}

func durationSimilarity(d1, d2 int64) float64 {
	if d1 <= 0 || d2 <= 0 {
		return 0.5
	}
	diff := d1 - d2
	if diff < 0 {
		diff = -diff
	}
	longest := d1
	if d2 > longest {
		longest = d2
	}
	similarity := 1 - float64(diff)/float64(longest)
	if diff <= shortClipWindow && similarity < 0.9 {
		similarity = 0.9
	}
	return similarity
}

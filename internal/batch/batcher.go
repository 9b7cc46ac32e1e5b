// Package batch packs a single category's records into duration-bounded
// compilation groups.
//
// Records are sorted chronologically by upload time before packing. A record
// without an upload time takes the injected clock's value as its sort key at
// the moment of sorting, which places it after the records known at that
// point; this is best-effort chronology, not a guaranteed global trailing
// position when timestamps are sparse.
package batch

import (
	"log/slog"
	"sort"
	"time"

	"chronicle/internal/logging"
	"chronicle/internal/media"
)

// Bounds are the duration limits, in seconds, for one compilation group.
// The caller resolves these from configuration; the batcher applies them
// as given.
type Bounds struct {
	Target float64
	Min    float64
	Max    float64
}

// Group is an ordered set of records destined for one rendered artifact.
type Group struct {
	Category string
	Records  []media.VideoRecord
	Duration float64
}

// Batcher plans compilation groups for one category at a time.
type Batcher struct {
	bounds Bounds
	now    func() time.Time
	logger *slog.Logger
}

// New builds a batcher. The now function supplies sort keys for records
// lacking an upload time; passing nil uses the wall clock.
func New(bounds Bounds, now func() time.Time, logger *slog.Logger) *Batcher {
	if now == nil {
		now = time.Now
	}
	return &Batcher{
		bounds: bounds,
		now:    now,
		logger: logging.WithComponent(logger, "batch"),
	}
}

// Plan sorts the category's records chronologically and packs them into
// groups via a single greedy forward pass:
//
//   - A record that would push the running duration strictly past Max closes
//     the group first, but only if the group already meets Min; otherwise the
//     record is added anyway, accepting the overflow rather than leaving a
//     too-short group. A single oversized record can therefore produce a
//     group well past Max; that is intentional.
//   - A group that reaches Target closes immediately.
//   - A trailing group under Min merges into the previous group when one
//     exists; as the only group it is kept even though short.
func (b *Batcher) Plan(category string, records []media.VideoRecord) []Group {
	if len(records) == 0 {
		return nil
	}

	sorted := b.sortChronologically(records)

	var groups []Group
	var current []media.VideoRecord
	var running float64

	for _, record := range sorted {
		duration := record.EffectiveDuration()

		if len(current) > 0 && running+duration > b.bounds.Max {
			if running >= b.bounds.Min {
				groups = append(groups, b.group(category, current, running))
				current = []media.VideoRecord{record}
				running = duration
				continue
			}
			// Too short to close: accept the overflow.
			current = append(current, record)
			running += duration
			continue
		}

		current = append(current, record)
		running += duration
		if running >= b.bounds.Target {
			groups = append(groups, b.group(category, current, running))
			current = nil
			running = 0
		}
	}

	if len(current) > 0 {
		switch {
		case running >= b.bounds.Min || len(groups) == 0:
			groups = append(groups, b.group(category, current, running))
		default:
			last := &groups[len(groups)-1]
			last.Records = append(last.Records, current...)
			last.Duration += running
		}
	}

	b.logger.Info("compilation plan built",
		"category", category,
		"records", len(records),
		"groups", len(groups))
	return groups
}

func (b *Batcher) group(category string, records []media.VideoRecord, duration float64) Group {
	return Group{Category: category, Records: records, Duration: duration}
}

// sortChronologically stable-sorts by upload time. Sort keys are resolved
// once per record before sorting so the clock is consulted deterministically.
func (b *Batcher) sortChronologically(records []media.VideoRecord) []media.VideoRecord {
	keys := make([]time.Time, len(records))
	for i, record := range records {
		if record.HasUploadTime() {
			keys[i] = record.UploadedAt
		} else {
			keys[i] = b.now()
		}
	}

	indices := make([]int, len(records))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return keys[indices[i]].Before(keys[indices[j]])
	})

	sorted := make([]media.VideoRecord, len(records))
	for pos, idx := range indices {
		sorted[pos] = records[idx]
	}
	return sorted
}

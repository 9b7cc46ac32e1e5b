package filter

import (
	"log/slog"
	"strings"

	"chronicle/internal/keyword"
	"chronicle/internal/logging"
	"chronicle/internal/media"
)

// Config carries the fully-resolved thresholds the pipeline applies. The
// caller is responsible for validating ranges; the pipeline applies no
// implicit defaults.
type Config struct {
	MinDurationSeconds int64
	MaxDurationSeconds int64
	MinViews           int64
	BlockedChannels    []string
	RequiredKeywords   []string
	ExcludedKeywords   []string
	MaxFileSizeBytes   int64
	MinHeight          int
}

// Pipeline applies the ordered acceptance predicates to a record stream.
type Pipeline struct {
	cfg      Config
	blocked  map[string]struct{}
	required *keyword.Matcher
	excluded *keyword.Matcher
	logger   *slog.Logger
}

// New builds a pipeline for the provided thresholds.
func New(cfg Config, logger *slog.Logger) *Pipeline {
	blocked := make(map[string]struct{}, len(cfg.BlockedChannels))
	for _, channel := range cfg.BlockedChannels {
		channel = strings.ToLower(strings.TrimSpace(channel))
		if channel == "" {
			continue
		}
		blocked[channel] = struct{}{}
	}

	return &Pipeline{
		cfg:      cfg,
		blocked:  blocked,
		required: keyword.NewMatcher(cfg.RequiredKeywords),
		excluded: keyword.NewMatcher(cfg.ExcludedKeywords),
		logger:   logging.WithComponent(logger, "filter"),
	}
}

// Run filters records and returns the kept records plus rejection stats.
// The first occurrence of an id wins; later duplicates are rejected.
func (p *Pipeline) Run(records []media.VideoRecord) ([]media.VideoRecord, Stats) {
	stats := Stats{TotalProcessed: len(records)}
	kept := make([]media.VideoRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		if strings.TrimSpace(record.ID) == "" {
			stats.NoIdentifier++
			p.logger.Debug("rejected record without identifier", "title", record.Title)
			continue
		}
		if _, dup := seen[record.ID]; dup {
			stats.FailedDuplicates++
			p.logger.Debug("rejected duplicate id", "id", record.ID)
			continue
		}
		if !p.passesDuration(record) {
			stats.FailedDuration++
			continue
		}
		if record.ViewCount < p.cfg.MinViews {
			stats.FailedViews++
			continue
		}
		if p.channelBlocked(record) {
			stats.BlockedChannels++
			continue
		}
		if !p.passesKeywords(record) {
			stats.FailedKeywords++
			continue
		}
		if !p.passesQuality(record) {
			stats.FailedQuality++
			continue
		}

		seen[record.ID] = struct{}{}
		kept = append(kept, record)
		stats.PassedFilters++
	}

	p.logger.Info("records filtered",
		"total", stats.TotalProcessed,
		"kept", stats.PassedFilters,
		"rejected", stats.Rejected())
	return kept, stats
}

func (p *Pipeline) passesDuration(record media.VideoRecord) bool {
	return record.DurationSeconds >= p.cfg.MinDurationSeconds &&
		record.DurationSeconds <= p.cfg.MaxDurationSeconds
}

func (p *Pipeline) channelBlocked(record media.VideoRecord) bool {
	if len(p.blocked) == 0 {
		return false
	}
	if _, ok := p.blocked[strings.ToLower(record.ChannelTitle)]; ok {
		return true
	}
	_, ok := p.blocked[strings.ToLower(record.ChannelID)]
	return ok
}

// passesKeywords enforces OR semantics on required keywords: an empty
// required set passes everything, otherwise at least one keyword must occur
// in the title+description+tags haystack. Any excluded keyword rejects.
func (p *Pipeline) passesKeywords(record media.VideoRecord) bool {
	haystack := record.SearchText()
	if !p.required.Empty() && !p.required.Matches(haystack) {
		return false
	}
	if !p.excluded.Empty() && p.excluded.Matches(haystack) {
		return false
	}
	return true
}

// passesQuality rejects on a known oversized file or a known sub-floor
// resolution. Absence of either signal passes the check.
func (p *Pipeline) passesQuality(record media.VideoRecord) bool {
	if p.cfg.MaxFileSizeBytes > 0 && record.FileSizeBytes > p.cfg.MaxFileSizeBytes {
		return false
	}
	if p.cfg.MinHeight > 0 && record.Height > 0 && record.Height < p.cfg.MinHeight {
		return false
	}
	return true
}

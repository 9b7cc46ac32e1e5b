// Package categorize assigns each record exactly one topical label.
//
// Every configured category is scored by counting which of its keywords
// occur in the record's title+description+tags; the full category set is
// always scanned. The strictly highest hit count wins, ties break to the
// lowest priority number, and records with zero hits anywhere receive the
// reserved "uncategorized" label. Hit count always dominates priority.
package categorize

import (
	"log/slog"

	"chronicle/internal/keyword"
	"chronicle/internal/logging"
	"chronicle/internal/media"
)

// Categorizer scores records against a fixed ordered category set.
type Categorizer struct {
	categories []media.Category
	matchers   []*keyword.Matcher
	logger     *slog.Logger
}

// New builds a categorizer over the provided category definitions.
func New(categories []media.Category, logger *slog.Logger) *Categorizer {
	matchers := make([]*keyword.Matcher, len(categories))
	for i, category := range categories {
		matchers[i] = keyword.NewMatcher(category.Keywords)
	}
	return &Categorizer{
		categories: categories,
		matchers:   matchers,
		logger:     logging.WithComponent(logger, "categorize"),
	}
}

// Assign maps each record to its category label. Every record appears in
// exactly one list; the map always contains the "uncategorized" key.
func (c *Categorizer) Assign(records []media.VideoRecord) map[string][]media.VideoRecord {
	buckets := make(map[string][]media.VideoRecord, len(c.categories)+1)
	for _, category := range c.categories {
		buckets[category.Name] = nil
	}
	buckets[media.Uncategorized] = nil

	for _, record := range records {
		label := c.Label(record)
		buckets[label] = append(buckets[label], record)
	}

	for label, list := range buckets {
		if len(list) > 0 {
			c.logger.Debug("category populated", "category", label, "records", len(list))
		}
	}
	return buckets
}

// Label returns the single category label for a record.
func (c *Categorizer) Label(record media.VideoRecord) string {
	haystack := record.SearchText()

	best := media.Uncategorized
	bestHits := 0
	bestPriority := 0

	for i, category := range c.categories {
		hits := c.matchers[i].HitCount(haystack)
		if hits == 0 {
			continue
		}
		switch {
		case hits > bestHits:
			best = category.Name
			bestHits = hits
			bestPriority = category.Priority
		case hits == bestHits && category.Priority < bestPriority:
			best = category.Name
			bestPriority = category.Priority
		}
	}

	return best
}

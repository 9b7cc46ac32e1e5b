package filter

// Stats accumulates per-run rejection counters. Every processed record
// increments TotalProcessed and exactly one of the remaining counters.
type Stats struct {
	TotalProcessed   int `json:"total_processed"`
	PassedFilters    int `json:"passed_filters"`
	NoIdentifier     int `json:"no_identifier"`
	FailedDuplicates int `json:"failed_duplicates"`
	FailedDuration   int `json:"failed_duration"`
	FailedViews      int `json:"failed_views"`
	BlockedChannels  int `json:"blocked_channels"`
	FailedKeywords   int `json:"failed_keywords"`
	FailedQuality    int `json:"failed_quality"`
}

// Rejected returns the total number of rejected records.
func (s Stats) Rejected() int {
	return s.TotalProcessed - s.PassedFilters
}

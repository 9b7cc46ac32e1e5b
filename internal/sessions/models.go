package sessions

import "time"

// Session records one completed triage run.
type Session struct {
	ID                string
	CreatedAt         time.Time
	InputPath         string
	ReportPath        string
	TotalProcessed    int
	Kept              int
	DuplicatesFlagged int
	CategoryCount     int
	GroupCount        int
	StatsJSON         string
}

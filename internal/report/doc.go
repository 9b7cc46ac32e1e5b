// Package report turns triage outputs into serializable summaries.
//
// Plan entries are the external shape handed to the rendering collaborator:
// per-group segment lists with start offsets. The content report aggregates
// category, quality, channel, and temporal statistics over a record set for
// human review. Both are thin projections of core outputs; they hold no
// logic of their own beyond aggregation and formatting.
package report

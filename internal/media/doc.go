// Package media defines the canonical video metadata types shared by the
// triage components.
//
// VideoRecord is the strictly-typed unit every component consumes. Loose
// key-value metadata from upstream collaborators is coerced once, at
// ingestion, via FromMap; downstream code never re-validates fields.
// Records are read-only through filtering, duplicate detection, and
// categorization, and are annotated once (file path, measured duration)
// before batching.
package media

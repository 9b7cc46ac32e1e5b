// Package ingest converts loose metadata exports into VideoRecords.
//
// Upstream collaborators (search, download tooling) hand over JSON arrays
// of flat key-value objects. Ingestion coerces each object exactly once via
// media.FromMap, drops records without identifiers while counting them, and
// optionally merges per-record sidecar metadata written by the download
// collaborator (measured duration, upload date, resolution).
package ingest

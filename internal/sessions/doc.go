// Package sessions persists triage run history in SQLite.
//
// Each completed run records its inputs, the filter accounting, and the
// resulting plan shape so earlier runs can be inspected from the CLI. The
// store holds a file lock while open so concurrent runs against the same
// data directory fail fast instead of interleaving writes.
package sessions

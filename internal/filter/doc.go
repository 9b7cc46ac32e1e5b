// Package filter implements the metadata acceptance pipeline.
//
// Predicates run in a fixed order with first-failure-wins semantics: id
// uniqueness, duration range, minimum views, channel blocklist, keyword
// requirements, quality ceilings. Each rejected record increments exactly
// one stats counter. Results are order-dependent: the first occurrence of
// an id wins and later duplicates are rejected, so callers must treat
// input order as part of the contract.
package filter

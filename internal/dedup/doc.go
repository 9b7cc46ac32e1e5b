// Package dedup clusters near-duplicate records by weighted similarity.
//
// This is an opt-in analysis for duplicate reporting, separate from the
// filter pipeline's exact-id rejection. Clustering is greedy single-linkage
// and order-dependent: records are visited in input order and the first
// unclaimed record seeds each cluster, so changing input order changes the
// clusters. Callers must treat input order as part of the contract.
package dedup

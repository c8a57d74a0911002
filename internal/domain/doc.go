// Package domain holds the core types and ports of the sentiment analysis
// pipeline: queries, fetched items, scored items, aggregate results, and the
// SourceConnector/ScoringStrategy interfaces that adapters implement.
package domain

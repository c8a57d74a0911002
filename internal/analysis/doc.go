// Package analysis implements the aggregation pipeline at the core of the
// service: it validates a query, fetches items from the selected source
// connector, scores each item with the selected strategy on a bounded
// worker pool, and aggregates the results. All partial-failure policy
// lives here: source failures yield zero items, per-item scoring failures
// fall back to the compound lexicon, and neither aborts a request.
package analysis

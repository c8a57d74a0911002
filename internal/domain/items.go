package domain

// RawItem is one fetched text item before scoring.
//
// PublishedAt keeps the connector's native timestamp representation: decimal
// epoch seconds for reddit, an ISO-8601-ish string for gnews, empty when the
// source has no timestamp. The pipeline owns the source-specific conversion
// to a calendar date.
type RawItem struct {
	Text        string
	PublishedAt string
	Engagement  int
}

// ScoredItem is one item after scoring. Score is on the canonical [0,1]
// scale, rounded to two decimals. Date is nil when the source carries no
// timestamp.
type ScoredItem struct {
	Text  string
	Date  *string
	Score float64
}

// AggregateResult is the full outcome of one analysis request. AverageScore
// is the mean of the item scores, 0.0 when Items is empty. Items preserve
// the connector's fetch order.
type AggregateResult struct {
	Query        Query
	TotalItems   int
	AverageScore float64
	Items        []ScoredItem
}

package domain

import "context"

// SourceConnector turns a search term into raw text items from one external
// content provider. Implementations enforce their own item cap and relevance
// filtering; limit is advisory and never raises the cap.
type SourceConnector interface {
	Fetch(ctx context.Context, searchTerm string, limit int) ([]RawItem, error)
}

// ScoringStrategy turns one text into a sentiment score on the canonical
// [0,1] scale (0 = most negative, 1 = most positive, 0.5 = neutral).
type ScoringStrategy interface {
	Name() Model
	Score(ctx context.Context, text string) (float64, error)
}

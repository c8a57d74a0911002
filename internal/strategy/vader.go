package strategy

import (
	"context"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
	"github.com/jonreiter/govader"
)

// Vader scores text with the rule-based VADER compound sentiment lexicon.
// The analyzer is read-only after construction and safe for concurrent use.
type Vader struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewVader() *Vader {
	return &Vader{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *Vader) Name() domain.Model {
	return domain.ModelVader
}

// Score maps the native compound score in [-1,1] onto the canonical scale.
func (v *Vader) Score(_ context.Context, text string) (float64, error) {
	scores := v.analyzer.PolarityScores(text)
	return FromBipolar(scores.Compound), nil
}

var _ domain.ScoringStrategy = (*Vader)(nil)

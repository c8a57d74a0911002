package strategy

import (
	"context"
	"strings"
	"unicode"

	"github.com/Toheedullah-K3/SentiScope/internal/domain"
)

// negationWindow is how many preceding tokens a negation reaches over.
const negationWindow = 3

// negationDampener mirrors pattern-style polarity handling: a negated word
// flips sign at half strength ("not great" is mildly negative, not the
// mirror image of "great").
const negationDampener = -0.5

// TextBlob scores text with a word-polarity pattern lexicon: the mean
// polarity of all matched tokens, with negations flipping and boosters
// scaling the word they precede. Native range is [-1,1]; text with no
// matched tokens is neutral.
type TextBlob struct{}

func NewTextBlob() *TextBlob {
	return &TextBlob{}
}

func (t *TextBlob) Name() domain.Model {
	return domain.ModelTextBlob
}

func (t *TextBlob) Score(_ context.Context, text string) (float64, error) {
	return FromBipolar(t.polarity(text)), nil
}

func (t *TextBlob) polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	var matched int
	for i, tok := range tokens {
		pol, ok := polarities[tok]
		if !ok {
			continue
		}

		if i > 0 {
			if boost, ok := boosters[tokens[i-1]]; ok {
				pol *= boost
			}
		}
		if negatedBefore(tokens, i) {
			pol *= negationDampener
		}

		sum += pol
		matched++
	}

	if matched == 0 {
		return 0
	}
	return clampBipolar(sum / float64(matched))
}

func negatedBefore(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if _, ok := negations[tokens[j]]; ok {
			return true
		}
	}
	return false
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clampBipolar(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

var _ domain.ScoringStrategy = (*TextBlob)(nil)

package strategy

// polarities is a compact word-polarity lexicon on a [-1,1] scale, in the
// spirit of the pattern/en adjective lexicon.
var polarities = map[string]float64{
	// strongly positive
	"excellent":   1.0,
	"outstanding": 1.0,
	"perfect":     1.0,
	"amazing":     0.9,
	"wonderful":   0.9,
	"fantastic":   0.9,
	"brilliant":   0.9,
	"awesome":     0.9,
	"superb":      0.9,
	"incredible":  0.85,
	"delightful":  0.8,
	"impressive":  0.8,
	"remarkable":  0.75,
	"love":        0.75,
	"loved":       0.75,
	"best":        0.75,

	// positive
	"great":       0.7,
	"beautiful":   0.7,
	"happy":       0.65,
	"glad":        0.6,
	"enjoy":       0.6,
	"enjoyable":   0.6,
	"good":        0.55,
	"nice":        0.55,
	"pleasant":    0.5,
	"like":        0.45,
	"liked":       0.45,
	"solid":       0.4,
	"useful":      0.4,
	"helpful":     0.4,
	"better":      0.4,
	"interesting": 0.35,
	"fine":        0.3,
	"okay":        0.2,
	"decent":      0.2,
	"fair":        0.15,

	// negative
	"mediocre":      -0.2,
	"boring":        -0.3,
	"slow":          -0.3,
	"weak":          -0.35,
	"annoying":      -0.4,
	"disappointing": -0.5,
	"disappointed":  -0.5,
	"poor":          -0.5,
	"bad":           -0.55,
	"ugly":          -0.6,
	"sad":           -0.6,
	"worse":         -0.6,
	"hate":          -0.65,
	"hated":         -0.65,
	"useless":       -0.7,
	"broken":        -0.7,
	"angry":         -0.7,
	"painful":       -0.7,

	// strongly negative
	"awful":      -0.9,
	"terrible":   -0.9,
	"horrible":   -0.9,
	"dreadful":   -0.9,
	"disgusting": -0.95,
	"worst":      -1.0,
	"garbage":    -0.85,
	"disaster":   -0.85,
	"scam":       -0.85,
	"fraud":      -0.85,
}

// boosters scale the polarity of the word immediately after them.
var boosters = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"incredibly": 1.5,
	"absolutely": 1.4,
	"totally":    1.3,
	"quite":      1.1,
	"pretty":     1.1,
	"somewhat":   0.8,
	"slightly":   0.6,
	"barely":     0.5,
	"hardly":     0.5,
}

// negations flip polarity within the negation window.
var negations = map[string]struct{}{
	"not":       {},
	"no":        {},
	"never":     {},
	"neither":   {},
	"nor":       {},
	"cannot":    {},
	"can't":     {},
	"don't":     {},
	"doesn't":   {},
	"didn't":    {},
	"isn't":     {},
	"aren't":    {},
	"wasn't":    {},
	"weren't":   {},
	"won't":     {},
	"wouldn't":  {},
	"couldn't":  {},
	"shouldn't": {},
}

package domain

// Platform identifies the content source a query is answered from.
type Platform string

const (
	// PlatformGNews fetches news articles via the GNews search API.
	PlatformGNews Platform = "gnews"
	// PlatformReddit fetches discussion posts via the Reddit search API.
	PlatformReddit Platform = "reddit"
	// PlatformTwitter is accepted by validation but has no connector wired;
	// queries against it resolve to zero items.
	PlatformTwitter Platform = "twitter"
)

// Model identifies the sentiment scoring strategy applied to fetched items.
type Model string

const (
	// ModelVader is the rule-based compound sentiment lexicon.
	ModelVader Model = "vader"
	// ModelTextBlob is the word-polarity pattern lexicon.
	ModelTextBlob Model = "textblob"
	// ModelGenAI is the hosted three-way transformer classifier.
	ModelGenAI Model = "genai"
)

var platforms = map[string]Platform{
	string(PlatformGNews):   PlatformGNews,
	string(PlatformReddit):  PlatformReddit,
	string(PlatformTwitter): PlatformTwitter,
}

var models = map[string]Model{
	string(ModelVader):    ModelVader,
	string(ModelTextBlob): ModelTextBlob,
	string(ModelGenAI):    ModelGenAI,
}

// ParsePlatform maps a request value onto a known Platform.
func ParsePlatform(s string) (Platform, error) {
	p, ok := platforms[s]
	if !ok {
		return "", ErrUnknownPlatform
	}
	return p, nil
}

// ParseModel maps a request value onto a known Model.
func ParseModel(s string) (Model, error) {
	m, ok := models[s]
	if !ok {
		return "", ErrUnknownModel
	}
	return m, nil
}

// Query is one validated analysis request. Immutable once constructed.
type Query struct {
	Search   string
	Platform Platform
	Model    Model
}

// Package sentiment classifies a message's sentiment and severity with a
// single low-temperature model call.
//
// The model answers in free text ("negative - moderate"); [Parse] reduces
// that reply to a [Classification] by substring search, so any wording the
// model chooses still maps onto a known label.
package sentiment

import "strings"

// Sentiment is the overall tone of a message.
type Sentiment string

const (
	Positive Sentiment = "positive"
	Negative Sentiment = "negative"
	Neutral  Sentiment = "neutral"
)

// Severity is the model-assessed intensity of negative sentiment.
type Severity string

const (
	Normal   Severity = "normal"
	Moderate Severity = "moderate"
	Severe   Severity = "severe"
)

// Classification is the parsed result of a sentiment analysis.
type Classification struct {
	Sentiment Sentiment `json:"sentiment"`
	Severity  Severity  `json:"severity"`
}

// Fallback is the classification used when no analysis is available.
func Fallback() Classification {
	return Classification{Sentiment: Neutral, Severity: Normal}
}

// String returns the "sentiment - severity" form the classifier prompt asks for.
func (c Classification) String() string {
	return string(c.Sentiment) + " - " + string(c.Severity)
}

var (
	severeWords   = []string{"severe", "crisis", "urgent"}
	moderateWords = []string{"moderate", "concerning"}
)

// Parse extracts a Classification from a model's free-text reply.
// "positive" takes precedence over "negative"; anything else is neutral.
// Severity defaults to normal when no severity word is present.
func Parse(reply string) Classification {
	text := strings.ToLower(strings.TrimSpace(reply))

	c := Fallback()
	switch {
	case strings.Contains(text, "positive"):
		c.Sentiment = Positive
	case strings.Contains(text, "negative"):
		c.Sentiment = Negative
	}

	switch {
	case containsAny(text, severeWords):
		c.Severity = Severe
	case containsAny(text, moderateWords):
		c.Severity = Moderate
	}
	return c
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

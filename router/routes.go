package router

import (
	"strings"

	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/model"
	"github.com/spetersoncode/sentibot/sentiment"
)

// Route names reported in Reply.Route.
const (
	RouteCrisis   = "crisis"
	RouteSevere   = "severe"
	RoutePositive = "positive"
	RouteNegative = "negative"
	RouteNeutral  = "neutral"
)

// userInput is the placeholder replaced by the user's message in a route template.
const userInput = "{user_input}"

const (
	EnthusiasticTemplate = "The user seems happy! Respond enthusiastically and build on their positive energy.\n\nUser: {user_input}\n\nResponse:"
	EmpatheticTemplate   = "The user seems upset. Respond with empathy and try to help solve their problem.\nKeep your response supportive but practical.\n\nUser: {user_input}\n\nResponse:"
	InformativeTemplate  = "Respond to the user's query in a helpful, informative way.\n\nUser: {user_input}\n\nResponse:"
)

// ResourceText is returned instead of a model reply whenever crisis
// language or severe distress is detected.
const ResourceText = `I hear that you're going through a difficult time, and I want you to know that your feelings are valid. However, I'm an AI assistant and not a certified mental health professional.
If you're struggling with your emotional or mental health, I strongly encourage you to reach out to a qualified human specialist who can provide the proper support you deserve.

Here are some options that can help:

Immediate Crisis Support:
- 988 Suicide & Crisis Lifeline: Call or text 988 (available 24/7 in the US)
- Crisis Text Line: Text HOME to 741741
- International Association for Suicide Prevention: https://www.iasp.info/resources/Crisis_Centres/

Professional Help:
- Talk to your doctor or healthcare provider
- Contact a licensed therapist or counselor
- Reach out to a trusted friend or family member

You don't have to go through this alone. Professional support can make a real difference, and reaching out is a sign of strength, not weakness.`

// Route pairs a prompt template with the model that answers it.
type Route struct {
	Name        string
	Model       ai.Model
	Temperature float64
	// Template holds the {user_input} placeholder.
	Template string
}

// Prompt renders the route's template for text.
func (r Route) Prompt(text string) string {
	return strings.ReplaceAll(r.Template, userInput, text)
}

// Routes holds one route per sentiment.
type Routes struct {
	Positive Route
	Negative Route
	Neutral  Route
}

// DefaultRoutes returns the built-in routing table.
func DefaultRoutes() Routes {
	return Routes{
		Positive: Route{Name: RoutePositive, Model: model.Llama3370BVersatile, Temperature: 0.7, Template: EnthusiasticTemplate},
		Negative: Route{Name: RouteNegative, Model: model.Gemini25Pro, Temperature: 0.5, Template: EmpatheticTemplate},
		Neutral:  Route{Name: RouteNeutral, Model: model.Gemini25Flash, Temperature: 0.3, Template: InformativeTemplate},
	}
}

// For returns the route for a sentiment. Unknown sentiments use the neutral route.
func (r Routes) For(s sentiment.Sentiment) Route {
	switch s {
	case sentiment.Positive:
		return r.Positive
	case sentiment.Negative:
		return r.Negative
	default:
		return r.Neutral
	}
}

// Models lists the models used by the routes.
func (r Routes) Models() []ai.Model {
	return []ai.Model{r.Positive.Model, r.Negative.Model, r.Neutral.Model}
}

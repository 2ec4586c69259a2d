// Package router answers a message by choosing between the fixed
// mental-health resource text and one of three sentiment-specific model routes.
//
// Each turn runs two safety gates before any generation: a keyword check on
// the raw text, then a model classification whose "severe" verdict also
// short-circuits to the resource text.
package router

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/crisis"
	"github.com/spetersoncode/sentibot/model"
	"github.com/spetersoncode/sentibot/sentiment"
)

// Classifier reports the sentiment and severity of a message.
type Classifier interface {
	Classify(ctx context.Context, text string) (sentiment.Classification, error)
}

// Reply is the outcome of one turn.
type Reply struct {
	// ID identifies the turn in logs.
	ID    string
	Text  string
	Route string
	Level crisis.Level
	// Classification is the zero value when the crisis gate answered.
	Classification sentiment.Classification
	// Classified is false when the classifier was skipped or failed.
	Classified bool
	Usage      ai.Usage
	// CostUSD estimates the generation cost; zero when the model has no known pricing.
	CostUSD float64
}

// Router dispatches messages to a route.
type Router struct {
	classifier Classifier
	provider   ai.ChatProvider
	routes     Routes
	detector   *crisis.Detector
	logger     *slog.Logger
}

// Option configures a Router.
type Option func(*Router)

// WithRoutes replaces the default routing table.
func WithRoutes(routes Routes) Option {
	return func(r *Router) {
		r.routes = routes
	}
}

// WithDetector replaces the default crisis keyword detector.
func WithDetector(d *crisis.Detector) Option {
	return func(r *Router) {
		r.detector = d
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Router) {
		r.logger = l
	}
}

// New creates a router that classifies with classifier and generates with provider.
func New(classifier Classifier, provider ai.ChatProvider, opts ...Option) *Router {
	r := &Router{
		classifier: classifier,
		provider:   provider,
		routes:     DefaultRoutes(),
		detector:   crisis.DefaultDetector(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Routes returns the routing table in use.
func (r *Router) Routes() Routes { return r.routes }

// Respond answers a single message.
// Classifier failures fall back to the neutral route; generation errors are returned.
func (r *Router) Respond(ctx context.Context, text string) (*Reply, error) {
	reply := &Reply{ID: "turn-" + uuid.NewString()}
	log := r.logger.With("turn", reply.ID)

	level, keyword := r.detector.Match(text)
	reply.Level = level
	if level.RequiresResources() {
		log.Warn("mental health concern detected", "level", level.String(), "keyword", keyword)
		reply.Text = ResourceText
		reply.Route = RouteCrisis
		return reply, nil
	}

	c, err := r.classifier.Classify(ctx, text)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Warn("sentiment classification failed, using neutral route", errorAttrs(err)...)
		c = sentiment.Fallback()
	} else {
		reply.Classified = true
		log.Info("detected sentiment", "sentiment", c.Sentiment, "severity", c.Severity)
	}
	reply.Classification = c

	if c.Severity == sentiment.Severe {
		log.Warn("severe emotional distress detected, providing mental health resources")
		reply.Text = ResourceText
		reply.Route = RouteSevere
		return reply, nil
	}

	route := r.routes.For(c.Sentiment)
	reply.Route = route.Name
	log.Debug("routing message", "route", route.Name, "model", modelName(route.Model), "temperature", route.Temperature)

	resp, err := r.provider.Chat(ctx,
		[]ai.Message{ai.UserMessage(route.Prompt(text))},
		ai.WithModel(route.Model),
		ai.WithTemperature(route.Temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("%s route: %w", route.Name, err)
	}

	reply.Text = resp.Content
	reply.Usage = resp.Usage
	reply.CostUSD = estimateCost(route.Model, resp.Usage)
	return reply, nil
}

// estimateCost prices usage for catalog models. Models without pricing cost 0.
func estimateCost(m ai.Model, usage ai.Usage) float64 {
	cm, ok := m.(model.ChatModel)
	if !ok || !cm.Pricing().Known() {
		return 0
	}
	return cm.Cost(usage)
}

// errorAttrs describes err for logging, including its category and HTTP
// status when a provider adapter attached them.
func errorAttrs(err error) []any {
	attrs := []any{"error", err}
	if cat, ok := ai.CategoryOf(err); ok {
		attrs = append(attrs, "category", string(cat))
	}
	if code := ai.StatusCodeOf(err); code != 0 {
		attrs = append(attrs, "status", code)
	}
	return attrs
}

func modelName(m ai.Model) string {
	if m == nil {
		return ""
	}
	return m.String()
}

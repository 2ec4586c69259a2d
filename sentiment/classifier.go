package sentiment

import (
	"context"
	"fmt"

	ai "github.com/spetersoncode/sentibot"
)

const promptTemplate = `Analyze the sentiment and severity of the following text.

First, determine sentiment: positive, negative, or neutral.
Then, if negative, assess severity: normal, moderate, or severe.

Severity guidelines:
- severe: Mentions of self-harm, suicide, crisis, extreme distress
- moderate: Strong negative emotions, significant problems
- normal: Typical complaints or frustrations

Respond in this format: '[sentiment] - [severity]'
Example: 'negative - severe' or 'positive - normal'

Text: %s

Analysis:`

// Prompt returns the classification instruction for text.
func Prompt(text string) string {
	return fmt.Sprintf(promptTemplate, text)
}

// Classifier asks a chat model for the sentiment and severity of a message.
type Classifier struct {
	provider    ai.ChatProvider
	model       ai.Model
	temperature float64
	maxTokens   int
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithTemperature sets the sampling temperature (default 0).
func WithTemperature(t float64) Option {
	return func(c *Classifier) {
		c.temperature = t
	}
}

// WithMaxTokens caps the length of the model's answer.
func WithMaxTokens(n int) Option {
	return func(c *Classifier) {
		c.maxTokens = n
	}
}

// NewClassifier returns a classifier that sends prompts to model via provider.
func NewClassifier(provider ai.ChatProvider, model ai.Model, opts ...Option) *Classifier {
	c := &Classifier{provider: provider, model: model}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Model returns the model used for classification.
func (c *Classifier) Model() ai.Model { return c.model }

// Classify sends text to the model and parses its reply.
// Provider errors are returned unchanged; choosing a fallback is up to the caller.
func (c *Classifier) Classify(ctx context.Context, text string) (Classification, error) {
	opts := []ai.Option{ai.WithTemperature(c.temperature)}
	if c.model != nil {
		opts = append(opts, ai.WithModel(c.model))
	}
	if c.maxTokens > 0 {
		opts = append(opts, ai.WithMaxTokens(c.maxTokens))
	}

	resp, err := c.provider.Chat(ctx, []ai.Message{ai.UserMessage(Prompt(text))}, opts...)
	if err != nil {
		return Classification{}, fmt.Errorf("classify sentiment: %w", err)
	}
	return Parse(resp.Content), nil
}

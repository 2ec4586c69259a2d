package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	ai "github.com/spetersoncode/sentibot"
	"github.com/spetersoncode/sentibot/internal/provider/anthropic"
	"github.com/spetersoncode/sentibot/internal/provider/google"
	"github.com/spetersoncode/sentibot/internal/provider/openai"
	"github.com/spetersoncode/sentibot/internal/retry"
)

// RetryConfig holds retry configuration parameters.
type RetryConfig = retry.Config

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig { return retry.DefaultConfig() }

// APIKeys holds API keys for different providers.
// Only configure keys for providers you intend to use.
type APIKeys struct {
	Google    string
	Groq      string
	OpenAI    string
	Anthropic string
}

// For returns the key configured for a provider.
func (k APIKeys) For(p ai.Provider) string {
	switch p {
	case ai.ProviderGoogle:
		return k.Google
	case ai.ProviderGroq:
		return k.Groq
	case ai.ProviderOpenAI:
		return k.OpenAI
	case ai.ProviderAnthropic:
		return k.Anthropic
	default:
		return ""
	}
}

// Config holds configuration for creating a unified client.
type Config struct {
	APIKeys APIKeys

	// DefaultModel is used when a request carries no WithModel option.
	DefaultModel ai.Model

	// RetryConfig configures retry behavior for transient errors.
	// If nil, uses DefaultRetryConfig.
	RetryConfig *RetryConfig

	// BaseURLs overrides provider endpoints, keyed by provider.
	BaseURLs map[ai.Provider]string

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when a model is used but no API key
// is configured for that model's provider.
type ErrMissingAPIKey struct {
	Provider ai.Provider
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrNoModel is returned when no model is specified and no default is configured.
type ErrNoModel struct{}

func (e *ErrNoModel) Error() string {
	return "no model specified: set client.Config DefaultModel or use sentibot.WithModel()"
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithChatProvider registers a ready-made provider, bypassing lazy construction
// and the API key check for that provider.
func WithChatProvider(p ai.Provider, cp ai.ChatProvider) ClientOption {
	return func(c *Client) {
		c.providers[p] = cp
	}
}

// Client is a unified ChatProvider across all supported backends.
// Provider clients are lazily initialized when first needed.
type Client struct {
	apiKeys      APIKeys
	defaultModel ai.Model
	retryConfig  retry.Config
	baseURLs     map[ai.Provider]string
	events       chan<- Event

	mu        sync.RWMutex
	providers map[ai.Provider]ai.ChatProvider
}

// New creates a unified client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	retryConfig := retry.DefaultConfig()
	if cfg.RetryConfig != nil {
		retryConfig = *cfg.RetryConfig
	}

	c := &Client{
		apiKeys:      cfg.APIKeys,
		defaultModel: cfg.DefaultModel,
		retryConfig:  retryConfig,
		baseURLs:     cfg.BaseURLs,
		events:       cfg.Events,
		providers:    make(map[ai.Provider]ai.ChatProvider),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MissingKeys reports every model whose provider has no API key configured.
// Models sharing a provider are reported once, by the first such model.
func (c *Client) MissingKeys(models ...ai.Model) []*ErrMissingAPIKey {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var missing []*ErrMissingAPIKey
	seen := make(map[ai.Provider]bool)
	for _, m := range models {
		if m == nil {
			continue
		}
		p := m.Provider()
		if seen[p] {
			continue
		}
		seen[p] = true
		if _, ok := c.providers[p]; ok {
			continue
		}
		if c.apiKeys.For(p) == "" {
			missing = append(missing, &ErrMissingAPIKey{Provider: p, Model: m.String()})
		}
	}
	return missing
}

// getChatProvider returns the provider client for p, initializing it if needed.
func (c *Client) getChatProvider(ctx context.Context, m ai.Model) (ai.ChatProvider, error) {
	p := m.Provider()

	c.mu.RLock()
	cp, ok := c.providers[p]
	c.mu.RUnlock()
	if ok {
		return cp, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if cp, ok := c.providers[p]; ok {
		return cp, nil
	}

	key := c.apiKeys.For(p)
	if key == "" {
		return nil, &ErrMissingAPIKey{Provider: p, Model: m.String()}
	}

	baseURL := c.baseURLs[p]
	switch p {
	case ai.ProviderGoogle:
		var opts []google.ClientOption
		if baseURL != "" {
			opts = append(opts, google.WithBaseURL(baseURL))
		}
		gc, err := google.New(ctx, key, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google client: %w", err)
		}
		cp = gc
	case ai.ProviderGroq:
		var opts []openai.ClientOption
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		cp = openai.NewGroq(key, opts...)
	case ai.ProviderOpenAI:
		var opts []openai.ClientOption
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}
		cp = openai.New(key, opts...)
	case ai.ProviderAnthropic:
		var opts []anthropic.ClientOption
		if baseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(baseURL))
		}
		cp = anthropic.New(key, opts...)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", p)
	}

	c.providers[p] = cp
	return cp, nil
}

// Chat sends a conversation to the backend serving the requested model.
// Automatically retries on transient errors according to the client's retry configuration.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	options := ai.ApplyOptions(opts...)

	m := options.Model
	if m == nil {
		m = c.defaultModel
	}
	if m == nil {
		return nil, &ErrNoModel{}
	}
	if options.Model == nil {
		opts = append([]ai.Option{ai.WithModel(m)}, opts...)
	}

	cp, err := c.getChatProvider(ctx, m)
	if err != nil {
		return nil, err
	}

	provider := m.Provider()
	start := time.Now()
	emit(c.events, Event{Type: EventRequestStart, Provider: provider, Model: m.String()})

	cfg := c.retryConfig
	cfg.OnRetry = func(e retry.Event) {
		emit(c.events, Event{
			Type:     EventRetry,
			Provider: provider,
			Model:    m.String(),
			Error:    e.Err,
			Attempt:  e.Attempt,
			Delay:    e.Delay,
		})
	}

	resp, err := retry.Do(ctx, cfg, func() (*ai.Response, error) {
		return cp.Chat(ctx, messages, opts...)
	})
	if err != nil {
		emit(c.events, Event{
			Type:     EventRequestError,
			Provider: provider,
			Model:    m.String(),
			Duration: time.Since(start),
			Error:    err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:     EventRequestComplete,
		Provider: provider,
		Model:    m.String(),
		Duration: time.Since(start),
		Usage:    &resp.Usage,
	})
	return resp, nil
}

var _ ai.ChatProvider = (*Client)(nil)
